package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"tucomercio/internal/adapter/api"
	"tucomercio/internal/adapter/api/handler"
	apimiddleware "tucomercio/internal/adapter/api/middleware"
	"tucomercio/internal/adapter/api/router"
	"tucomercio/internal/adapter/repository"
	"tucomercio/internal/infrastructure/analytics"
	"tucomercio/internal/infrastructure/feed"
	"tucomercio/internal/infrastructure/firebase"
	"tucomercio/internal/usecase"
	"tucomercio/pkg/config"
	"tucomercio/pkg/locale"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development); otherwise application default credentials.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	localizer, err := locale.New(cfg.Locale)
	if err != nil {
		log.Fatalf("Failed to load locale %q: %v", cfg.Locale, err)
	}

	businessRepo := repository.NewFirestoreBusinessRepository(firestoreClient)
	planRepo := repository.NewFirestorePlanRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	catalogFeed := feed.New(businessRepo, planRepo, categoryRepo)
	catalogFeed.Start(ctx, time.Duration(cfg.FeedRefreshSeconds)*time.Second)

	tracker := analytics.NewFirestoreTracker(firestoreClient)

	catalogUseCase := usecase.NewCatalogUseCase(catalogFeed, tracker, localizer, cfg.CatalogPageSize)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, localizer)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, localizer)

	handler.Setup(catalogUseCase, reviewUseCase, notificationUseCase)
	handler.SetupHealthHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
