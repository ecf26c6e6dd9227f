package handler

import (
	"tucomercio/internal/usecase"
)

var (
	catalogHandler      *CatalogHandler
	reviewHandler       *ReviewHandler
	reviewStreamHandler *ReviewStreamHandler
	notificationHandler *NotificationHandler
)

func Setup(
	catalogUseCase *usecase.CatalogUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	notificationUseCase *usecase.NotificationUseCase,
) {
	catalogHandler = NewCatalogHandler(catalogUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	reviewStreamHandler = NewReviewStreamHandler(reviewUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetReviewStreamHandler() *ReviewStreamHandler {
	return reviewStreamHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}
