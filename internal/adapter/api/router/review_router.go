package router

import (
	"github.com/labstack/echo/v4"

	"tucomercio/internal/adapter/api/handler"
	"tucomercio/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()
	streamHandler := handler.GetReviewStreamHandler()

	// Live review stream (public, read-only)
	e.GET("/ws/businesses/:businessId/reviews", streamHandler.StreamReviews)

	// Mutations require authentication
	authenticated := e.Group("")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("/v1/businesses/:businessId/reviews/:reviewId/reports", reviewHandler.ReportReview)
	authenticated.POST("/v1/businesses/:businessId/reviews/:reviewId/reply", reviewHandler.ReplyToReview)
	authenticated.PUT("/v1/businesses/:businessId/reviews/:reviewId/reply", reviewHandler.EditReply)
	authenticated.DELETE("/v1/businesses/:businessId/reviews/:reviewId/reply", reviewHandler.DeleteReply)
	authenticated.PATCH("/v1/businesses/:businessId/reviews/:reviewId/reports/:reportId", reviewHandler.ResolveReport)
}
