package router

import (
	"github.com/labstack/echo/v4"

	"tucomercio/internal/adapter/api/handler"
	"tucomercio/internal/adapter/api/middleware"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notifications := e.Group("/v1/notifications")
	notifications.Use(authMiddleware.Authenticate)

	notifications.GET("", notificationHandler.GetNotifications)
	notifications.POST("/:notificationId/read", notificationHandler.MarkRead)
}
