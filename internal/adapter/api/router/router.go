package router

import (
	"github.com/labstack/echo/v4"

	"tucomercio/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupCatalogRouter(e)
	SetupReviewRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
