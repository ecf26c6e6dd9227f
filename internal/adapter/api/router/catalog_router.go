package router

import (
	"github.com/labstack/echo/v4"

	"tucomercio/internal/adapter/api/handler"
)

func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()

	// Public catalog surface
	e.GET("/v1/businesses", catalogHandler.SearchBusinesses)
	e.GET("/v1/categories", catalogHandler.GetCategories)
	e.GET("/v1/plans", catalogHandler.GetPlans)
}
