package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"tucomercio/internal/usecase"
	"tucomercio/pkg/response"
	"tucomercio/pkg/utils"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// SearchBusinesses serves the ranked catalog page. The client passes the
// cumulative display count; the engine re-slices the same ranked order.
func (h *CatalogHandler) SearchBusinesses(c echo.Context) error {
	spec := usecase.SearchSpec{
		Term:     c.QueryParam("search"),
		Location: c.QueryParam("location"),
	}

	if raw := c.QueryParam("categories"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				spec.Categories = append(spec.Categories, name)
			}
		}
	}

	displayCount := utils.GetDisplayCount(c, h.catalogUseCase.PageSize())

	result, err := h.catalogUseCase.Search(c.Request().Context(), spec, displayCount)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *CatalogHandler) GetCategories(c echo.Context) error {
	categories, err := h.catalogUseCase.ActiveCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

func (h *CatalogHandler) GetPlans(c echo.Context) error {
	plans, err := h.catalogUseCase.Plans(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, plans)
}
