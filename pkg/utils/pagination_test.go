package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(t *testing.T, query string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestGetPaginationParams(t *testing.T) {
	params := GetPaginationParams(contextWithQuery(t, "page=3&limit=10"))
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.PageSize)
	assert.Equal(t, 20, params.Offset)

	params = GetPaginationParams(contextWithQuery(t, "page=-1&limit=500"))
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
	assert.Equal(t, 0, params.Offset)
}

func TestGetDisplayCount(t *testing.T) {
	assert.Equal(t, 12, GetDisplayCount(contextWithQuery(t, ""), 12))
	assert.Equal(t, 12, GetDisplayCount(contextWithQuery(t, "count=abc"), 12))
	assert.Equal(t, 12, GetDisplayCount(contextWithQuery(t, "count=-4"), 12))
	assert.Equal(t, 24, GetDisplayCount(contextWithQuery(t, "count=24"), 12))

	// Off-page counts round up to the next page boundary.
	assert.Equal(t, 24, GetDisplayCount(contextWithQuery(t, "count=13"), 12))
	assert.Equal(t, 36, GetDisplayCount(contextWithQuery(t, "count=36"), 12))
}
