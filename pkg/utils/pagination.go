package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PaginationParams represents offset pagination parameters for list endpoints.
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams extracts pagination parameters from request
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   offset,
	}
}

// GetDisplayCount extracts the catalog "load more" display count. The count
// grows in whole pages: the client starts at one page size and asks for one
// more page per call. Anything malformed falls back to a single page.
func GetDisplayCount(c echo.Context, pageSize int) int {
	count, err := strconv.Atoi(c.QueryParam("count"))
	if err != nil || count <= 0 {
		return pageSize
	}

	// Round up to a whole number of pages so re-slicing stays aligned.
	if rem := count % pageSize; rem != 0 {
		count += pageSize - rem
	}

	return count
}
