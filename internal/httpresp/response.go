package httpresp

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageSize is fixed for every paginated listing.
const PageSize = 10

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type PageResponse[T any] struct {
	Data     []T   `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Page[T any](c *gin.Context, data []T, total int64, page int) {
	c.JSON(200, PageResponse[T]{
		Data:     data,
		Total:    total,
		Page:     page,
		PageSize: PageSize,
	})
}

// PageFromQuery reads the 1-based "page" query parameter.
func PageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		return 1
	}
	return page
}
