package httpresp

import "github.com/gin-gonic/gin"

type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

type PageResponse[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Page[T any](c *gin.Context, data []T, total int64, page, perPage int) {
	// perPage abaixo de 1 vira 1; a conta de páginas nunca divide por zero.
	if perPage < 1 {
		perPage = 1
	}

	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}

	c.JSON(200, PageResponse[T]{
		Data: data,
		Meta: Meta{
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages,
		},
	})
}
