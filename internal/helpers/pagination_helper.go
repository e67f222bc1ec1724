package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaginacaoParams struct {
	Page int
	Size int
}

type Pagina[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int64 `json:"pages"`
}

// ParsePaginacaoParams reads page/size from the query string, defaulting to
// page 1 with 50 items.
func ParsePaginacaoParams(c *gin.Context) (PaginacaoParams, []FieldError) {
	params := PaginacaoParams{Page: 1, Size: 50}
	var fieldErrors []FieldError

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fieldErrors = append(fieldErrors, FieldError{
				Loc:  []string{"query", "page"},
				Msg:  "deve ser um inteiro maior ou igual a 1",
				Type: "value_error",
			})
		} else {
			params.Page = page
		}
	}

	if raw := c.Query("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			fieldErrors = append(fieldErrors, FieldError{
				Loc:  []string{"query", "size"},
				Msg:  "deve ser um inteiro maior ou igual a 1",
				Type: "value_error",
			})
		} else {
			params.Size = size
		}
	}

	return params, fieldErrors
}

// Paginar runs the filtered query twice, once for the total count and once
// for the requested slice, ordered by surrogate key so pages are stable.
// A page past the end yields empty items with the real total; an empty
// result set yields zero pages.
func Paginar[T any](query *gorm.DB, params PaginacaoParams) (*Pagina[T], error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]T, 0, params.Size)
	offset := (params.Page - 1) * params.Size
	if err := query.Order("pk_id").Offset(offset).Limit(params.Size).Find(&items).Error; err != nil {
		return nil, err
	}

	pages := (total + int64(params.Size) - 1) / int64(params.Size)

	return &Pagina[T]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: pages,
	}, nil
}
