package request

import (
	"net/url"
	"strconv"
)

// ListParams — параметры листинга; незаданные поля не попадают
// в query string.
type ListParams struct {
	Page      *int
	Size      *int
	Sort      string
	Direction string
}

// Values переводит параметры в url.Values.
func (p ListParams) Values() url.Values {
	values := url.Values{}
	if p.Page != nil {
		values.Set("page", strconv.Itoa(*p.Page))
	}
	if p.Size != nil {
		values.Set("size", strconv.Itoa(*p.Size))
	}
	if p.Sort != "" {
		values.Set("sort", p.Sort)
	}
	if p.Direction != "" {
		values.Set("direction", p.Direction)
	}
	return values
}

// PageOf — удобный конструктор для указателей на номер страницы.
func PageOf(page, size int) ListParams {
	return ListParams{Page: &page, Size: &size}
}

// SearchParams — поисковый запрос: q плюс произвольные дополнения.
type SearchParams struct {
	Term  string
	Extra map[string]string
}

func (p SearchParams) Values() url.Values {
	values := url.Values{}
	values.Set("q", p.Term)
	for key, value := range p.Extra {
		if value != "" {
			values.Set(key, value)
		}
	}
	return values
}

// StatusUpdate — тело PATCH /orders/{id}/status.
type StatusUpdate struct {
	Status string `json:"status"`
}

// BulkDelete — тело DELETE /{resource}/bulk-delete.
type BulkDelete struct {
	IDs []int `json:"ids"`
}
