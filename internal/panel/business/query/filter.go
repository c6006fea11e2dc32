package query

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"commerceadmin_api/internal/panel/business/models/dto/response"
)

var foldCaser = cases.Fold()

// Filter оставляет записи, у которых хотя бы одно из полей содержит
// term без учёта регистра. Пустой term возвращает копию без фильтрации.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	result := make([]T, 0, len(items))
	if strings.TrimSpace(term) == "" {
		return append(result, items...)
	}

	needle := foldCaser.String(term)
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(foldCaser.String(field), needle) {
				result = append(result, item)
				break
			}
		}
	}
	return result
}

type SortMode int

const (
	SortByName SortMode = iota
	SortByCreatedAsc
	SortByCreatedDesc
)

// Sort возвращает стабильно отсортированную копию: равные элементы
// сохраняют исходный порядок.
func Sort[T any](items []T, mode SortMode, name func(T) string, createdAt func(T) time.Time) []T {
	result := append(make([]T, 0, len(items)), items...)

	switch mode {
	case SortByName:
		sort.SliceStable(result, func(i, j int) bool {
			return foldCaser.String(name(result[i])) < foldCaser.String(name(result[j]))
		})
	case SortByCreatedAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return createdAt(result[i]).Before(createdAt(result[j]))
		})
	case SortByCreatedDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return createdAt(result[i]).After(createdAt(result[j]))
		})
	}
	return result
}

// Paginate нарезает локальную коллекцию в тот же конверт, что отдаёт
// бэкенд, чтобы фолбэк локального поиска был неотличим для вызывающего.
func Paginate[T any](items []T, page, size int) response.Page[T] {
	if size <= 0 {
		size = 25
	}
	if page < 0 {
		page = 0
	}

	start := page * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	totalPages := (len(items) + size - 1) / size
	return response.Page[T]{
		Content:       append(make([]T, 0, end-start), items[start:end]...),
		TotalElements: len(items),
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
	}
}
