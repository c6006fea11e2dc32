package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"commerceadmin_api/config"
	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/business/models/dto/request"
	"commerceadmin_api/internal/panel/business/models/dto/response"
	"commerceadmin_api/internal/panel/business/query"
	"commerceadmin_api/internal/panel/business/services/validate"
	"commerceadmin_api/internal/panel/pkg/clients"
)

// resourceSpec описывает один ресурс бэкенда: эндпоинт, схему
// валидации и поля, по которым ищет локальный фолбэк.
type resourceSpec[T models.Record] struct {
	label        string
	endpoint     string
	schema       *validate.Schema[T]
	fetchLimit   int
	searchFields func(T) []string
}

// baseService — общая CRUD-механика поверх шлюза; ресурсные сервисы
// встраивают его и добавляют свои операции.
type baseService[T models.Record] struct {
	gateway *clients.BaseClient
	spec    resourceSpec[T]
}

func newBaseService[T models.Record](cfg config.PanelAPIConfig, writer io.Writer, logPrefix string, spec resourceSpec[T]) baseService[T] {
	if spec.fetchLimit <= 0 {
		spec.fetchLimit = 1000
	}
	return baseService[T]{
		gateway: clients.NewBaseClient(cfg, writer, logPrefix),
		spec:    spec,
	}
}

func (s *baseService[T]) List(ctx context.Context, params request.ListParams) ([]T, error) {
	var raw json.RawMessage
	if err := s.gateway.RequestValues(ctx, http.MethodGet, s.spec.endpoint, params.Values(), &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch %ss: %w", s.spec.label, err)
	}

	items, err := decodeCollection[T](raw)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %ss: %w", s.spec.label, err)
	}
	return items, nil
}

func (s *baseService[T]) GetByID(ctx context.Context, id int) (T, error) {
	var item T
	err := s.gateway.Request(ctx, http.MethodGet, fmt.Sprintf("%s/%d", s.spec.endpoint, id), nil, &item)
	if err != nil {
		if models.IsNotFound(err) {
			return item, &models.NotFoundError{Resource: s.spec.label, ID: id}
		}
		return item, fmt.Errorf("failed to fetch %s with id %d: %w", s.spec.label, id, err)
	}
	return item, nil
}

// Create валидирует данные до отправки: при нарушении правил сетевой
// вызов не выполняется вовсе.
func (s *baseService[T]) Create(ctx context.Context, data T) (T, error) {
	var created T
	if err := s.spec.schema.Validate(data); err != nil {
		return created, err
	}
	if err := s.gateway.Request(ctx, http.MethodPost, s.spec.endpoint, data, &created); err != nil {
		return created, fmt.Errorf("failed to create %s: %w", s.spec.label, err)
	}
	return created, nil
}

func (s *baseService[T]) Update(ctx context.Context, id int, data T) (T, error) {
	var updated T
	if err := s.spec.schema.Validate(data); err != nil {
		return updated, err
	}
	err := s.gateway.Request(ctx, http.MethodPut, fmt.Sprintf("%s/%d", s.spec.endpoint, id), data, &updated)
	if err != nil {
		return updated, fmt.Errorf("failed to update %s with id %d: %w", s.spec.label, id, err)
	}
	return updated, nil
}

func (s *baseService[T]) Delete(ctx context.Context, id int) error {
	err := s.gateway.Request(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", s.spec.endpoint, id), nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete %s with id %d: %w", s.spec.label, id, err)
	}
	return nil
}

// Search сначала спрашивает поисковый эндпоинт бэкенда; если тот
// недоступен (404/405) — забирает ограниченную коллекцию целиком и
// фильтрует локально, упаковывая результат в тот же конверт.
func (s *baseService[T]) Search(ctx context.Context, params request.SearchParams) (*response.Page[T], error) {
	var raw json.RawMessage
	err := s.gateway.RequestValues(ctx, http.MethodGet, s.spec.endpoint+"/search", params.Values(), &raw)
	if err == nil {
		page, err := decodePage[T](raw)
		if err != nil {
			return nil, fmt.Errorf("failed to search %ss: %w", s.spec.label, err)
		}
		return page, nil
	}

	var requestErr *models.RequestError
	if !errors.As(err, &requestErr) || (requestErr.Status != http.StatusNotFound && requestErr.Status != http.StatusMethodNotAllowed) {
		return nil, fmt.Errorf("failed to search %ss: %w", s.spec.label, err)
	}

	items, err := s.List(ctx, request.PageOf(0, s.spec.fetchLimit))
	if err != nil {
		return nil, err
	}

	pageNum := extraInt(params.Extra, "page", 0)
	size := extraInt(params.Extra, "size", 25)
	filtered := query.Filter(items, params.Term, s.spec.searchFields)
	page := query.Paginate(filtered, pageNum, size)
	return &page, nil
}

func extraInt(extra map[string]string, key string, fallback int) int {
	if raw, ok := extra[key]; ok {
		if parsed, err := strconv.Atoi(raw); err == nil {
			return parsed
		}
	}
	return fallback
}

// decodeCollection принимает и голый массив, и пагинационный конверт.
func decodeCollection[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var page response.Page[T]
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func decodePage[T any](raw json.RawMessage) (*response.Page[T], error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return &response.Page[T]{}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return &response.Page[T]{
			Content:       items,
			TotalElements: len(items),
			TotalPages:    1,
			Size:          len(items),
		}, nil
	}

	var page response.Page[T]
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
