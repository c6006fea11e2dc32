package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/business/models/dto/request"
	"commerceadmin_api/internal/panel/business/query"
	"commerceadmin_api/internal/panel/business/services"
	"commerceadmin_api/metrics"
	"commerceadmin_api/pkg/logger"
)

// Collection — локальная копия одного ресурса бэкенда. Коллекция
// принадлежит одному владельцу: каждый экран панели держит свой
// экземпляр, межэкземплярного разделения нет.
//
// Политика согласованности: Refresh заменяет коллекцию целиком, мутации
// применяют единичную запись из ответа сервера без повторного fetch.
// Каждая мутация получает монотонный номер; ответ Refresh, стартовавшего
// до последней мутации, отбрасывается как устаревший.
type Collection[T models.Record] struct {
	mu      sync.RWMutex
	items   []T
	loading bool
	lastErr error
	closed  bool

	mutationSeq atomic.Uint64
	inflight    singleflight.Group
	searchSeq   query.Sequencer

	svc   services.CollectionService[T]
	log   logger.Logger
	stats *metrics.SyncMetrics
}

func NewCollection[T models.Record](svc services.CollectionService[T], log logger.Logger) *Collection[T] {
	return &Collection[T]{
		svc: svc,
		log: log,
		// коллекция начинает жизнь в состоянии загрузки: первым действием
		// владелец вызывает Refresh
		loading: true,
		stats:   &metrics.SyncMetrics{},
	}
}

// Items возвращает копию коллекции в порядке выборки.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(make([]T, 0, len(c.items)), c.items...)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// LastError возвращает последнюю ошибку чтения; успешный Refresh её
// сбрасывает.
func (c *Collection[T]) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// Metrics отдаёт счётчики синхронизации этой коллекции.
func (c *Collection[T]) Metrics() *metrics.SyncMetrics {
	return c.stats
}

// Close помечает коллекцию брошенной: ответы запросов, оставшихся в
// полёте, больше не трогают её состояние.
func (c *Collection[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Refresh заменяет коллекцию свежим списком. При ошибке прежние данные
// остаются доступными, а ошибка сохраняется в состоянии; флаг загрузки
// снимается в любом случае.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	c.setLoading(true)
	defer c.setLoading(false)

	seqAtStart := c.mutationSeq.Load()

	items, err := c.svc.List(ctx, request.ListParams{})
	if err != nil {
		c.stats.ErroredRequests.Add(1)
		c.recordError(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	if c.mutationSeq.Load() != seqAtStart {
		// пока ответ шёл, успела примениться мутация — список устарел
		c.stats.StaleDiscarded.Add(1)
		return nil
	}

	c.items = append(make([]T, 0, len(items)), items...)
	c.lastErr = nil
	c.stats.RefreshCount.Add(1)
	return nil
}

// Add создаёт запись и дописывает серверный ответ в конец коллекции.
// Повторный вызов с тем же payload, пока первый в полёте, не порождает
// второй сетевой запрос — оба получают один результат.
func (c *Collection[T]) Add(ctx context.Context, data T) (T, error) {
	var zero T

	key, err := mutationKey("create", data)
	if err != nil {
		return zero, err
	}

	result, err, _ := c.inflight.Do(key, func() (interface{}, error) {
		created, err := c.svc.Create(ctx, data)
		if err != nil {
			return zero, err
		}

		c.mutationSeq.Add(1)
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.closed {
			c.items = append(c.items, created)
		}
		c.stats.MutationCount.Add(1)
		return created, nil
	})
	if err != nil {
		c.recordError(err)
		return zero, err
	}
	return result.(T), nil
}

// Update заменяет запись с совпадающим id целиком ответом сервера.
// Коллекции панели малы, линейный проход достаточен.
func (c *Collection[T]) Update(ctx context.Context, id int, data T) (T, error) {
	var zero T

	result, err, _ := c.inflight.Do(fmt.Sprintf("update:%d", id), func() (interface{}, error) {
		updated, err := c.svc.Update(ctx, id, data)
		if err != nil {
			return zero, err
		}

		c.mutationSeq.Add(1)
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.closed {
			for i := range c.items {
				if c.items[i].RecordID() == id {
					c.items[i] = updated
					break
				}
			}
		}
		c.stats.MutationCount.Add(1)
		return updated, nil
	})
	if err != nil {
		c.recordError(err)
		return zero, err
	}
	return result.(T), nil
}

// Remove удаляет запись на бэкенде и выфильтровывает её локально.
func (c *Collection[T]) Remove(ctx context.Context, id int) error {
	_, err, _ := c.inflight.Do(fmt.Sprintf("delete:%d", id), func() (interface{}, error) {
		if err := c.svc.Delete(ctx, id); err != nil {
			return nil, err
		}

		c.mutationSeq.Add(1)
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.closed {
			filtered := c.items[:0]
			for _, item := range c.items {
				if item.RecordID() != id {
					filtered = append(filtered, item)
				}
			}
			c.items = filtered
		}
		c.stats.MutationCount.Add(1)
		return nil, nil
	})
	if err != nil {
		c.recordError(err)
		return err
	}
	return nil
}

// Search заменяет коллекцию результатами поиска. Применяется только
// ответ последнего запроса: результаты перегнанных поисков
// отбрасываются по метке.
func (c *Collection[T]) Search(ctx context.Context, term string) ([]T, error) {
	tag := c.searchSeq.Next()

	c.setLoading(true)
	defer c.setLoading(false)

	page, err := c.svc.Search(ctx, request.SearchParams{Term: term})
	if err != nil {
		c.stats.ErroredRequests.Add(1)
		c.recordError(err)
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.searchSeq.Latest(tag) {
		c.stats.StaleDiscarded.Add(1)
		return page.Content, nil
	}

	c.items = append(make([]T, 0, len(page.Content)), page.Content...)
	c.lastErr = nil
	return page.Content, nil
}

func (c *Collection[T]) setLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

func (c *Collection[T]) recordError(err error) {
	c.log.Log("collection request failed: %v", err)
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.lastErr = err
	}
}

// mutationKey строит ключ дедупликации create-запросов из payload.
func mutationKey(op string, data interface{}) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to build mutation key: %w", err)
	}
	return op + ":" + string(payload), nil
}
