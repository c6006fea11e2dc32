package services

import (
	"context"

	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/business/models/dto/request"
	"commerceadmin_api/internal/panel/business/models/dto/response"
)

// CollectionService — CRUD-контракт ресурсного сервиса, который
// потребляет слой синхронизации коллекций.
type CollectionService[T models.Record] interface {
	List(ctx context.Context, params request.ListParams) ([]T, error)
	GetByID(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, data T) (T, error)
	Update(ctx context.Context, id int, data T) (T, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, params request.SearchParams) (*response.Page[T], error)
}
