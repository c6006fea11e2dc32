package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"commerceadmin_api/config"
	"commerceadmin_api/config/values"
	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/business/models/dto/request"
	"commerceadmin_api/internal/panel/business/services/validate"
)

const orderDetailsEndpoint = "/orderDetails"

type OrderDetailService struct {
	baseService[models.OrderDetail]
}

func NewOrderDetailService(cfg config.PanelAPIConfig, limits values.PanelLimits, writer io.Writer) *OrderDetailService {
	return &OrderDetailService{
		baseService: newBaseService(cfg, writer, "[ OrderDetailService ]", resourceSpec[models.OrderDetail]{
			label:      "order detail",
			endpoint:   orderDetailsEndpoint,
			schema:     orderDetailSchema(),
			fetchLimit: limits.SearchFetchLimit,
			searchFields: func(detail models.OrderDetail) []string {
				return []string{strconv.Itoa(detail.ID), strconv.Itoa(detail.OrderID)}
			},
		}),
	}
}

func orderDetailSchema() *validate.Schema[models.OrderDetail] {
	return validate.NewSchema(
		validate.Field[models.OrderDetail]{
			Label: "quantity",
			Check: func(detail models.OrderDetail) string {
				if detail.Quantity < 1 {
					return "quantity must be at least 1"
				}
				return ""
			},
		},
		validate.Field[models.OrderDetail]{
			Label: "price each",
			Check: func(detail models.OrderDetail) string {
				if detail.PriceEach < 0 {
					return "price each must not be negative"
				}
				return ""
			},
		},
	)
}

// ByOrderID забирает все позиции и фильтрует на клиенте: отдельного
// эндпоинта по заказу у бэкенда нет.
func (s *OrderDetailService) ByOrderID(ctx context.Context, orderID int) ([]models.OrderDetail, error) {
	details, err := s.List(ctx, request.ListParams{})
	if err != nil {
		return nil, err
	}

	result := make([]models.OrderDetail, 0, len(details))
	for _, detail := range details {
		if detail.OrderID == orderID {
			result = append(result, detail)
		}
	}
	return result, nil
}

func (s *OrderDetailService) CreateOrUpdate(ctx context.Context, detail models.OrderDetail) (models.OrderDetail, error) {
	var saved models.OrderDetail
	if err := s.spec.schema.Validate(detail); err != nil {
		return saved, err
	}
	err := s.gateway.Request(ctx, http.MethodPost, orderDetailsEndpoint+"/createOrUpdateOrderDetails", detail, &saved)
	if err != nil {
		return saved, fmt.Errorf("failed to create or update order detail: %w", err)
	}
	return saved, nil
}
