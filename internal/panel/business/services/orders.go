package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"commerceadmin_api/config"
	"commerceadmin_api/config/values"
	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/business/models/dto/request"
	"commerceadmin_api/internal/panel/business/models/dto/response"
	"commerceadmin_api/internal/panel/business/services/validate"
)

const ordersEndpoint = "/orders"

type OrderService struct {
	baseService[models.Order]
	details *OrderDetailService
}

func NewOrderService(cfg config.PanelAPIConfig, limits values.PanelLimits, writer io.Writer, details *OrderDetailService) *OrderService {
	return &OrderService{
		baseService: newBaseService(cfg, writer, "[ OrderService ]", resourceSpec[models.Order]{
			label:      "order",
			endpoint:   ordersEndpoint,
			schema:     orderSchema(),
			fetchLimit: limits.SearchFetchLimit,
			searchFields: func(order models.Order) []string {
				return []string{order.CustomerName, order.CustomerEmail, strconv.Itoa(order.ID)}
			},
		}),
		details: details,
	}
}

func orderSchema() *validate.Schema[models.Order] {
	return validate.NewSchema(
		validate.Field[models.Order]{
			Label:    "customer name",
			Required: true,
			MaxLen:   100,
			Value:    func(order models.Order) string { return order.CustomerName },
		},
		validate.Field[models.Order]{
			Label:    "customer email",
			Required: true,
			Value:    func(order models.Order) string { return order.CustomerEmail },
			Check: func(order models.Order) string {
				email := strings.TrimSpace(order.CustomerEmail)
				if email != "" && !strings.Contains(email, "@") {
					return "customer email must be a valid email address"
				}
				return ""
			},
		},
	)
}

// UpdateStatus переводит заказ в новый статус; статус нормализуется
// в верхний регистр и сверяется со списком допустимых.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) (models.Order, error) {
	var updated models.Order

	normalized := models.OrderStatus(strings.ToUpper(string(status)))
	known := false
	for _, candidate := range models.KnownOrderStatuses() {
		if candidate == normalized {
			known = true
			break
		}
	}
	if !known {
		return updated, &models.ValidationError{
			Violations: []string{fmt.Sprintf("unknown order status %q", status)},
		}
	}

	endpoint := fmt.Sprintf("%s/%d/status", ordersEndpoint, id)
	err := s.gateway.Request(ctx, http.MethodPatch, endpoint, request.StatusUpdate{Status: string(normalized)}, &updated)
	if err != nil {
		return updated, fmt.Errorf("failed to update status of order %d: %w", id, err)
	}
	return updated, nil
}

// ByStatus листает заказы одного статуса.
func (s *OrderService) ByStatus(ctx context.Context, status models.OrderStatus, page, size int) ([]models.Order, error) {
	endpoint := fmt.Sprintf("%s/status/%s", ordersEndpoint, strings.ToLower(string(status)))
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("size", strconv.Itoa(size))

	var raw json.RawMessage
	if err := s.gateway.RequestValues(ctx, http.MethodGet, endpoint, values, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch orders by status %s: %w", status, err)
	}
	orders, err := decodeCollection[models.Order](raw)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders by status %s: %w", status, err)
	}
	return orders, nil
}

func (s *OrderService) Stats(ctx context.Context) (*response.OrderStats, error) {
	var stats response.OrderStats
	if err := s.gateway.Request(ctx, http.MethodGet, ordersEndpoint+"/stats", nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch order stats: %w", err)
	}
	return &stats, nil
}

func (s *OrderService) CreateOrUpdate(ctx context.Context, order models.Order) (models.Order, error) {
	var saved models.Order
	if err := s.spec.schema.Validate(order); err != nil {
		return saved, err
	}
	err := s.gateway.Request(ctx, http.MethodPost, ordersEndpoint+"/createOrUpdateOrders", order, &saved)
	if err != nil {
		return saved, fmt.Errorf("failed to create or update order: %w", err)
	}
	return saved, nil
}

// WithDetails собирает заказ и его позиции параллельно.
func (s *OrderService) WithDetails(ctx context.Context, id int) (*models.OrderWithDetails, error) {
	var (
		order   models.Order
		details []models.OrderDetail
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		order, err = s.GetByID(groupCtx, id)
		return err
	})
	group.Go(func() error {
		var err error
		details, err = s.details.ByOrderID(groupCtx, id)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch order with details: %w", err)
	}

	if details == nil {
		details = []models.OrderDetail{}
	}
	return &models.OrderWithDetails{Order: order, OrderDetails: details}, nil
}
