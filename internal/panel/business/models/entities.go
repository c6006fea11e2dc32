package models

import "time"

// Record — общий контракт доменных записей панели: у каждой есть
// числовой id, который присваивает бэкенд при создании.
type Record interface {
	RecordID() int
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// KnownOrderStatuses перечисляет допустимые статусы заказа.
func KnownOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

type ProductLine struct {
	ID              int       `json:"id,omitempty"`
	ProductLine     string    `json:"productLine"`
	TextDescription string    `json:"textDescription"`
	HTMLDescription string    `json:"htmlDescription,omitempty"`
	Image           string    `json:"image,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

func (p ProductLine) RecordID() int { return p.ID }

type Product struct {
	ID            int       `json:"id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Quantity      int       `json:"quantity"`
	ProductLineID int       `json:"productLineId,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

func (p Product) RecordID() int { return p.ID }

// Order.Total считает бэкенд; клиент его не пересчитывает.
type Order struct {
	ID            int         `json:"id,omitempty"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Status        OrderStatus `json:"status,omitempty"`
	Comments      string      `json:"comments,omitempty"`
	Total         float64     `json:"total,omitempty"`
	CreatedAt     time.Time   `json:"createdAt,omitempty"`
}

func (o Order) RecordID() int { return o.ID }

type OrderDetail struct {
	ID        int       `json:"id,omitempty"`
	OrderID   int       `json:"orderId"`
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	PriceEach float64   `json:"priceEach"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

func (d OrderDetail) RecordID() int { return d.ID }

// OrderWithDetails — заказ вместе с его позициями.
type OrderWithDetails struct {
	Order
	OrderDetails []OrderDetail `json:"orderDetails"`
}
