package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is one line of a confirmed order, serialized into the order's
// JSON items column.
type OrderItem struct {
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}

type Order struct {
	Id         uuid.UUID
	CustomerId uuid.UUID
	Items      []OrderItem
	Total      float64
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
