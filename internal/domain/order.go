package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
}

// OrderPayload is the shape sent to the remote order store.
type OrderPayload struct {
	Items           []OrderItem     `json:"items"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	ShippingAddress Address         `json:"shippingAddress"`
}

// Order is the canonical record built once at checkout. Total and
// EstimatedDeliveryDate are frozen at creation and never recomputed.
type Order struct {
	OrderID               string          `json:"orderId"`
	Date                  time.Time       `json:"date"`
	Items                 []OrderItem     `json:"items"`
	Total                 decimal.Decimal `json:"total"`
	PaymentMethod         PaymentMethod   `json:"paymentMethod"`
	ShippingAddress       Address         `json:"shippingAddress"`
	Status                OrderStatus     `json:"status"`
	EstimatedDeliveryDate time.Time       `json:"estimatedDeliveryDate"`
}
