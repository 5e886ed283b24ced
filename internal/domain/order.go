package domain

import "time"

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "Standard Shipping"
	ShippingExpress  ShippingMethod = "Express Shipping"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

// ValidStatus reports whether s is one of the statuses an admin may
// assign to an order.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderLine is the submission shape of a cart line.
type OrderLine struct {
	ProductID      string `json:"product_id"`
	Title          string `json:"title"`
	UnitPriceCents int64  `json:"price"`
	Quantity       int    `json:"quantity"`
	Image          string `json:"image,omitempty"`
}

// OrderDraft is the payload handed to the order-submission
// collaborator. TotalCents is always SubtotalCents + ShippingCents.
type OrderDraft struct {
	Lines          []OrderLine    `json:"items"`
	SubtotalCents  int64          `json:"subtotal"`
	ShippingCents  int64          `json:"shipping"`
	TotalCents     int64          `json:"total"`
	Customer       Customer       `json:"customer"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
}

// Order is a placed order as the backend reports it.
type Order struct {
	ID             string         `json:"id"`
	Lines          []OrderLine    `json:"items"`
	SubtotalCents  int64          `json:"subtotal"`
	ShippingCents  int64          `json:"shipping"`
	TotalCents     int64          `json:"total"`
	Customer       Customer       `json:"customer"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
	Status         OrderStatus    `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}
