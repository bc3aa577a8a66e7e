package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)

// ShippingAddress es la parte de envío del formulario de checkout
type ShippingAddress struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postalCode"`
}

// OrderSummary contiene los importes del resumen de compra
type OrderSummary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Order representa un pedido (simulado)
type Order struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	SessionID       string          `json:"-"`
	UserID          string          `json:"userId,omitempty"`
	Items           []CartItem      `json:"items"`
	Status          OrderStatus     `json:"status"`
	Summary         OrderSummary    `json:"summary"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	CardLast4       string          `json:"cardLast4"`
	CreatedAt       time.Time       `json:"createdAt"`
}
