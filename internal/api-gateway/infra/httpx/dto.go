package httpx

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	Customer            string               `json:"customer"`
	Items               []CreateOrderItemDTO `json:"items"`
	DiscountPercent     decimal.Decimal      `json:"discount_percent"`
	PaymentMethod       string               `json:"payment_method"`
	DeliveryMethod      string               `json:"delivery_method"`
	NotificationChannel string               `json:"notification_channel,omitempty"`
}

type CreateOrderItemDTO struct {
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID             string              `json:"id"`
	Customer       string              `json:"customer,omitempty"`
	Status         string              `json:"status"`
	Subtotal       string              `json:"subtotal"`
	Total          string              `json:"total"`
	PaymentMethod  string              `json:"payment_method"`
	DeliveryMethod string              `json:"delivery_method"`
	Items          []OrderItemResponse `json:"items"`
	Actions        []string            `json:"actions"`
	CreatedAt      string              `json:"created_at"`
}

type OrderItemResponse struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
