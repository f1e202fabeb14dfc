package entity

import "github.com/shopspring/decimal"

type OrderItem struct {
	Product  string
	Quantity int
	Price    decimal.Decimal
}

// PlaceOrder is everything the gateway needs to run one checkout.
type PlaceOrder struct {
	Customer            string
	IdempotencyKey      string
	Items               []OrderItem
	DiscountPercent     decimal.Decimal
	PaymentMethod       string
	DeliveryMethod      string
	NotificationChannel string
}

type Order struct {
	ID             string
	Customer       string
	Status         string
	Subtotal       decimal.Decimal
	Total          decimal.Decimal
	PaymentMethod  string
	DeliveryMethod string
	Items          []OrderItem
	Actions        []string
	CreatedAt      string
}
