// Package domain holds the order aggregate and the capabilities it is
// composed from: a discount policy to price it, a payment method to charge it
// and a delivery method to fulfil it.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotAssigned  = errors.New("order has no payment method")
	ErrDeliveryNotAssigned = errors.New("order has no delivery method")
	ErrOrderNotPriced      = errors.New("order has not been priced")
)

// Payment charges an amount. Implementations emit a record of the
// transaction and always succeed.
type Payment interface {
	ProcessPayment(amount decimal.Decimal)
}

// Delivery fulfils an order that has been paid for.
type Delivery interface {
	DeliverOrder(order *Order)
}

// LineItem is one product entry of an order.
type LineItem struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order aggregates line items and drives pricing and fulfillment.
// The zero value is an empty, unpriced order.
type Order struct {
	ID string

	Payment  Payment
	Delivery Delivery

	items  []LineItem
	price  decimal.Decimal
	priced bool
}

func NewOrder(id string) *Order {
	return &Order{ID: id}
}

// AddItem appends a line item. Quantity and price are taken as given,
// including zero and negative values.
func (o *Order) AddItem(product string, quantity int, price decimal.Decimal) {
	o.items = append(o.items, LineItem{
		Product:   product,
		Quantity:  quantity,
		UnitPrice: price,
	})
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Subtotal is the sum of quantity × unit price over all items, before any
// discount.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// CalculatePrice stores calc applied to the subtotal as the order's price and
// returns it. Calling it again recomputes from scratch.
func (o *Order) CalculatePrice(calc DiscountCalculator) decimal.Decimal {
	o.price = calc.ApplyDiscount(o.Subtotal())
	o.priced = true
	return o.price
}

// Price is zero until CalculatePrice has run.
func (o *Order) Price() decimal.Decimal {
	return o.price
}

func (o *Order) Priced() bool {
	return o.priced
}

// ProcessOrder charges the stored price and then hands the order to the
// delivery method. Nothing is charged or delivered if any precondition is
// missing.
func (o *Order) ProcessOrder() error {
	if o.Payment == nil {
		return ErrPaymentNotAssigned
	}
	if o.Delivery == nil {
		return ErrDeliveryNotAssigned
	}
	if !o.priced {
		return ErrOrderNotPriced
	}

	o.Payment.ProcessPayment(o.price)
	o.Delivery.DeliverOrder(o)
	return nil
}
