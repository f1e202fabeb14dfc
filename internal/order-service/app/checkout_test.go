package app

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/solid-examples/internal/order-service/domain"
	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
)

var fixedNow = time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

func newTestService(out sink.Sink) *CheckoutService {
	return NewCheckoutService(out,
		WithIDGenerator(func() string { return "order-1" }),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func validInput() CheckoutInput {
	return CheckoutInput{
		Customer: "oscar",
		Items: []ItemInput{
			{Product: "A", Quantity: 1, Price: decimal.RequireFromString("50")},
			{Product: "B", Quantity: 2, Price: decimal.RequireFromString("100")},
		},
		DiscountPercent:     decimal.NewFromInt(10),
		PaymentMethod:       "credit_card",
		DeliveryMethod:      "courier",
		NotificationChannel: "email",
	}
}

func TestCheckoutService_Checkout(t *testing.T) {
	console := sink.NewRecorder()
	svc := newTestService(console)

	receipt, err := svc.Checkout(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "order-1", receipt.ID)
	assert.Equal(t, "oscar", receipt.Customer)
	assert.True(t, decimal.RequireFromString("250").Equal(receipt.Subtotal))
	assert.True(t, decimal.RequireFromString("225").Equal(receipt.Total))
	assert.Equal(t, "credit_card", receipt.PaymentMethod)
	assert.Equal(t, "courier", receipt.DeliveryMethod)
	assert.Equal(t, fixedNow, receipt.CreatedAt)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, domain.LineItem{Product: "B", Quantity: 2, UnitPrice: decimal.RequireFromString("100")}, receipt.Items[1])

	want := []string{
		"225.00 paid by credit card",
		"Order order-1 delivered by courier",
		"Email notification: Order order-1 placed",
	}
	assert.Equal(t, want, receipt.Actions)
	assert.Equal(t, want, console.Messages())
}

func TestCheckoutService_NoDiscountNoNotification(t *testing.T) {
	in := validInput()
	in.DiscountPercent = decimal.Zero
	in.NotificationChannel = ""
	in.PaymentMethod = "paypal"
	in.DeliveryMethod = "pickup_point"

	receipt, err := newTestService(sink.Null{}).Checkout(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("250").Equal(receipt.Total))
	assert.Equal(t, []string{
		"250.00 paid via PayPal",
		"Order order-1 delivered to pickup point",
	}, receipt.Actions)
}

func TestCheckoutService_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CheckoutInput)
		wantErr error
	}{
		{name: "no items", mutate: func(in *CheckoutInput) { in.Items = nil }, wantErr: ErrNoItems},
		{name: "unknown payment", mutate: func(in *CheckoutInput) { in.PaymentMethod = "cash" }, wantErr: ErrUnknownPaymentMethod},
		{name: "unknown delivery", mutate: func(in *CheckoutInput) { in.DeliveryMethod = "drone" }, wantErr: ErrUnknownDeliveryMethod},
		{name: "unknown channel", mutate: func(in *CheckoutInput) { in.NotificationChannel = "fax" }, wantErr: ErrUnknownNotificationChannel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := sink.NewRecorder()
			in := validInput()
			tt.mutate(&in)

			receipt, err := newTestService(console).Checkout(context.Background(), in)

			assert.Nil(t, receipt)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, console.Len(), "nothing is emitted for a rejected checkout")
		})
	}
}

func TestNewCheckoutService_DefaultsGenerateIDs(t *testing.T) {
	svc := NewCheckoutService(sink.Null{})

	first, err := svc.Checkout(context.Background(), validInput())
	require.NoError(t, err)
	second, err := svc.Checkout(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}
