package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	deliveryservice "github.com/jcmexdev/solid-examples/internal/delivery-service/app"
	notificationservice "github.com/jcmexdev/solid-examples/internal/notification-service/app"
	"github.com/jcmexdev/solid-examples/internal/order-service/domain"
	paymentservice "github.com/jcmexdev/solid-examples/internal/payment-service/app"
	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
)

var (
	ErrUnknownPaymentMethod       = paymentservice.ErrUnknownMethod
	ErrUnknownDeliveryMethod      = deliveryservice.ErrUnknownMethod
	ErrUnknownNotificationChannel = notificationservice.ErrUnknownChannel
	ErrNoItems                    = errors.New("order has no items")
)

type ItemInput struct {
	Product  string
	Quantity int
	Price    decimal.Decimal
}

type CheckoutInput struct {
	Customer        string
	Items           []ItemInput
	DiscountPercent decimal.Decimal
	PaymentMethod   string
	DeliveryMethod  string
	// NotificationChannel is optional; the client is not notified when empty.
	NotificationChannel string
}

// Receipt is what a checkout hands back: the priced order plus every action
// record the strategies emitted while processing it.
type Receipt struct {
	ID             string
	Customer       string
	Items          []domain.LineItem
	Subtotal       decimal.Decimal
	Total          decimal.Decimal
	PaymentMethod  string
	DeliveryMethod string
	Actions        []string
	CreatedAt      time.Time
}

// CheckoutService runs the whole order pipeline for one request: build,
// price, pay, deliver, notify.
type CheckoutService struct {
	out   sink.Sink
	newID func() string
	now   func() time.Time
}

type Option func(*CheckoutService)

func WithIDGenerator(fn func() string) Option {
	return func(s *CheckoutService) { s.newID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(s *CheckoutService) { s.now = fn }
}

// NewCheckoutService copies every action record to out in addition to the
// receipt.
func NewCheckoutService(out sink.Sink, opts ...Option) *CheckoutService {
	s := &CheckoutService{
		out:   out,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (*Receipt, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}

	rec := sink.NewRecorder()
	out := sink.Tee{rec, s.out}

	payment, err := paymentservice.ForMethod(in.PaymentMethod, out)
	if err != nil {
		return nil, err
	}
	delivery, err := deliveryservice.ForMethod(in.DeliveryMethod, out)
	if err != nil {
		return nil, err
	}
	var notifier *notificationservice.NotificationService
	if in.NotificationChannel != "" {
		n, err := notificationservice.ForChannel(in.NotificationChannel, out)
		if err != nil {
			return nil, err
		}
		notifier = notificationservice.NewNotificationService(n)
	}

	order := domain.NewOrder(s.newID())
	for _, item := range in.Items {
		order.AddItem(item.Product, item.Quantity, item.Price)
	}
	order.Payment = payment
	order.Delivery = delivery
	order.CalculatePrice(discountFor(in.DiscountPercent))

	if err := order.ProcessOrder(); err != nil {
		return nil, fmt.Errorf("process order %s: %w", order.ID, err)
	}
	if notifier != nil {
		notifier.NotifyClient(fmt.Sprintf("Order %s placed", order.ID))
	}

	slog.InfoContext(ctx, "order processed",
		"order_id", order.ID,
		"customer", in.Customer,
		"items", len(in.Items),
		"total", order.Price().StringFixed(2),
		"payment_method", in.PaymentMethod,
		"delivery_method", in.DeliveryMethod,
	)

	return &Receipt{
		ID:             order.ID,
		Customer:       in.Customer,
		Items:          order.Items(),
		Subtotal:       order.Subtotal(),
		Total:          order.Price(),
		PaymentMethod:  in.PaymentMethod,
		DeliveryMethod: in.DeliveryMethod,
		Actions:        rec.Messages(),
		CreatedAt:      s.now().UTC(),
	}, nil
}

func discountFor(percent decimal.Decimal) domain.DiscountCalculator {
	if percent.IsZero() {
		return domain.NoDiscount{}
	}
	return domain.NewPercentageDiscount(percent)
}
