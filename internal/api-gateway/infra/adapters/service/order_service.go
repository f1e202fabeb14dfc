package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jcmexdev/solid-examples/internal/api-gateway/core/domain/entity"
	"github.com/jcmexdev/solid-examples/internal/api-gateway/core/ports"
	"github.com/jcmexdev/solid-examples/internal/order-service/app"
)

// StatusCompleted is the only status a placed order can have: pricing,
// payment and delivery all happen within the request.
const StatusCompleted = "COMPLETED"

var _ ports.OrderService = (*localOrderService)(nil)

// localOrderService runs the checkout in-process.
type localOrderService struct {
	checkout *app.CheckoutService
}

func NewLocalOrderService(checkout *app.CheckoutService) ports.OrderService {
	return &localOrderService{checkout: checkout}
}

func (s *localOrderService) PlaceOrder(ctx context.Context, req entity.PlaceOrder) (*entity.Order, error) {
	items := make([]app.ItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = app.ItemInput{
			Product:  it.Product,
			Quantity: it.Quantity,
			Price:    it.Price,
		}
	}

	if req.IdempotencyKey != "" {
		slog.DebugContext(ctx, "placing order", "idempotency_key", req.IdempotencyKey)
	}

	receipt, err := s.checkout.Checkout(ctx, app.CheckoutInput{
		Customer:            req.Customer,
		Items:               items,
		DiscountPercent:     req.DiscountPercent,
		PaymentMethod:       req.PaymentMethod,
		DeliveryMethod:      req.DeliveryMethod,
		NotificationChannel: req.NotificationChannel,
	})
	if err != nil {
		return nil, err
	}
	return mapReceiptToEntity(receipt), nil
}

func mapReceiptToEntity(r *app.Receipt) *entity.Order {
	items := make([]entity.OrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = entity.OrderItem{
			Product:  it.Product,
			Quantity: it.Quantity,
			Price:    it.UnitPrice,
		}
	}
	return &entity.Order{
		ID:             r.ID,
		Customer:       r.Customer,
		Status:         StatusCompleted,
		Subtotal:       r.Subtotal,
		Total:          r.Total,
		PaymentMethod:  r.PaymentMethod,
		DeliveryMethod: r.DeliveryMethod,
		Items:          items,
		Actions:        r.Actions,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}
