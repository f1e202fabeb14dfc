package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jcmexdev/solid-examples/internal/api-gateway/core/domain/entity"
	"github.com/jcmexdev/solid-examples/internal/api-gateway/core/ports"
	"github.com/jcmexdev/solid-examples/internal/api-gateway/infra/httpx/middlewares"
	"github.com/jcmexdev/solid-examples/internal/order-service/app"
)

// Handler serves the checkout API.
type Handler struct {
	orderService ports.OrderService
}

func NewHandler(os ports.OrderService) *Handler {
	return &Handler{orderService: os}
}

// CreateOrder prices and fulfils an order in one go and answers with the
// receipt. Quantities and prices are passed through unchecked.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.OrderItem{
			Product:  it.Product,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	ctx := r.Context()
	slog.InfoContext(ctx, "placing order",
		"request_id", middlewares.RequestID(ctx),
		"customer", req.Customer,
		"items", len(items),
	)

	order, err := h.orderService.PlaceOrder(ctx, entity.PlaceOrder{
		Customer:            req.Customer,
		IdempotencyKey:      middlewares.IdempotencyKey(ctx),
		Items:               items,
		DiscountPercent:     req.DiscountPercent,
		PaymentMethod:       req.PaymentMethod,
		DeliveryMethod:      req.DeliveryMethod,
		NotificationChannel: req.NotificationChannel,
	})
	if err != nil {
		status, code := classify(err)
		if status == http.StatusInternalServerError {
			slog.ErrorContext(ctx, "place order failed", "error", err)
		}
		writeError(w, status, code, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, mapOrderToResponse(order))
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, app.ErrNoItems):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, app.ErrUnknownPaymentMethod):
		return http.StatusBadRequest, "unknown_payment_method"
	case errors.Is(err, app.ErrUnknownDeliveryMethod):
		return http.StatusBadRequest, "unknown_delivery_method"
	case errors.Is(err, app.ErrUnknownNotificationChannel):
		return http.StatusBadRequest, "unknown_notification_channel"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func mapOrderToResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, it := range order.Items {
		items[i] = OrderItemResponse{
			Product:  it.Product,
			Quantity: it.Quantity,
			Price:    it.Price.StringFixed(2),
		}
	}
	actions := order.Actions
	if actions == nil {
		actions = []string{}
	}
	return OrderResponse{
		ID:             order.ID,
		Customer:       order.Customer,
		Status:         order.Status,
		Subtotal:       order.Subtotal.StringFixed(2),
		Total:          order.Total.StringFixed(2),
		PaymentMethod:  order.PaymentMethod,
		DeliveryMethod: order.DeliveryMethod,
		Items:          items,
		Actions:        actions,
		CreatedAt:      order.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
