package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/solid-examples/internal/api-gateway/core/domain/entity"
	"github.com/jcmexdev/solid-examples/internal/api-gateway/infra/adapters/service"
	"github.com/jcmexdev/solid-examples/internal/api-gateway/infra/httpx/middlewares"
	"github.com/jcmexdev/solid-examples/internal/order-service/app"
	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
)

func newTestRouter() http.Handler {
	checkout := app.NewCheckoutService(sink.Null{},
		app.WithIDGenerator(func() string { return "order-1" }),
		app.WithClock(func() time.Time { return time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC) }),
	)
	return NewRouter(NewHandler(service.NewLocalOrderService(checkout)))
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	rr := doRequest(t, newTestRouter(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestCreateOrder(t *testing.T) {
	body := `{
		"customer": "oscar",
		"items": [
			{"product": "A", "quantity": 1, "price": 50},
			{"product": "B", "quantity": 2, "price": "100.00"}
		],
		"discount_percent": 10,
		"payment_method": "credit_card",
		"delivery_method": "courier",
		"notification_channel": "sms"
	}`

	rr := doRequest(t, newTestRouter(), http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp OrderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "order-1", resp.ID)
	assert.Equal(t, "oscar", resp.Customer)
	assert.Equal(t, service.StatusCompleted, resp.Status)
	assert.Equal(t, "250.00", resp.Subtotal)
	assert.Equal(t, "225.00", resp.Total)
	assert.Equal(t, "2025-01-02T10:00:00Z", resp.CreatedAt)
	assert.Equal(t, []OrderItemResponse{
		{Product: "A", Quantity: 1, Price: "50.00"},
		{Product: "B", Quantity: 2, Price: "100.00"},
	}, resp.Items)
	assert.Equal(t, []string{
		"225.00 paid by credit card",
		"Order order-1 delivered by courier",
		"SMS notification: Order order-1 placed",
	}, resp.Actions)
}

func TestCreateOrder_WithoutDiscount(t *testing.T) {
	body := `{"items":[{"product":"A","quantity":3,"price":10}],"payment_method":"paypal","delivery_method":"post"}`

	rr := doRequest(t, newTestRouter(), http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp OrderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "30.00", resp.Total)
}

func TestCreateOrder_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{
			name:     "malformed json",
			body:     `{"items":`,
			wantCode: "invalid_json",
		},
		{
			name:     "no items",
			body:     `{"items":[],"payment_method":"paypal","delivery_method":"post"}`,
			wantCode: "invalid_request",
		},
		{
			name:     "unknown payment method",
			body:     `{"items":[{"product":"A","quantity":1,"price":1}],"payment_method":"cash","delivery_method":"post"}`,
			wantCode: "unknown_payment_method",
		},
		{
			name:     "unknown delivery method",
			body:     `{"items":[{"product":"A","quantity":1,"price":1}],"payment_method":"paypal","delivery_method":"drone"}`,
			wantCode: "unknown_delivery_method",
		},
		{
			name:     "unknown notification channel",
			body:     `{"items":[{"product":"A","quantity":1,"price":1}],"payment_method":"paypal","delivery_method":"post","notification_channel":"fax"}`,
			wantCode: "unknown_notification_channel",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, newTestRouter(), http.MethodPost, "/orders", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

type failingOrderService struct{}

func (failingOrderService) PlaceOrder(context.Context, entity.PlaceOrder) (*entity.Order, error) {
	return nil, errors.New("boom")
}

func TestCreateOrder_InternalError(t *testing.T) {
	h := NewRouter(NewHandler(failingOrderService{}))

	rr := doRequest(t, h, http.MethodPost, "/orders", `{"items":[]}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal_error","message":"boom"}`, rr.Body.String())
}

type capturingOrderService struct {
	got entity.PlaceOrder
}

func (c *capturingOrderService) PlaceOrder(_ context.Context, req entity.PlaceOrder) (*entity.Order, error) {
	c.got = req
	return &entity.Order{ID: "x", Status: service.StatusCompleted}, nil
}

func TestCreateOrder_ForwardsIdempotencyKey(t *testing.T) {
	fake := &capturingOrderService{}
	h := NewRouter(NewHandler(fake))

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":[{"product":"A","quantity":-2,"price":-1}]}`))
	req.Header.Set(middlewares.HeaderXIdempotencyKey, "idem-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "idem-42", fake.got.IdempotencyKey)
	require.Len(t, fake.got.Items, 1)
	assert.Equal(t, -2, fake.got.Items[0].Quantity)
	assert.JSONEq(t, `[]`, mustField(t, rr.Body.Bytes(), "actions"))
}

func TestUnknownRoute(t *testing.T) {
	rr := doRequest(t, newTestRouter(), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func mustField(t *testing.T, body []byte, field string) string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &m))
	return string(m[field])
}
