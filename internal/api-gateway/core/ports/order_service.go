package ports

import (
	"context"

	"github.com/jcmexdev/solid-examples/internal/api-gateway/core/domain/entity"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, req entity.PlaceOrder) (*entity.Order, error)
}
