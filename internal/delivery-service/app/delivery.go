package deliveryservice

import (
	"errors"
	"fmt"

	"github.com/jcmexdev/solid-examples/internal/order-service/domain"
	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
)

const (
	MethodCourier     = "courier"
	MethodPost        = "post"
	MethodPickUpPoint = "pickup_point"
)

var ErrUnknownMethod = errors.New("unknown delivery method")

var (
	_ domain.Delivery = (*CourierDelivery)(nil)
	_ domain.Delivery = (*PostDelivery)(nil)
	_ domain.Delivery = (*PickUpPointDelivery)(nil)
)

type CourierDelivery struct {
	out sink.Sink
}

func NewCourierDelivery(out sink.Sink) *CourierDelivery {
	return &CourierDelivery{out: out}
}

func (d *CourierDelivery) DeliverOrder(order *domain.Order) {
	d.out.Write(describe(order, "delivered by courier"))
}

type PostDelivery struct {
	out sink.Sink
}

func NewPostDelivery(out sink.Sink) *PostDelivery {
	return &PostDelivery{out: out}
}

func (d *PostDelivery) DeliverOrder(order *domain.Order) {
	d.out.Write(describe(order, "delivered by post"))
}

type PickUpPointDelivery struct {
	out sink.Sink
}

func NewPickUpPointDelivery(out sink.Sink) *PickUpPointDelivery {
	return &PickUpPointDelivery{out: out}
}

func (d *PickUpPointDelivery) DeliverOrder(order *domain.Order) {
	d.out.Write(describe(order, "delivered to pickup point"))
}

// ForMethod returns the delivery method registered under name.
func ForMethod(name string, out sink.Sink) (domain.Delivery, error) {
	switch name {
	case MethodCourier:
		return NewCourierDelivery(out), nil
	case MethodPost:
		return NewPostDelivery(out), nil
	case MethodPickUpPoint:
		return NewPickUpPointDelivery(out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

func describe(order *domain.Order, how string) string {
	if order == nil || order.ID == "" {
		return "Order " + how
	}
	return fmt.Sprintf("Order %s %s", order.ID, how)
}
