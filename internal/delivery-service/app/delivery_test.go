package deliveryservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/solid-examples/internal/order-service/domain"
	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
)

func TestDeliveryMethods_EmitOneRecord(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{MethodCourier, "Order o-1 delivered by courier"},
		{MethodPost, "Order o-1 delivered by post"},
		{MethodPickUpPoint, "Order o-1 delivered to pickup point"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := sink.NewRecorder()
			d, err := ForMethod(tt.method, rec)
			require.NoError(t, err)

			d.DeliverOrder(domain.NewOrder("o-1"))

			assert.Equal(t, []string{tt.want}, rec.Messages())
		})
	}
}

func TestDeliverOrder_WithoutID(t *testing.T) {
	rec := sink.NewRecorder()

	NewCourierDelivery(rec).DeliverOrder(&domain.Order{})
	NewPostDelivery(rec).DeliverOrder(nil)

	assert.Equal(t, []string{"Order delivered by courier", "Order delivered by post"}, rec.Messages())
}

func TestForMethod_Unknown(t *testing.T) {
	d, err := ForMethod("drone", sink.Null{})

	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}
