//go:build unit

package order_test

import (
	"testing"

	"printcanvas/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTotals() order.Totals {
	return order.Totals{PriceCents: 4999, ShippingCents: 895, CreditRefundCents: 20}
}

func TestNewOrder(t *testing.T) {
	designID := uuid.New()
	customerID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := order.NewOrder(designID, customerID, "framed-print", "12x16", nil, 1, validTotals())
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, order.StatusPending, actual.Status())
		assert.Equal(t, designID, actual.DesignID())
	})

	t.Run("quantity bounds", func(t *testing.T) {
		for _, q := range []int32{1, order.MaxQuantity} {
			_, err := order.NewOrder(designID, customerID, "framed-print", "12x16", nil, q, validTotals())
			assert.NoError(t, err)
		}
		for _, q := range []int32{0, -1, order.MaxQuantity + 1} {
			_, err := order.NewOrder(designID, customerID, "framed-print", "12x16", nil, q, validTotals())
			assert.ErrorIs(t, err, order.ErrInvalidQuantity)
		}
	})

	t.Run("refund above total rejected", func(t *testing.T) {
		totals := order.Totals{PriceCents: 100, ShippingCents: 0, CreditRefundCents: 101}
		_, err := order.NewOrder(designID, customerID, "framed-print", "12x16", nil, 1, totals)
		assert.ErrorIs(t, err, order.ErrRefundExceeds)
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.StatusPending:    {order.StatusProcessing, order.StatusCanceled},
		order.StatusProcessing: {order.StatusShipped, order.StatusCanceled},
		order.StatusShipped:    {order.StatusDelivered, order.StatusCanceled},
		order.StatusDelivered:  {},
		order.StatusCanceled:   {},
	}

	all := []order.Status{
		order.StatusPending, order.StatusProcessing, order.StatusShipped,
		order.StatusDelivered, order.StatusCanceled,
	}

	for from, nexts := range allowed {
		ok := make(map[order.Status]bool, len(nexts))
		for _, n := range nexts {
			ok[n] = true
		}
		for _, to := range all {
			assert.Equal(t, ok[to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, order.StatusPending.IsValid())
	assert.True(t, order.StatusCanceled.IsValid())
	assert.False(t, order.Status("returned").IsValid())
}
