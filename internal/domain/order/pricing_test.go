//go:build unit

package order_test

import (
	"testing"

	"printcanvas/internal/domain/order"

	"github.com/stretchr/testify/assert"
)

func TestSettleTotals(t *testing.T) {
	cases := []struct {
		name           string
		unitPrice      int32
		shipping       int32
		quantity       int32
		creditsSpent   int32
		centsPerCredit int32
		want           order.Totals
	}{
		{
			name:      "single item no refund",
			unitPrice: 4999, shipping: 895, quantity: 1, creditsSpent: 0, centsPerCredit: 20,
			want: order.Totals{PriceCents: 4999, ShippingCents: 895, CreditRefundCents: 0},
		},
		{
			name:      "one credit spent refunds its cash value",
			unitPrice: 4999, shipping: 895, quantity: 1, creditsSpent: 1, centsPerCredit: 20,
			want: order.Totals{PriceCents: 4999, ShippingCents: 895, CreditRefundCents: 20},
		},
		{
			name:      "quantity multiplies price but not shipping",
			unitPrice: 2499, shipping: 495, quantity: 3, creditsSpent: 0, centsPerCredit: 20,
			want: order.Totals{PriceCents: 7497, ShippingCents: 495, CreditRefundCents: 0},
		},
		{
			name:      "refund capped at order total",
			unitPrice: 10, shipping: 5, quantity: 1, creditsSpent: 100, centsPerCredit: 20,
			want: order.Totals{PriceCents: 10, ShippingCents: 5, CreditRefundCents: 15},
		},
		{
			name:      "negative credits spent clamps to zero refund",
			unitPrice: 4999, shipping: 895, quantity: 1, creditsSpent: -1, centsPerCredit: 20,
			want: order.Totals{PriceCents: 4999, ShippingCents: 895, CreditRefundCents: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := order.SettleTotals(tc.unitPrice, tc.shipping, tc.quantity, tc.creditsSpent, tc.centsPerCredit)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTotals(t *testing.T) {
	totals := order.Totals{PriceCents: 4999, ShippingCents: 895, CreditRefundCents: 20}
	assert.Equal(t, int32(5894), totals.TotalCents())
	assert.Equal(t, int32(5874), totals.NetCents())
}
