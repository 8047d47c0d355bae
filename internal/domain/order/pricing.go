package order

// Totals is the settled pricing of an order. CreditRefundCents is the portion
// of the total covered by credits already spent generating the design; it can
// never exceed the order total.
type Totals struct {
	PriceCents        int32
	ShippingCents     int32
	CreditRefundCents int32
}

func (t Totals) TotalCents() int32 {
	return t.PriceCents + t.ShippingCents
}

func (t Totals) NetCents() int32 {
	return t.TotalCents() - t.CreditRefundCents
}

// SettleTotals computes order pricing: unit price times quantity plus flat
// shipping, minus a refund of min(total, creditsSpent * centsPerCredit).
func SettleTotals(unitPriceCents, shippingCents, quantity, creditsSpent, centsPerCredit int32) Totals {
	price := unitPriceCents * quantity
	total := price + shippingCents

	refund := creditsSpent * centsPerCredit
	if refund < 0 {
		refund = 0
	}
	if refund > total {
		refund = total
	}

	return Totals{
		PriceCents:        price,
		ShippingCents:     shippingCents,
		CreditRefundCents: refund,
	}
}
