package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is 1-based offset pagination shared by every list query.
type Page struct {
	Number int
	Size   int
}

func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p Page) LimitOffset() (int32, int32) {
	n := p.Normalize()
	// #nosec G115 -- bounded by MaxPageSize above
	return int32(n.Size), int32((n.Number - 1) * n.Size)
}

// CustomerProfileView represents read-optimized customer wallet data
type CustomerProfileView struct {
	ID                       uuid.UUID `json:"id"`
	ShopDomain               string    `json:"shop_domain"`
	ExternalID               string    `json:"external_id"`
	Credits                  int32     `json:"credits"`
	FreeGenerationsUsed      int32     `json:"free_generations_used"`
	FreeGenerationsRemaining int32     `json:"free_generations_remaining"`
	TotalGenerations         int32     `json:"total_generations"`
	TotalSpentCents          int64     `json:"total_spent_cents"`
	CreatedAt                time.Time `json:"created_at"`
}

// CreditTransactionView represents one immutable ledger entry
type CreditTransactionView struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Amount       int32      `json:"amount"`
	PriceInCents *int32     `json:"price_in_cents,omitempty"`
	OrderID      *uuid.UUID `json:"order_id,omitempty"`
	DesignID     *uuid.UUID `json:"design_id,omitempty"`
	CouponID     *uuid.UUID `json:"coupon_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// DesignView represents read-optimized design data
type DesignView struct {
	ID                uuid.UUID `json:"id"`
	Prompt            string    `json:"prompt"`
	StylePreset       string    `json:"style_preset"`
	ProductTypeID     string    `json:"product_type_id"`
	Size              string    `json:"size"`
	FrameColor        *string   `json:"frame_color,omitempty"`
	Status            string    `json:"status"`
	CreditsSpent      int32     `json:"credits_spent"`
	GeneratedImageURL *string   `json:"generated_image_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// OrderView represents read-optimized order data
type OrderView struct {
	ID                uuid.UUID `json:"id"`
	DesignID          uuid.UUID `json:"design_id"`
	ProductTypeID     string    `json:"product_type_id"`
	Size              string    `json:"size"`
	FrameColor        *string   `json:"frame_color,omitempty"`
	Quantity          int32     `json:"quantity"`
	PriceCents        int64     `json:"price_cents"`
	ShippingCents     int64     `json:"shipping_cents"`
	CreditRefundCents int64     `json:"credit_refund_cents"`
	TotalCents        int64     `json:"total_cents"`
	Status            string    `json:"status"`
	PrintOrderID      *string   `json:"print_order_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// CouponAdminView represents coupon data for the merchant dashboard
type CouponAdminView struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	CreditAmount int32      `json:"credit_amount"`
	MaxUses      *int32     `json:"max_uses,omitempty"`
	UsedCount    int32      `json:"used_count"`
	IsActive     bool       `json:"is_active"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
