//go:build unit || integration

package builder

import (
	"time"

	domcoupon "printcanvas/internal/domain/coupon"
	reqdto "printcanvas/internal/handler/dto/request"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID           uuid.UUID
	Code         string
	CreditAmount int32
	MaxUses      *int32
	UsedCount    int32
	IsActive     bool
	ExpiresAt    *time.Time
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:           uuid.New(),
		Code:         "WELCOME10",
		CreditAmount: 10,
		MaxUses:      nil,
		UsedCount:    0,
		IsActive:     true,
		ExpiresAt:    nil,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithMaxUses(n int32) *CouponBuilder {
	b.MaxUses = &n
	return b
}

func (b *CouponBuilder) WithExpiresAt(t time.Time) *CouponBuilder {
	b.ExpiresAt = &t
	return b
}

func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(b.ID, b.Code, b.CreditAmount, b.MaxUses, b.UsedCount, b.IsActive, b.ExpiresAt)
}

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:           b.ID,
		Code:         b.Code,
		CreditAmount: b.CreditAmount,
		MaxUses:      b.MaxUses,
		UsedCount:    b.UsedCount,
		IsActive:     b.IsActive,
		ExpiresAt:    b.ExpiresAt,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Code:         b.Code,
		CreditAmount: b.CreditAmount,
		MaxUses:      b.MaxUses,
		ExpiresAt:    b.ExpiresAt,
	}
}
