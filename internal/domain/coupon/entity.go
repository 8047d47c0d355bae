package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInactive  = errors.New("coupon is not active")
	ErrExpired   = errors.New("coupon has expired")
	ErrExhausted = errors.New("coupon usage limit reached")
)

type Coupon struct {
	id           uuid.UUID
	code         Code
	creditAmount CreditGrant
	maxUses      *int32
	usedCount    int32
	isActive     bool
	expiresAt    *time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	creditAmount int32,
	maxUses *int32,
	usedCount int32,
	isActive bool,
	expiresAt *time.Time,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	grant, err := NewCreditGrant(creditAmount)
	if err != nil {
		return nil, err
	}

	if maxUses != nil && *maxUses <= 0 {
		return nil, ErrInvalidMaxUses
	}

	return &Coupon{
		id:           id,
		code:         couponCode,
		creditAmount: grant,
		maxUses:      maxUses,
		usedCount:    usedCount,
		isActive:     isActive,
		expiresAt:    expiresAt,
	}, nil
}

// ValidateRedeemable runs the registry checks in rejection-priority order:
// inactive, expired, exhausted. Per-customer uniqueness is a store constraint.
func (c *Coupon) ValidateRedeemable(now time.Time) error {
	if !c.isActive {
		return ErrInactive
	}
	if c.expiresAt != nil && now.After(*c.expiresAt) {
		return ErrExpired
	}
	if c.maxUses != nil && c.usedCount >= *c.maxUses {
		return ErrExhausted
	}
	return nil
}

func (c *Coupon) RemainingUses() *int32 {
	if c.maxUses == nil {
		return nil
	}
	remaining := *c.maxUses - c.usedCount
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

func (c *Coupon) ID() uuid.UUID             { return c.id }
func (c *Coupon) Code() Code                { return c.code }
func (c *Coupon) CreditAmount() CreditGrant { return c.creditAmount }
func (c *Coupon) MaxUses() *int32           { return c.maxUses }
func (c *Coupon) UsedCount() int32          { return c.usedCount }
func (c *Coupon) IsActive() bool            { return c.isActive }
func (c *Coupon) ExpiresAt() *time.Time     { return c.expiresAt }
