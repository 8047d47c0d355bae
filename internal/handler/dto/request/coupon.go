package request

import "time"

type RedeemCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type CreateCouponRequest struct {
	Code         string     `json:"code" binding:"required"`
	CreditAmount int32      `json:"creditAmount" binding:"required,gt=0"`
	MaxUses      *int32     `json:"maxUses,omitempty" binding:"omitempty,gt=0"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
}
