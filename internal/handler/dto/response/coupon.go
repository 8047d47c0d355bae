package response

import (
	"time"

	"printcanvas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RedeemResponse struct {
	CreditsAdded int32 `json:"creditsAdded"`
	NewBalance   int32 `json:"newBalance"`
}

type CouponResponse struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	CreditAmount int32      `json:"creditAmount"`
	MaxUses      *int32     `json:"maxUses,omitempty"`
	UsedCount    int32      `json:"usedCount"`
	IsActive     bool       `json:"isActive"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type CouponListResponse struct {
	Coupons []*CouponResponse `json:"coupons"`
	Total   int64             `json:"total"`
	HasMore bool              `json:"hasMore"`
}

func FromCoupons(rms []*queries.CouponAdminView, total int64, hasMore bool) *CouponListResponse {
	items := make([]*CouponResponse, len(rms))
	for i, rm := range rms {
		var resp CouponResponse
		_ = copier.Copy(&resp, rm)
		items[i] = &resp
	}
	return &CouponListResponse{Coupons: items, Total: total, HasMore: hasMore}
}

type CouponCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
