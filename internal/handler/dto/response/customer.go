package response

import (
	"time"

	"printcanvas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	ID                       uuid.UUID `json:"id"`
	ShopDomain               string    `json:"shopDomain"`
	ExternalID               string    `json:"externalId"`
	Credits                  int32     `json:"credits"`
	FreeGenerationsUsed      int32     `json:"freeGenerationsUsed"`
	FreeGenerationsRemaining int32     `json:"freeGenerationsRemaining"`
	TotalGenerations         int32     `json:"totalGenerations"`
	TotalSpentCents          int64     `json:"totalSpentCents"`
	CreatedAt                time.Time `json:"createdAt"`
}

func FromCustomerProfile(rm *queries.CustomerProfileView) *CustomerResponse {
	var resp CustomerResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

type TransactionResponse struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Amount       int32      `json:"amount"`
	PriceInCents *int32     `json:"priceInCents,omitempty"`
	OrderID      *uuid.UUID `json:"orderId,omitempty"`
	DesignID     *uuid.UUID `json:"designId,omitempty"`
	CouponID     *uuid.UUID `json:"couponId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type CreditHistoryResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
	HasMore      bool                   `json:"hasMore"`
}

func FromTransactions(rms []*queries.CreditTransactionView, total int64, hasMore bool) *CreditHistoryResponse {
	items := make([]*TransactionResponse, len(rms))
	for i, rm := range rms {
		var resp TransactionResponse
		_ = copier.Copy(&resp, rm)
		items[i] = &resp
	}
	return &CreditHistoryResponse{Transactions: items, Total: total, HasMore: hasMore}
}

type PurchaseResponse struct {
	CreditsAdded int32 `json:"creditsAdded"`
	NewBalance   int32 `json:"newBalance"`
}
