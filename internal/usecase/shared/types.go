package shared

import (
	"time"

	"github.com/google/uuid"
)

// TxType classifies one credit ledger entry. The amount sign must match the
// type: purchase/redemption/refund are positive, debit is negative.
type TxType string

const (
	TxPurchase   TxType = "purchase"
	TxRedemption TxType = "redemption"
	TxDebit      TxType = "debit"
	TxRefund     TxType = "refund"
)

func (t TxType) IsValid() bool {
	switch t {
	case TxPurchase, TxRedemption, TxDebit, TxRefund:
		return true
	}
	return false
}

// MatchesAmount reports whether the signed amount is legal for this entry type.
func (t TxType) MatchesAmount(amount int32) bool {
	switch t {
	case TxDebit:
		return amount < 0
	case TxPurchase, TxRedemption, TxRefund:
		return amount > 0
	}
	return false
}

// DeltaMeta carries optional context persisted on a ledger entry.
type DeltaMeta struct {
	PriceInCents *int32
	OrderID      *uuid.UUID
	DesignID     *uuid.UUID
	CouponID     *uuid.UUID
}

// Write-side snapshots prevent dependency on read-side query types
type CustomerSnapshot struct {
	ID                  uuid.UUID
	ShopDomain          string
	ExternalID          string
	Credits             int32
	FreeGenerationsUsed int32
	TotalGenerations    int32
	TotalSpentCents     int64
}

type CouponSnapshot struct {
	ID           uuid.UUID
	Code         string
	CreditAmount int32
	MaxUses      *int32
	UsedCount    int32
	IsActive     bool
	ExpiresAt    *time.Time
}

type DesignSnapshot struct {
	ID                uuid.UUID
	CustomerID        uuid.UUID
	ProductTypeID     string
	Size              string
	FrameColor        *string
	Status            string
	CreditsSpent      int32
	GeneratedImageURL *string
}

type MerchantSnapshot struct {
	ID       uuid.UUID
	Email    string
	IsActive bool
}

type CreateCouponParams struct {
	Code         string
	CreditAmount int32
	MaxUses      *int32
	ExpiresAt    *time.Time
}
