package shared

import (
	"context"

	"printcanvas/internal/domain/design"
	"printcanvas/internal/domain/order"
	"printcanvas/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on transient conflicts
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Customers() CustomerRepository
	Ledger() LedgerRepository
	Coupons() CouponRepository
	Designs() DesignRepository
	Orders() OrderRepository
	GenerationLogs() GenerationLogRepository
	DB() db.DBTX
}

type CustomerRepository interface {
	// EnsureByStorefrontID provisions the customer on first authenticated access
	// (with the starting credit grant) and returns the existing row afterwards.
	EnsureByStorefrontID(ctx context.Context, shopDomain, externalID string, startingCredits int32) (*CustomerSnapshot, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	IncrementFreeGenerations(ctx context.Context, id uuid.UUID) error
	DecrementFreeGenerations(ctx context.Context, id uuid.UUID) error
	RecordGeneration(ctx context.Context, id uuid.UUID) error
}

// LedgerRepository is the only component allowed to mutate a customer's credit
// balance. Every balance change appends one immutable credit_transactions row.
type LedgerRepository interface {
	ApplyDelta(ctx context.Context, customerID uuid.UUID, amount int32, txType TxType, meta DeltaMeta) (int32, error)
	RecordOrderSpend(ctx context.Context, customerID uuid.UUID, netCents int64) error
}

type CouponRepository interface {
	// FindByCodeForUpdate locks the coupon row so usage counting serializes.
	FindByCodeForUpdate(ctx context.Context, code string) (*CouponSnapshot, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) error
	InsertRedemption(ctx context.Context, couponID, customerID uuid.UUID) error
	Create(ctx context.Context, params CreateCouponParams) (uuid.UUID, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type DesignRepository interface {
	Create(ctx context.Context, d *design.Design) error
	SetGenerated(ctx context.Context, id uuid.UUID, imageURL string, creditsSpent int32) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	FindByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*DesignSnapshot, error)
	Delete(ctx context.Context, id, customerID uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	UpdateFulfillment(ctx context.Context, id uuid.UUID, printOrderID string, status order.Status) error
	UpdateStatusByPrintOrderID(ctx context.Context, printOrderID string, status order.Status) error
}

type GenerationLogRepository interface {
	Insert(ctx context.Context, customerID uuid.UUID, designID *uuid.UUID, success bool, errorMessage *string) error
}

type MerchantRepository interface {
	FindByEmail(ctx context.Context, email string) (*MerchantSnapshot, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MerchantSnapshot, error)
}
