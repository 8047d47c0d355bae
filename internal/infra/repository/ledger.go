package repository

import (
	"context"

	"printcanvas/internal/infra"
	"printcanvas/internal/infra/db"
	"printcanvas/internal/pkg/pgconv"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
)

// LedgerRepository owns every write to customers.credits. The conditional
// UPDATE is the non-negativity gate: a debit that would cross zero matches no
// row and nothing is written.
type LedgerRepository struct {
	db db.DBTX
}

func NewLedgerRepository(dbtx db.DBTX) *LedgerRepository {
	return &LedgerRepository{db: dbtx}
}

const applyDeltaSQL = `
UPDATE customers
SET credits = credits + $2, updated_at = now()
WHERE id = $1 AND credits + $2 >= 0
RETURNING credits`

const insertTransactionSQL = `
INSERT INTO credit_transactions (id, customer_id, type, amount, price_in_cents, order_id, design_id, coupon_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const customerExistsSQL = `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`

func (r *LedgerRepository) ApplyDelta(
	ctx context.Context,
	customerID uuid.UUID,
	amount int32,
	txType shared.TxType,
	meta shared.DeltaMeta,
) (int32, error) {
	if !txType.MatchesAmount(amount) {
		return 0, infra.WrapRepoErr("ledger amount sign does not match transaction type", nil, infra.KindCheckViolated)
	}

	var newBalance int32
	err := r.db.QueryRow(ctx, applyDeltaSQL, customerID, amount).Scan(&newBalance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			var exists bool
			if scanErr := r.db.QueryRow(ctx, customerExistsSQL, customerID).Scan(&exists); scanErr != nil {
				return 0, infra.WrapRepoErr("failed to check customer existence", scanErr)
			}
			if !exists {
				return 0, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
			}
			return 0, infra.WrapRepoErr("debit would drive balance below zero", err, infra.KindCheckViolated)
		}
		return 0, infra.WrapRepoErr("failed to apply credit delta", err)
	}

	_, err = r.db.Exec(ctx, insertTransactionSQL,
		uuid.New(),
		customerID,
		string(txType),
		amount,
		pgconv.Int32PtrToPgtype(meta.PriceInCents),
		pgconv.UUIDPtrToPgtype(meta.OrderID),
		pgconv.UUIDPtrToPgtype(meta.DesignID),
		pgconv.UUIDPtrToPgtype(meta.CouponID),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to append ledger entry", err)
	}

	return newBalance, nil
}

const recordOrderSpendSQL = `
UPDATE customers
SET total_spent_cents = total_spent_cents + $2, updated_at = now()
WHERE id = $1`

func (r *LedgerRepository) RecordOrderSpend(ctx context.Context, customerID uuid.UUID, netCents int64) error {
	tag, err := r.db.Exec(ctx, recordOrderSpendSQL, customerID, netCents)
	if err != nil {
		return infra.WrapRepoErr("failed to record order spend", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
