package readstore

import (
	"context"

	"printcanvas/internal/infra"
	"printcanvas/internal/infra/db"
	"printcanvas/internal/pkg/pgconv"
	"printcanvas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

const findCustomerProfileSQL = `
SELECT id, shop_domain, external_id, credits, free_generations_used, total_generations, total_spent_cents, created_at
FROM customers
WHERE id = $1`

func (r *CustomerReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*queries.CustomerProfileView, error) {
	var (
		view      queries.CustomerProfileView
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findCustomerProfileSQL, id).Scan(
		&view.ID,
		&view.ShopDomain,
		&view.ExternalID,
		&view.Credits,
		&view.FreeGenerationsUsed,
		&view.TotalGenerations,
		&view.TotalSpentCents,
		&createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer profile", err)
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

const findTransactionsPageSQL = `
SELECT id, type, amount, price_in_cents, order_id, design_id, coupon_id, created_at
FROM credit_transactions
WHERE customer_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

const countTransactionsSQL = `
SELECT count(*) FROM credit_transactions WHERE customer_id = $1`

func (r *CustomerReadStore) FindTransactionsPage(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*queries.CreditTransactionView, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, countTransactionsSQL, customerID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count credit transactions", err)
	}

	rows, err := r.db.Query(ctx, findTransactionsPageSQL, customerID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list credit transactions", err)
	}
	defer rows.Close()

	result := make([]*queries.CreditTransactionView, 0, limit)
	for rows.Next() {
		var (
			view         queries.CreditTransactionView
			priceInCents pgtype.Int4
			orderID      pgtype.UUID
			designID     pgtype.UUID
			couponID     pgtype.UUID
			createdAt    pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID,
			&view.Type,
			&view.Amount,
			&priceInCents,
			&orderID,
			&designID,
			&couponID,
			&createdAt,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan credit transaction", err)
		}

		view.PriceInCents = pgconv.Int32PtrFromPgtype(priceInCents)
		view.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
		view.DesignID = pgconv.UUIDPtrFromPgtype(designID)
		view.CouponID = pgconv.UUIDPtrFromPgtype(couponID)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read credit transactions", err)
	}

	return result, total, nil
}
