package readstore

import (
	"context"

	"printcanvas/internal/infra"
	"printcanvas/internal/infra/db"
	"printcanvas/internal/pkg/pgconv"
	"printcanvas/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

const findCouponsPageSQL = `
SELECT id, code, credit_amount, max_uses, used_count, is_active, expires_at, created_at
FROM coupons
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

func (r *CouponReadStore) FindPage(ctx context.Context, limit, offset int32) ([]*queries.CouponAdminView, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM coupons`).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count coupons", err)
	}

	rows, err := r.db.Query(ctx, findCouponsPageSQL, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	result := make([]*queries.CouponAdminView, 0, limit)
	for rows.Next() {
		var (
			view      queries.CouponAdminView
			maxUses   pgtype.Int4
			expiresAt pgtype.Timestamptz
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID,
			&view.Code,
			&view.CreditAmount,
			&maxUses,
			&view.UsedCount,
			&view.IsActive,
			&expiresAt,
			&createdAt,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan coupon", err)
		}

		view.MaxUses = pgconv.Int32PtrFromPgtype(maxUses)
		view.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read coupons", err)
	}

	return result, total, nil
}
