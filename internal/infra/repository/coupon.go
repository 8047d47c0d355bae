package repository

import (
	"context"

	"printcanvas/internal/infra"
	"printcanvas/internal/infra/db"
	"printcanvas/internal/pkg/pgconv"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

const findCouponForUpdateSQL = `
SELECT id, code, credit_amount, max_uses, used_count, is_active, expires_at
FROM coupons
WHERE code = $1
FOR UPDATE`

func (r *CouponRepository) FindByCodeForUpdate(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	var (
		snap      shared.CouponSnapshot
		maxUses   pgtype.Int4
		expiresAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findCouponForUpdateSQL, code).Scan(
		&snap.ID,
		&snap.Code,
		&snap.CreditAmount,
		&maxUses,
		&snap.UsedCount,
		&snap.IsActive,
		&expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	snap.MaxUses = pgconv.Int32PtrFromPgtype(maxUses)
	snap.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	return &snap, nil
}

// Guarded increment: the predicate re-checks the cap under the row lock so the
// counter can never overshoot max_uses.
const incrementCouponUsageSQL = `
UPDATE coupons
SET used_count = used_count + 1, updated_at = now()
WHERE id = $1 AND is_active AND (max_uses IS NULL OR used_count < max_uses)`

func (r *CouponRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, incrementCouponUsageSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon usage cap reached", nil, infra.KindConflict)
	}
	return nil
}

const insertRedemptionSQL = `
INSERT INTO coupon_redemptions (id, coupon_id, customer_id)
VALUES ($1, $2, $3)`

func (r *CouponRepository) InsertRedemption(ctx context.Context, couponID, customerID uuid.UUID) error {
	_, err := r.db.Exec(ctx, insertRedemptionSQL, uuid.New(), couponID, customerID)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("coupon already redeemed by customer", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("coupon or customer missing", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert coupon redemption", err)
	}
	return nil
}

const createCouponSQL = `
INSERT INTO coupons (id, code, credit_amount, max_uses, expires_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *CouponRepository) Create(ctx context.Context, params shared.CreateCouponParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createCouponSQL,
		uuid.New(),
		params.Code,
		params.CreditAmount,
		pgconv.Int32PtrToPgtype(params.MaxUses),
		pgconv.TimePtrToPgtype(params.ExpiresAt),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create coupon", err)
	}
	return id, nil
}

func (r *CouponRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE coupons SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}
