package repository

import (
	"context"

	"printcanvas/internal/infra"
	"printcanvas/internal/infra/db"
	"printcanvas/internal/pkg/pgconv"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

// The no-op DO UPDATE makes RETURNING yield the row on both insert and
// conflict, so first access and every later access share one round trip.
const ensureCustomerSQL = `
INSERT INTO customers (id, shop_domain, external_id, credits)
VALUES ($1, $2, $3, $4)
ON CONFLICT (shop_domain, external_id) DO UPDATE SET updated_at = now()
RETURNING id, shop_domain, external_id, credits, free_generations_used, total_generations, total_spent_cents`

func (r *CustomerRepository) EnsureByStorefrontID(
	ctx context.Context,
	shopDomain, externalID string,
	startingCredits int32,
) (*shared.CustomerSnapshot, error) {
	var snap shared.CustomerSnapshot
	err := r.db.QueryRow(ctx, ensureCustomerSQL, uuid.New(), shopDomain, externalID, startingCredits).Scan(
		&snap.ID,
		&snap.ShopDomain,
		&snap.ExternalID,
		&snap.Credits,
		&snap.FreeGenerationsUsed,
		&snap.TotalGenerations,
		&snap.TotalSpentCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to ensure customer", err)
	}
	return &snap, nil
}

const findCustomerForUpdateSQL = `
SELECT id, shop_domain, external_id, credits, free_generations_used, total_generations, total_spent_cents
FROM customers
WHERE id = $1
FOR UPDATE`

func (r *CustomerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	var snap shared.CustomerSnapshot
	err := r.db.QueryRow(ctx, findCustomerForUpdateSQL, id).Scan(
		&snap.ID,
		&snap.ShopDomain,
		&snap.ExternalID,
		&snap.Credits,
		&snap.FreeGenerationsUsed,
		&snap.TotalGenerations,
		&snap.TotalSpentCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return &snap, nil
}

func (r *CustomerRepository) IncrementFreeGenerations(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE customers SET free_generations_used = free_generations_used + 1, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment free generations", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

// Compensation after a failed free-allowance generation; never goes below zero.
func (r *CustomerRepository) DecrementFreeGenerations(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE customers SET free_generations_used = free_generations_used - 1, updated_at = now()
		 WHERE id = $1 AND free_generations_used > 0`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement free generations", err)
	}
	return nil
}

// total_generations is monotonically non-decreasing; bumped on success only.
func (r *CustomerRepository) RecordGeneration(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE customers SET total_generations = total_generations + 1, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to record generation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
