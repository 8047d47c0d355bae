package repository

import (
	"context"

	"printcanvas/internal/infra"
	"printcanvas/internal/infra/db"
	"printcanvas/internal/pkg/pgconv"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
)

type MerchantRepository struct {
	db db.DBTX
}

func NewMerchantRepository(dbtx db.DBTX) *MerchantRepository {
	return &MerchantRepository{db: dbtx}
}

const findMerchantByEmailSQL = `
SELECT id, email, password_hash, is_active
FROM merchants
WHERE email = $1`

func (r *MerchantRepository) FindByEmail(ctx context.Context, email string) (*shared.MerchantSnapshot, string, error) {
	var (
		snap shared.MerchantSnapshot
		hash string
	)
	err := r.db.QueryRow(ctx, findMerchantByEmailSQL, email).Scan(
		&snap.ID,
		&snap.Email,
		&hash,
		&snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("merchant not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find merchant", err)
	}
	return &snap, hash, nil
}

func (r *MerchantRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.MerchantSnapshot, error) {
	var snap shared.MerchantSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, email, is_active FROM merchants WHERE id = $1`, id).Scan(
		&snap.ID,
		&snap.Email,
		&snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("merchant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find merchant", err)
	}
	return &snap, nil
}
