package repository

import (
	"context"

	"printcanvas/internal/infra"
	"printcanvas/internal/infra/db"
	"printcanvas/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// GenerationLogRepository appends write-once attempt records. Rows are never
// updated or deleted.
type GenerationLogRepository struct {
	db db.DBTX
}

func NewGenerationLogRepository(dbtx db.DBTX) *GenerationLogRepository {
	return &GenerationLogRepository{db: dbtx}
}

const insertGenerationLogSQL = `
INSERT INTO generation_logs (id, customer_id, design_id, success, error_message)
VALUES ($1, $2, $3, $4, $5)`

func (r *GenerationLogRepository) Insert(ctx context.Context, customerID uuid.UUID, designID *uuid.UUID, success bool, errorMessage *string) error {
	_, err := r.db.Exec(ctx, insertGenerationLogSQL,
		uuid.New(),
		customerID,
		pgconv.UUIDPtrToPgtype(designID),
		success,
		pgconv.StringPtrToPgtype(errorMessage),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert generation log", err)
	}
	return nil
}
