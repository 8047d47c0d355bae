package repository

import (
	"context"

	"printcanvas/internal/domain/design"
	"printcanvas/internal/infra"
	"printcanvas/internal/infra/db"
	"printcanvas/internal/pkg/pgconv"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DesignRepository struct {
	db db.DBTX
}

func NewDesignRepository(dbtx db.DBTX) *DesignRepository {
	return &DesignRepository{db: dbtx}
}

const createDesignSQL = `
INSERT INTO designs (id, customer_id, prompt, style_preset, product_type_id, size, frame_color, status, credits_spent)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *DesignRepository) Create(ctx context.Context, d *design.Design) error {
	_, err := r.db.Exec(ctx, createDesignSQL,
		d.ID(),
		d.CustomerID(),
		d.Prompt().String(),
		d.StylePreset(),
		d.ProductTypeID(),
		d.Size(),
		pgconv.StringPtrToPgtype(d.FrameColor()),
		d.Status().String(),
		d.CreditsSpent(),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("customer missing for design", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create design", err)
	}
	return nil
}

func (r *DesignRepository) SetGenerated(ctx context.Context, id uuid.UUID, imageURL string, creditsSpent int32) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE designs
		 SET generated_image_url = $2, status = $3, credits_spent = $4, updated_at = now()
		 WHERE id = $1`,
		id, imageURL, design.StatusCompleted.String(), creditsSpent)
	if err != nil {
		return infra.WrapRepoErr("failed to mark design generated", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("design not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DesignRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE designs SET status = $2, updated_at = now() WHERE id = $1`,
		id, design.StatusFailed.String())
	if err != nil {
		return infra.WrapRepoErr("failed to mark design failed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("design not found", nil, infra.KindNotFound)
	}
	return nil
}

const findDesignForCustomerSQL = `
SELECT id, customer_id, product_type_id, size, frame_color, status, credits_spent, generated_image_url
FROM designs
WHERE id = $1 AND customer_id = $2`

// Ownership is part of the predicate: someone else's design is indistinguishable
// from a missing one.
func (r *DesignRepository) FindByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*shared.DesignSnapshot, error) {
	var (
		snap       shared.DesignSnapshot
		frameColor pgtype.Text
		imageURL   pgtype.Text
	)
	err := r.db.QueryRow(ctx, findDesignForCustomerSQL, id, customerID).Scan(
		&snap.ID,
		&snap.CustomerID,
		&snap.ProductTypeID,
		&snap.Size,
		&frameColor,
		&snap.Status,
		&snap.CreditsSpent,
		&imageURL,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("design not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find design", err)
	}

	snap.FrameColor = pgconv.StringPtrFromPgtype(frameColor)
	snap.GeneratedImageURL = pgconv.StringPtrFromPgtype(imageURL)
	return &snap, nil
}

func (r *DesignRepository) Delete(ctx context.Context, id, customerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM designs WHERE id = $1 AND customer_id = $2`, id, customerID)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("design is referenced by orders", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete design", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("design not found", nil, infra.KindNotFound)
	}
	return nil
}
