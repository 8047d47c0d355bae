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

type DesignReadStore struct {
	db db.DBTX
}

func NewDesignReadStore(dbtx db.DBTX) *DesignReadStore {
	return &DesignReadStore{db: dbtx}
}

const designViewColumns = `
id, prompt, style_preset, product_type_id, size, frame_color, status, credits_spent, generated_image_url, created_at`

func (r *DesignReadStore) FindByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*queries.DesignView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+designViewColumns+` FROM designs WHERE id = $1 AND customer_id = $2`,
		id, customerID)

	view, err := scanDesignView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("design not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find design", err)
	}
	return view, nil
}

func (r *DesignReadStore) FindByCustomerPage(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*queries.DesignView, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM designs WHERE customer_id = $1`, customerID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count designs", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+designViewColumns+` FROM designs
		 WHERE customer_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		customerID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list designs", err)
	}
	defer rows.Close()

	result := make([]*queries.DesignView, 0, limit)
	for rows.Next() {
		view, err := scanDesignView(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan design", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read designs", err)
	}

	return result, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDesignView(row rowScanner) (*queries.DesignView, error) {
	var (
		view       queries.DesignView
		frameColor pgtype.Text
		imageURL   pgtype.Text
		createdAt  pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID,
		&view.Prompt,
		&view.StylePreset,
		&view.ProductTypeID,
		&view.Size,
		&frameColor,
		&view.Status,
		&view.CreditsSpent,
		&imageURL,
		&createdAt,
	); err != nil {
		return nil, err
	}

	view.FrameColor = pgconv.StringPtrFromPgtype(frameColor)
	view.GeneratedImageURL = pgconv.StringPtrFromPgtype(imageURL)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
