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

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const orderViewColumns = `
id, design_id, product_type_id, size, frame_color, quantity,
price_cents, shipping_cents, credit_refund_cents, status, print_order_id, created_at`

func (r *OrderReadStore) FindByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderViewColumns+` FROM orders WHERE id = $1 AND customer_id = $2`,
		id, customerID)

	view, err := scanOrderView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return view, nil
}

func (r *OrderReadStore) FindByCustomerPage(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*queries.OrderView, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM orders WHERE customer_id = $1`, customerID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count orders", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+orderViewColumns+` FROM orders
		 WHERE customer_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		customerID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	result := make([]*queries.OrderView, 0, limit)
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan order", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read orders", err)
	}

	return result, total, nil
}

func scanOrderView(row rowScanner) (*queries.OrderView, error) {
	var (
		view         queries.OrderView
		frameColor   pgtype.Text
		printOrderID pgtype.Text
		createdAt    pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID,
		&view.DesignID,
		&view.ProductTypeID,
		&view.Size,
		&frameColor,
		&view.Quantity,
		&view.PriceCents,
		&view.ShippingCents,
		&view.CreditRefundCents,
		&view.Status,
		&printOrderID,
		&createdAt,
	); err != nil {
		return nil, err
	}

	view.FrameColor = pgconv.StringPtrFromPgtype(frameColor)
	view.PrintOrderID = pgconv.StringPtrFromPgtype(printOrderID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.TotalCents = view.PriceCents + view.ShippingCents
	return &view, nil
}
