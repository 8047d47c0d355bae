package repository

import (
	"context"

	"printcanvas/internal/domain/order"
	"printcanvas/internal/infra"
	"printcanvas/internal/infra/db"
	"printcanvas/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

const createOrderSQL = `
INSERT INTO orders (id, design_id, customer_id, product_type_id, size, frame_color, quantity,
                    price_cents, shipping_cents, credit_refund_cents, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	totals := o.Totals()
	_, err := r.db.Exec(ctx, createOrderSQL,
		o.ID(),
		o.DesignID(),
		o.CustomerID(),
		o.ProductTypeID(),
		o.Size(),
		pgconv.StringPtrToPgtype(o.FrameColor()),
		o.Quantity(),
		totals.PriceCents,
		totals.ShippingCents,
		totals.CreditRefundCents,
		o.Status().String(),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("design or customer missing for order", err, infra.KindForeignKeyViolated)
		}
		if pgconv.IsCheckViolation(err) {
			return infra.WrapRepoErr("order violates pricing constraint", err, infra.KindCheckViolated)
		}
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) UpdateFulfillment(ctx context.Context, id uuid.UUID, printOrderID string, status order.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET print_order_id = $2, status = $3, updated_at = now() WHERE id = $1`,
		id, printOrderID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order fulfillment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpdateStatusByPrintOrderID applies a provider status update. The current row
// is locked first so the transition check and the write are atomic.
func (r *OrderRepository) UpdateStatusByPrintOrderID(ctx context.Context, printOrderID string, status order.Status) error {
	var current string
	err := r.db.QueryRow(ctx,
		`SELECT status FROM orders WHERE print_order_id = $1 FOR UPDATE`, printOrderID).Scan(&current)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("order not found for print order", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock order", err)
	}

	if !order.Status(current).CanTransitionTo(status) {
		return infra.WrapRepoErr("illegal order status transition", nil, infra.KindConflict)
	}

	_, err = r.db.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE print_order_id = $1`,
		printOrderID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	return nil
}
