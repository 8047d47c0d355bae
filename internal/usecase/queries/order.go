package queries

import (
	"context"

	"github.com/google/uuid"
)

type OrderQueries interface {
	GetByID(ctx context.Context, customerID, orderID uuid.UUID) (*OrderView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, page Page) ([]*OrderView, int64, error)
}

type OrderViewRepo interface {
	FindByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*OrderView, error)
	FindByCustomerPage(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*OrderView, int64, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, customerID, orderID uuid.UUID) (*OrderView, error) {
	return q.repo.FindByIDForCustomer(ctx, orderID, customerID)
}

func (q *orderQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, page Page) ([]*OrderView, int64, error) {
	limit, offset := page.LimitOffset()
	return q.repo.FindByCustomerPage(ctx, customerID, limit, offset)
}
