package queries

import (
	"context"

	"github.com/google/uuid"
)

type DesignQueries interface {
	GetByID(ctx context.Context, customerID, designID uuid.UUID) (*DesignView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, page Page) ([]*DesignView, int64, error)
}

type DesignViewRepo interface {
	FindByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*DesignView, error)
	FindByCustomerPage(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*DesignView, int64, error)
}

type designQueriesImpl struct {
	repo DesignViewRepo
}

func NewDesignQueries(repo DesignViewRepo) DesignQueries {
	return &designQueriesImpl{repo: repo}
}

func (q *designQueriesImpl) GetByID(ctx context.Context, customerID, designID uuid.UUID) (*DesignView, error) {
	return q.repo.FindByIDForCustomer(ctx, designID, customerID)
}

func (q *designQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, page Page) ([]*DesignView, int64, error) {
	limit, offset := page.LimitOffset()
	return q.repo.FindByCustomerPage(ctx, customerID, limit, offset)
}
