package queries

import (
	"context"

	"printcanvas/internal/pkg/config"

	"github.com/google/uuid"
)

type CustomerQueries interface {
	GetProfile(ctx context.Context, customerID uuid.UUID) (*CustomerProfileView, error)
	ListCreditHistory(ctx context.Context, customerID uuid.UUID, page Page) ([]*CreditTransactionView, int64, error)
}

type CustomerViewRepo interface {
	FindProfileByID(ctx context.Context, id uuid.UUID) (*CustomerProfileView, error)
	FindTransactionsPage(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*CreditTransactionView, int64, error)
}

type customerQueriesImpl struct {
	repo      CustomerViewRepo
	allowance int32
}

func NewCustomerQueries(repo CustomerViewRepo, cfg config.CreditsConfig) CustomerQueries {
	return &customerQueriesImpl{repo: repo, allowance: cfg.FreeGenerationAllowance}
}

func (q *customerQueriesImpl) GetProfile(ctx context.Context, customerID uuid.UUID) (*CustomerProfileView, error) {
	view, err := q.repo.FindProfileByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	remaining := q.allowance - view.FreeGenerationsUsed
	if remaining < 0 {
		remaining = 0
	}
	view.FreeGenerationsRemaining = remaining
	return view, nil
}

func (q *customerQueriesImpl) ListCreditHistory(ctx context.Context, customerID uuid.UUID, page Page) ([]*CreditTransactionView, int64, error) {
	limit, offset := page.LimitOffset()
	return q.repo.FindTransactionsPage(ctx, customerID, limit, offset)
}
