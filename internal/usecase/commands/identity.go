package commands

import (
	"context"

	"printcanvas/internal/pkg/config"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/shared"
)

type IdentityCommands interface {
	EnsureCustomer(ctx context.Context, shopDomain, externalID string) (*shared.CustomerSnapshot, error)
}

type identityCommandsImpl struct {
	uow     shared.UnitOfWork
	credits config.CreditsConfig
}

func NewIdentityCommands(uow shared.UnitOfWork, credits config.CreditsConfig) IdentityCommands {
	return &identityCommandsImpl{uow: uow, credits: credits}
}

// EnsureCustomer provisions the wallet on first authenticated storefront
// access. The starting balance is seeded directly on the row, not through the
// ledger: it predates any transaction the customer could have made.
func (i *identityCommandsImpl) EnsureCustomer(ctx context.Context, shopDomain, externalID string) (*shared.CustomerSnapshot, error) {
	if shopDomain == "" || externalID == "" {
		return nil, errs.ErrUnauthorized
	}

	var snap *shared.CustomerSnapshot
	err := i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Customers().EnsureByStorefrontID(ctx, shopDomain, externalID, i.credits.StartingBalance)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		snap = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
