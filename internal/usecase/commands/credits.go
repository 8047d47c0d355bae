package commands

import (
	"context"

	"printcanvas/internal/infra"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
)

type PurchaseResult struct {
	CreditsAdded int32
	NewBalance   int32
}

type CreditCommands interface {
	ConfirmPurchase(ctx context.Context, customerID uuid.UUID, creditAmount, priceCents int32) (*PurchaseResult, error)
}

type creditCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCreditCommands(uow shared.UnitOfWork) CreditCommands {
	return &creditCommandsImpl{uow: uow}
}

// ConfirmPurchase records a storefront credit pack purchase. Payment itself
// happens on the platform side; this only books the grant.
func (c *creditCommandsImpl) ConfirmPurchase(ctx context.Context, customerID uuid.UUID, creditAmount, priceCents int32) (*PurchaseResult, error) {
	if creditAmount <= 0 || priceCents < 0 {
		return nil, errs.ErrInvalidPurchaseInput
	}

	var result PurchaseResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		newBalance, err := tx.Ledger().ApplyDelta(ctx, customerID, creditAmount, shared.TxPurchase,
			shared.DeltaMeta{PriceInCents: &priceCents})
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCustomerNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		result = PurchaseResult{CreditsAdded: creditAmount, NewBalance: newBalance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
