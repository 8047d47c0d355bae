package commands

import (
	"context"
	"errors"

	"printcanvas/internal/domain/coupon"
	"printcanvas/internal/infra"
	"printcanvas/internal/pkg/clock"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedeemResult struct {
	CreditsAdded int32
	NewBalance   int32
}

type CouponCommands interface {
	Redeem(ctx context.Context, code string, customerID uuid.UUID) (*RedeemResult, error)
	Create(ctx context.Context, params shared.CreateCouponParams) (uuid.UUID, error)
	Deactivate(ctx context.Context, couponID uuid.UUID) error
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clock clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, clock: clock}
}

// Redeem runs the full redemption inside one transaction: the locked coupon
// row serializes concurrent attempts on the same code, the unique redemption
// index serializes attempts by the same customer.
func (c *couponCommandsImpl) Redeem(ctx context.Context, code string, customerID uuid.UUID) (*RedeemResult, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCouponNotFound)
	}

	var result RedeemResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Coupons().FindByCodeForUpdate(ctx, normalized.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCouponNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entity, err := coupon.NewCoupon(snap.ID, snap.Code, snap.CreditAmount, snap.MaxUses, snap.UsedCount, snap.IsActive, snap.ExpiresAt)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := entity.ValidateRedeemable(c.clock.Now()); err != nil {
			switch {
			case errors.Is(err, coupon.ErrInactive):
				return errs.Mark(err, errs.ErrCouponInactive)
			case errors.Is(err, coupon.ErrExpired):
				return errs.Mark(err, errs.ErrCouponExpired)
			case errors.Is(err, coupon.ErrExhausted):
				return errs.Mark(err, errs.ErrCouponExhausted)
			}
			return err
		}

		if err := tx.Coupons().InsertRedemption(ctx, snap.ID, customerID); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrCouponAlreadyRedeemed)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrCustomerNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Coupons().IncrementUsage(ctx, snap.ID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrCouponExhausted)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		amount := entity.CreditAmount().Int32()
		newBalance, err := tx.Ledger().ApplyDelta(ctx, customerID, amount, shared.TxRedemption,
			shared.DeltaMeta{CouponID: &snap.ID})
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCustomerNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = RedeemResult{CreditsAdded: amount, NewBalance: newBalance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *couponCommandsImpl) Create(ctx context.Context, params shared.CreateCouponParams) (uuid.UUID, error) {
	normalized, err := coupon.NewCode(params.Code)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidCouponInput)
	}
	if _, err := coupon.NewCreditGrant(params.CreditAmount); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidCouponInput)
	}
	if params.MaxUses != nil && *params.MaxUses <= 0 {
		return uuid.Nil, errs.Mark(coupon.ErrInvalidMaxUses, errs.ErrInvalidCouponInput)
	}
	params.Code = normalized.String()

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Coupons().Create(ctx, params)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrCouponCodeTaken)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *couponCommandsImpl) Deactivate(ctx context.Context, couponID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Coupons().Deactivate(ctx, couponID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCouponNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
