package commands

import (
	"context"
	"errors"
	"log/slog"

	"printcanvas/internal/domain/design"
	"printcanvas/internal/infra"
	"printcanvas/internal/infra/imagegen"
	"printcanvas/internal/infra/inflight"
	"printcanvas/internal/pkg/catalog"
	"printcanvas/internal/pkg/config"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
)

type GenerateDesignInput struct {
	Prompt            string
	StylePreset       string
	ProductTypeID     string
	Size              string
	FrameColor        *string
	ReferenceImageB64 string
}

type GenerateResult struct {
	DesignID          uuid.UUID
	GeneratedImageURL string
	CreditsSpent      int32
	UsedFree          bool
}

type GenerationCommands interface {
	Generate(ctx context.Context, customerID uuid.UUID, input GenerateDesignInput) (*GenerateResult, error)
	DeleteDesign(ctx context.Context, customerID, designID uuid.UUID) error
}

type generationCommandsImpl struct {
	uow       shared.UnitOfWork
	guard     InflightGuard
	generator ImageGenerator
	store     DesignStore
	catalog   *catalog.Catalog
	credits   config.CreditsConfig
}

func NewGenerationCommands(
	uow shared.UnitOfWork,
	guard InflightGuard,
	generator ImageGenerator,
	store DesignStore,
	cat *catalog.Catalog,
	credits config.CreditsConfig,
) GenerationCommands {
	return &generationCommandsImpl{
		uow:       uow,
		guard:     guard,
		generator: generator,
		store:     store,
		catalog:   cat,
		credits:   credits,
	}
}

// Generate charges the customer up front (free allowance first, then one
// credit), calls the image provider outside any transaction, and refunds the
// charge if the provider or the upload fails. The refund runs on a detached
// context so a canceled request cannot strand a paid-for failure.
func (g *generationCommandsImpl) Generate(ctx context.Context, customerID uuid.UUID, input GenerateDesignInput) (*GenerateResult, error) {
	if err := g.validateVariant(input); err != nil {
		return nil, err
	}

	release, err := g.guard.Acquire(ctx, customerID)
	if err != nil {
		if errors.Is(err, inflight.ErrAlreadyInFlight) {
			return nil, errs.Mark(err, errs.ErrGenerationInProgress)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer release()

	d, err := design.NewDesign(customerID, input.Prompt, input.StylePreset, input.ProductTypeID, input.Size, input.FrameColor)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDesignInput)
	}

	usedFree, err := g.chargeAndCreate(ctx, customerID, d)
	if err != nil {
		return nil, err
	}

	image, err := g.generator.Generate(ctx, imagegen.GenerateParams{
		Prompt:            input.Prompt,
		StylePreset:       input.StylePreset,
		ReferenceImageB64: input.ReferenceImageB64,
	})
	if err != nil {
		g.compensate(ctx, customerID, d.ID(), usedFree, err)
		return nil, errs.Mark(err, errs.ErrGenerationFailed)
	}

	imageURL, err := g.store.UploadDesign(ctx, d.ID(), image.ContentType, image.Data)
	if err != nil {
		g.compensate(ctx, customerID, d.ID(), usedFree, err)
		return nil, errs.Mark(err, errs.ErrGenerationFailed)
	}

	creditsSpent := int32(1)
	if usedFree {
		creditsSpent = 0
	}

	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Designs().SetGenerated(ctx, d.ID(), imageURL, creditsSpent); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Customers().RecordGeneration(ctx, customerID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		g.compensate(ctx, customerID, d.ID(), usedFree, err)
		return nil, err
	}

	g.writeLog(ctx, customerID, d.ID(), true, nil)

	return &GenerateResult{
		DesignID:          d.ID(),
		GeneratedImageURL: imageURL,
		CreditsSpent:      creditsSpent,
		UsedFree:          usedFree,
	}, nil
}

func (g *generationCommandsImpl) validateVariant(input GenerateDesignInput) error {
	product, ok := g.catalog.Product(input.ProductTypeID)
	if !ok {
		return errs.ErrUnknownProduct
	}
	if !product.HasSize(input.Size) {
		return errs.ErrInvalidVariant
	}

	switch product.Family {
	case catalog.FamilyFrame:
		if input.FrameColor == nil || !product.HasFrameColor(*input.FrameColor) {
			return errs.ErrInvalidVariant
		}
	default:
		if input.FrameColor != nil {
			return errs.ErrInvalidVariant
		}
	}
	return nil
}

// chargeAndCreate reserves payment for the attempt and persists the design row
// in one transaction. Returns whether the free allowance covered it.
func (g *generationCommandsImpl) chargeAndCreate(ctx context.Context, customerID uuid.UUID, d *design.Design) (bool, error) {
	var usedFree bool
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Customers().FindByIDForUpdate(ctx, customerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCustomerNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Designs().Create(ctx, d); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if snap.FreeGenerationsUsed < g.credits.FreeGenerationAllowance {
			usedFree = true
			if err := tx.Customers().IncrementFreeGenerations(ctx, customerID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			return nil
		}

		designID := d.ID()
		if _, err := tx.Ledger().ApplyDelta(ctx, customerID, -1, shared.TxDebit,
			shared.DeltaMeta{DesignID: &designID}); err != nil {
			if infra.IsKind(err, infra.KindCheckViolated) {
				return errs.Mark(err, errs.ErrInsufficientCredits)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	return usedFree, err
}

// compensate undoes the charge after a failed attempt and marks the design
// failed. It must run even when the request context is already canceled.
func (g *generationCommandsImpl) compensate(ctx context.Context, customerID, designID uuid.UUID, usedFree bool, cause error) {
	detached := context.WithoutCancel(ctx)

	err := g.uow.Within(detached, func(ctx context.Context, tx shared.Tx) error {
		if usedFree {
			if err := tx.Customers().DecrementFreeGenerations(ctx, customerID); err != nil {
				return err
			}
		} else {
			id := designID
			if _, err := tx.Ledger().ApplyDelta(ctx, customerID, 1, shared.TxRefund,
				shared.DeltaMeta{DesignID: &id}); err != nil {
				return err
			}
		}
		return tx.Designs().MarkFailed(ctx, designID)
	})
	if err != nil {
		slog.Error("generation compensation failed",
			"customer_id", customerID.String(),
			"design_id", designID.String(),
			"error", err.Error())
	}

	msg := cause.Error()
	g.writeLog(detached, customerID, designID, false, &msg)
}

// Generation log writes are best effort and never surfaced.
func (g *generationCommandsImpl) writeLog(ctx context.Context, customerID, designID uuid.UUID, success bool, errorMessage *string) {
	id := designID
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.GenerationLogs().Insert(ctx, customerID, &id, success, errorMessage)
	})
	if err != nil {
		slog.Warn("failed to write generation log",
			"customer_id", customerID.String(),
			"error", err.Error())
	}
}

func (g *generationCommandsImpl) DeleteDesign(ctx context.Context, customerID, designID uuid.UUID) error {
	return g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Designs().Delete(ctx, designID, customerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrDesignNotFound)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrDesignHasOrders)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
