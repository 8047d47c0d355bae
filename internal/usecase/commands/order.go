package commands

import (
	"context"
	"errors"
	"log/slog"

	"printcanvas/internal/domain/design"
	"printcanvas/internal/domain/order"
	"printcanvas/internal/infra"
	"printcanvas/internal/infra/printify"
	"printcanvas/internal/pkg/catalog"
	"printcanvas/internal/pkg/config"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
)

type PlaceOrderInput struct {
	DesignID   uuid.UUID
	Size       string
	FrameColor *string
	Quantity   int32
}

type PlaceOrderResult struct {
	OrderID           uuid.UUID
	PriceCents        int32
	ShippingCents     int32
	CreditRefundCents int32
	TotalCents        int32
	Status            string
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input PlaceOrderInput) (*PlaceOrderResult, error)
	HandleProviderEvent(ctx context.Context, signature string, body []byte) error
}

type orderCommandsImpl struct {
	uow      shared.UnitOfWork
	provider PrintProvider
	catalog  *catalog.Catalog
	credits  config.CreditsConfig
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	provider PrintProvider,
	cat *catalog.Catalog,
	credits config.CreditsConfig,
) OrderCommands {
	return &orderCommandsImpl{
		uow:      uow,
		provider: provider,
		catalog:  cat,
		credits:  credits,
	}
}

// PlaceOrder settles pricing and persists the order in one transaction, then
// hands the order to the print provider asynchronously. The credit refund is
// a discount on the order total, never a wallet mutation.
func (o *orderCommandsImpl) PlaceOrder(ctx context.Context, customerID uuid.UUID, input PlaceOrderInput) (*PlaceOrderResult, error) {
	var (
		result    PlaceOrderResult
		orderID   uuid.UUID
		imageURL  string
		productID string
		quantity  = input.Quantity
	)

	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Designs().FindByIDForCustomer(ctx, input.DesignID, customerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrDesignNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.Status != design.StatusCompleted.String() || snap.GeneratedImageURL == nil {
			return errs.ErrDesignNotReady
		}

		product, unitPrice, err := o.resolveVariant(snap.ProductTypeID, input.Size, input.FrameColor)
		if err != nil {
			return err
		}

		totals := order.SettleTotals(unitPrice, product.ShippingCents, quantity, snap.CreditsSpent, o.credits.CentsPerCredit)

		entity, err := order.NewOrder(snap.ID, customerID, product.ID, input.Size, input.FrameColor, quantity, totals)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidOrderInput)
		}

		if err := tx.Orders().Create(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Ledger().RecordOrderSpend(ctx, customerID, int64(totals.NetCents())); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		orderID = entity.ID()
		imageURL = *snap.GeneratedImageURL
		productID = product.ID
		result = PlaceOrderResult{
			OrderID:           orderID,
			PriceCents:        totals.PriceCents,
			ShippingCents:     totals.ShippingCents,
			CreditRefundCents: totals.CreditRefundCents,
			TotalCents:        totals.TotalCents(),
			Status:            entity.Status().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go o.submitFulfillment(context.WithoutCancel(ctx), printify.SubmitOrderParams{
		OrderID:       orderID,
		ImageURL:      imageURL,
		ProductTypeID: productID,
		Size:          input.Size,
		FrameColor:    input.FrameColor,
		Quantity:      quantity,
	})

	return &result, nil
}

func (o *orderCommandsImpl) resolveVariant(productTypeID, size string, frameColor *string) (catalog.Product, int32, error) {
	product, ok := o.catalog.Product(productTypeID)
	if !ok {
		return catalog.Product{}, 0, errs.ErrUnknownProduct
	}

	unitPrice, err := product.PriceFor(size)
	if err != nil {
		return catalog.Product{}, 0, errs.Mark(err, errs.ErrInvalidVariant)
	}

	switch product.Family {
	case catalog.FamilyFrame:
		if frameColor == nil || !product.HasFrameColor(*frameColor) {
			return catalog.Product{}, 0, errs.ErrInvalidVariant
		}
	default:
		if frameColor != nil {
			return catalog.Product{}, 0, errs.ErrInvalidVariant
		}
	}
	return product, unitPrice, nil
}

// submitFulfillment runs after commit on a detached context. A failed
// submission leaves the order pending; the merchant resubmits from the
// provider dashboard.
func (o *orderCommandsImpl) submitFulfillment(ctx context.Context, params printify.SubmitOrderParams) {
	printOrderID, err := o.provider.SubmitOrder(ctx, params)
	if err != nil {
		slog.Error("print order submission failed",
			"order_id", params.OrderID.String(),
			"error", err.Error())
		return
	}

	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().UpdateFulfillment(ctx, params.OrderID, printOrderID, order.StatusProcessing)
	})
	if err != nil {
		slog.Error("failed to record print order id",
			"order_id", params.OrderID.String(),
			"print_order_id", printOrderID,
			"error", err.Error())
		return
	}

	slog.Info("order submitted to print provider",
		"order_id", params.OrderID.String(),
		"print_order_id", printOrderID)
}

// HandleProviderEvent verifies and applies a provider status webhook.
func (o *orderCommandsImpl) HandleProviderEvent(ctx context.Context, signature string, body []byte) error {
	event, err := o.provider.ParseWebhook(signature, body)
	if err != nil {
		if errors.Is(err, printify.ErrInvalidSignature) {
			return errs.Mark(err, errs.ErrUnauthorized)
		}
		return errs.Mark(err, errs.ErrInvalidWebhook)
	}

	status := order.Status(event.Status)
	if !status.IsValid() {
		return errs.Mark(errs.Newf("unknown status %q", event.Status), errs.ErrInvalidWebhook)
	}

	return o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Orders().UpdateStatusByPrintOrderID(ctx, event.PrintOrderID, status); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrOrderNotFound)
			}
			if infra.IsKind(err, infra.KindConflict) {
				// Out-of-order delivery; the terminal state already won.
				slog.Warn("ignoring stale order status event",
					"print_order_id", event.PrintOrderID,
					"status", event.Status)
				return nil
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
