//go:build integration

package integration

import (
	"context"
	"testing"

	"printcanvas/internal/domain/design"
	"printcanvas/internal/domain/order"
	"printcanvas/internal/infra"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type OrderIntegrationTestSuite struct {
	SharedSuite
}

func TestOrderIntegrationSuite(t *testing.T) {
	suite.Run(t, new(OrderIntegrationTestSuite))
}

// createCompletedDesign persists a design the way a finished generation does.
func (s *OrderIntegrationTestSuite) createCompletedDesign(customerID uuid.UUID) uuid.UUID {
	frameColor := "black"
	d, err := design.NewDesign(customerID, "A watercolor fox in an autumn forest", "watercolor",
		"framed-print", "12x16", &frameColor)
	s.Require().NoError(err)

	err = s.UoW.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Designs().Create(ctx, d); err != nil {
			return err
		}
		return tx.Designs().SetGenerated(ctx, d.ID(), "https://designs.example.com/designs/fox.png", 1)
	})
	s.Require().NoError(err)
	return d.ID()
}

func (s *OrderIntegrationTestSuite) createPendingOrder(customerID, designID uuid.UUID) uuid.UUID {
	frameColor := "black"
	totals := order.SettleTotals(6499, 895, 1, 1, 20)
	entity, err := order.NewOrder(designID, customerID, "framed-print", "12x16", &frameColor, 1, totals)
	s.Require().NoError(err)

	err = s.UoW.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().Create(ctx, entity)
	})
	s.Require().NoError(err)
	return entity.ID()
}

func (s *OrderIntegrationTestSuite) orderStatus(orderID uuid.UUID) string {
	var status string
	err := s.DB.QueryRow(context.Background(),
		`SELECT status FROM orders WHERE id = $1`, orderID).Scan(&status)
	s.Require().NoError(err)
	return status
}

func (s *OrderIntegrationTestSuite) TestFulfillmentLifecycle() {
	ctx := context.Background()
	customerID := s.provisionCustomer(5)
	designID := s.createCompletedDesign(customerID)
	orderID := s.createPendingOrder(customerID, designID)

	s.Run("submission records the provider id and moves to processing", func() {
		err := s.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Orders().UpdateFulfillment(ctx, orderID, "po_100", order.StatusProcessing)
		})
		s.NoError(err)
		s.Equal("processing", s.orderStatus(orderID))
	})

	s.Run("provider events advance the status", func() {
		err := s.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Orders().UpdateStatusByPrintOrderID(ctx, "po_100", order.StatusShipped)
		})
		s.NoError(err)
		s.Equal("shipped", s.orderStatus(orderID))
	})

	s.Run("stale events cannot walk the status backwards", func() {
		err := s.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Orders().UpdateStatusByPrintOrderID(ctx, "po_100", order.StatusProcessing)
		})
		s.True(infra.IsKind(err, infra.KindConflict), "expected CONFLICT, got %v", err)
		s.Equal("shipped", s.orderStatus(orderID))
	})

	s.Run("unknown provider id", func() {
		err := s.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Orders().UpdateStatusByPrintOrderID(ctx, "po_ghost", order.StatusShipped)
		})
		s.True(infra.IsKind(err, infra.KindNotFound), "expected NOT_FOUND, got %v", err)
	})
}

func (s *OrderIntegrationTestSuite) TestOrderedDesignCannotBeDeleted() {
	ctx := context.Background()
	customerID := s.provisionCustomer(5)
	designID := s.createCompletedDesign(customerID)
	s.createPendingOrder(customerID, designID)

	err := s.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Designs().Delete(ctx, designID, customerID)
	})
	s.True(infra.IsKind(err, infra.KindForeignKeyViolated), "expected FOREIGN_KEY_VIOLATED, got %v", err)

	var count int
	scanErr := s.DB.QueryRow(ctx, `SELECT count(*) FROM designs WHERE id = $1`, designID).Scan(&count)
	s.Require().NoError(scanErr)
	s.Equal(1, count)
}

func (s *OrderIntegrationTestSuite) TestDuplicatePrintOrderIDRejected() {
	ctx := context.Background()
	customerID := s.provisionCustomer(5)
	designID := s.createCompletedDesign(customerID)
	first := s.createPendingOrder(customerID, designID)
	second := s.createPendingOrder(customerID, designID)

	err := s.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().UpdateFulfillment(ctx, first, "po_dup", order.StatusProcessing)
	})
	s.Require().NoError(err)

	err = s.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().UpdateFulfillment(ctx, second, "po_dup", order.StatusProcessing)
	})
	s.Error(err, "one provider order id must map to exactly one order row")
}
