//go:build integration

package integration

import (
	"context"
	"testing"

	"printcanvas/internal/infra"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type LedgerIntegrationTestSuite struct {
	SharedSuite
}

func TestLedgerIntegrationSuite(t *testing.T) {
	suite.Run(t, new(LedgerIntegrationTestSuite))
}

func (s *LedgerIntegrationTestSuite) applyDelta(customerID uuid.UUID, amount int32, txType shared.TxType, meta shared.DeltaMeta) (int32, error) {
	var balance int32
	err := s.UoW.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		balance, err = tx.Ledger().ApplyDelta(ctx, customerID, amount, txType, meta)
		return err
	})
	return balance, err
}

func (s *LedgerIntegrationTestSuite) balanceOf(customerID uuid.UUID) int32 {
	var credits int32
	err := s.DB.QueryRow(context.Background(),
		`SELECT credits FROM customers WHERE id = $1`, customerID).Scan(&credits)
	s.Require().NoError(err)
	return credits
}

func (s *LedgerIntegrationTestSuite) ledgerRowCount(customerID uuid.UUID) int {
	var count int
	err := s.DB.QueryRow(context.Background(),
		`SELECT count(*) FROM credit_transactions WHERE customer_id = $1`, customerID).Scan(&count)
	s.Require().NoError(err)
	return count
}

func (s *LedgerIntegrationTestSuite) TestApplyDelta() {
	s.Run("purchase raises the balance and appends a ledger row", func() {
		customerID := s.provisionCustomer(5)
		price := int32(100)

		balance, err := s.applyDelta(customerID, 5, shared.TxPurchase, shared.DeltaMeta{PriceInCents: &price})
		s.NoError(err)
		s.Equal(int32(10), balance)
		s.Equal(int32(10), s.balanceOf(customerID))
		s.Equal(1, s.ledgerRowCount(customerID))

		var txType string
		var amount, priceInCents int32
		err = s.DB.QueryRow(context.Background(),
			`SELECT type, amount, price_in_cents FROM credit_transactions WHERE customer_id = $1`,
			customerID).Scan(&txType, &amount, &priceInCents)
		s.Require().NoError(err)
		s.Equal("purchase", txType)
		s.Equal(int32(5), amount)
		s.Equal(int32(100), priceInCents)
	})

	s.Run("debit consumes credits down to zero", func() {
		customerID := s.provisionCustomer(1)

		balance, err := s.applyDelta(customerID, -1, shared.TxDebit, shared.DeltaMeta{})
		s.NoError(err)
		s.Equal(int32(0), balance)
	})

	s.Run("debit below zero is rejected and writes nothing", func() {
		customerID := s.provisionCustomer(0)

		_, err := s.applyDelta(customerID, -1, shared.TxDebit, shared.DeltaMeta{})
		s.True(infra.IsKind(err, infra.KindCheckViolated), "expected CHECK_VIOLATED, got %v", err)
		s.Equal(int32(0), s.balanceOf(customerID))
		s.Equal(0, s.ledgerRowCount(customerID))
	})

	s.Run("amount sign must match the transaction type", func() {
		customerID := s.provisionCustomer(5)

		_, err := s.applyDelta(customerID, 1, shared.TxDebit, shared.DeltaMeta{})
		s.True(infra.IsKind(err, infra.KindCheckViolated), "expected CHECK_VIOLATED, got %v", err)

		_, err = s.applyDelta(customerID, -1, shared.TxRefund, shared.DeltaMeta{})
		s.True(infra.IsKind(err, infra.KindCheckViolated), "expected CHECK_VIOLATED, got %v", err)
	})

	s.Run("unknown customer", func() {
		_, err := s.applyDelta(uuid.New(), 5, shared.TxPurchase, shared.DeltaMeta{})
		s.True(infra.IsKind(err, infra.KindNotFound), "expected NOT_FOUND, got %v", err)
	})
}

func (s *LedgerIntegrationTestSuite) TestRecordOrderSpend() {
	s.Run("accumulates lifetime spend", func() {
		customerID := s.provisionCustomer(5)

		err := s.UoW.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Ledger().RecordOrderSpend(ctx, customerID, 5894); err != nil {
				return err
			}
			return tx.Ledger().RecordOrderSpend(ctx, customerID, 100)
		})
		s.NoError(err)

		var totalSpent int64
		err = s.DB.QueryRow(context.Background(),
			`SELECT total_spent_cents FROM customers WHERE id = $1`, customerID).Scan(&totalSpent)
		s.Require().NoError(err)
		s.Equal(int64(5994), totalSpent)
	})

	s.Run("unknown customer", func() {
		err := s.UoW.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			return tx.Ledger().RecordOrderSpend(ctx, uuid.New(), 100)
		})
		s.True(infra.IsKind(err, infra.KindNotFound), "expected NOT_FOUND, got %v", err)
	})
}

func (s *LedgerIntegrationTestSuite) TestProvisioningIsIdempotent() {
	ctx := context.Background()
	external := "gid://shopify/Customer/777000111"

	var first, second *shared.CustomerSnapshot
	err := s.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		first, err = tx.Customers().EnsureByStorefrontID(ctx, "artprints.myshopify.com", external, 5)
		return err
	})
	s.Require().NoError(err)
	s.Equal(int32(5), first.Credits)

	// A second authenticated visit must return the same wallet untouched.
	err = s.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		second, err = tx.Customers().EnsureByStorefrontID(ctx, "artprints.myshopify.com", external, 5)
		return err
	})
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal(int32(5), second.Credits)
}
