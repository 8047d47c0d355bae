//go:build unit

package commands_test

import (
	"context"
	"testing"

	"printcanvas/internal/infra"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/commands"
	"printcanvas/internal/usecase/shared"
	sharedmock "printcanvas/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CreditCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockUow    *sharedmock.MockUnitOfWork
	mockTx     *sharedmock.MockTx
	mockLedger *sharedmock.MockLedgerRepository
	commands   commands.CreditCommands
}

func (s *CreditCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockLedger = sharedmock.NewMockLedgerRepository(s.mockCtrl)

	s.mockTx.EXPECT().Ledger().Return(s.mockLedger).AnyTimes()
	s.mockUow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).AnyTimes()

	s.commands = commands.NewCreditCommands(s.mockUow)
}

func (s *CreditCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCreditCommandsSuite(t *testing.T) {
	suite.Run(t, new(CreditCommandsTestSuite))
}

func (s *CreditCommandsTestSuite) TestConfirmPurchase() {
	customerID := uuid.New()

	s.Run("success: books the grant with the paid price", func() {
		price := int32(100)
		s.mockLedger.EXPECT().ApplyDelta(gomock.Any(), customerID, int32(5), shared.TxPurchase,
			shared.DeltaMeta{PriceInCents: &price}).
			Return(int32(10), nil).Times(1)

		result, err := s.commands.ConfirmPurchase(context.Background(), customerID, 5, 100)
		s.NoError(err)
		s.Equal(int32(5), result.CreditsAdded)
		s.Equal(int32(10), result.NewBalance)
	})

	s.Run("error: non-positive credit amount", func() {
		_, err := s.commands.ConfirmPurchase(context.Background(), customerID, 0, 100)
		s.ErrorIs(err, errs.ErrInvalidPurchaseInput)
	})

	s.Run("error: negative price", func() {
		_, err := s.commands.ConfirmPurchase(context.Background(), customerID, 5, -1)
		s.ErrorIs(err, errs.ErrInvalidPurchaseInput)
	})

	s.Run("error: unknown customer", func() {
		s.mockLedger.EXPECT().ApplyDelta(gomock.Any(), customerID, int32(5), shared.TxPurchase, gomock.Any()).
			Return(int32(0), infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.ConfirmPurchase(context.Background(), customerID, 5, 100)
		s.ErrorIs(err, errs.ErrCustomerNotFound)
	})
}
