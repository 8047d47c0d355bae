//go:build unit

package commands_test

import (
	"context"
	"testing"

	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/commands"
	"printcanvas/internal/usecase/shared"
	"printcanvas/tests/common/builder"
	sharedmock "printcanvas/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IdentityCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUow       *sharedmock.MockUnitOfWork
	mockTx        *sharedmock.MockTx
	mockCustomers *sharedmock.MockCustomerRepository
	commands      commands.IdentityCommands
}

func (s *IdentityCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockCustomers = sharedmock.NewMockCustomerRepository(s.mockCtrl)

	s.mockTx.EXPECT().Customers().Return(s.mockCustomers).AnyTimes()
	s.mockUow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).AnyTimes()

	s.commands = commands.NewIdentityCommands(s.mockUow, testCredits())
}

func (s *IdentityCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIdentityCommandsSuite(t *testing.T) {
	suite.Run(t, new(IdentityCommandsTestSuite))
}

func (s *IdentityCommandsTestSuite) TestEnsureCustomer() {
	snap := builder.NewCustomerBuilder().BuildSnapshot()

	s.Run("success: provisions with the starting balance", func() {
		s.mockCustomers.EXPECT().
			EnsureByStorefrontID(gomock.Any(), snap.ShopDomain, snap.ExternalID, int32(5)).
			Return(snap, nil).Times(1)

		found, err := s.commands.EnsureCustomer(context.Background(), snap.ShopDomain, snap.ExternalID)
		s.NoError(err)
		s.Equal(snap.ID, found.ID)
		s.Equal(int32(5), found.Credits)
	})

	s.Run("error: missing shop domain", func() {
		_, err := s.commands.EnsureCustomer(context.Background(), "", snap.ExternalID)
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("error: missing external id", func() {
		_, err := s.commands.EnsureCustomer(context.Background(), snap.ShopDomain, "")
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("error: database failure surfaces as operation error", func() {
		s.mockCustomers.EXPECT().
			EnsureByStorefrontID(gomock.Any(), snap.ShopDomain, snap.ExternalID, int32(5)).
			Return(nil, errs.New("connection reset")).Times(1)

		_, err := s.commands.EnsureCustomer(context.Background(), snap.ShopDomain, snap.ExternalID)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}
