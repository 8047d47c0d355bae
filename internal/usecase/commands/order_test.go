//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"printcanvas/internal/domain/design"
	"printcanvas/internal/domain/order"
	"printcanvas/internal/infra"
	"printcanvas/internal/infra/printify"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/commands"
	"printcanvas/internal/usecase/shared"
	"printcanvas/tests/common/builder"
	commandsmock "printcanvas/tests/mock/commands"
	sharedmock "printcanvas/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUow      *sharedmock.MockUnitOfWork
	mockTx       *sharedmock.MockTx
	mockDesigns  *sharedmock.MockDesignRepository
	mockOrders   *sharedmock.MockOrderRepository
	mockLedger   *sharedmock.MockLedgerRepository
	mockProvider *commandsmock.MockPrintProvider
	commands     commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockDesigns = sharedmock.NewMockDesignRepository(s.mockCtrl)
	s.mockOrders = sharedmock.NewMockOrderRepository(s.mockCtrl)
	s.mockLedger = sharedmock.NewMockLedgerRepository(s.mockCtrl)
	s.mockProvider = commandsmock.NewMockPrintProvider(s.mockCtrl)

	s.mockTx.EXPECT().Designs().Return(s.mockDesigns).AnyTimes()
	s.mockTx.EXPECT().Orders().Return(s.mockOrders).AnyTimes()
	s.mockTx.EXPECT().Ledger().Return(s.mockLedger).AnyTimes()
	s.mockUow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).AnyTimes()

	s.commands = commands.NewOrderCommands(s.mockUow, s.mockProvider, mustCatalog(s.T()), testCredits())
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) awaitFulfillment(done <-chan struct{}) {
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("fulfillment goroutine did not finish")
	}
}

// ================================================================================
// TestPlaceOrder
// ================================================================================

func (s *OrderCommandsTestSuite) TestPlaceOrder() {
	customerID := uuid.New()
	snap := builder.NewDesignBuilder().With(func(b *builder.DesignBuilder) {
		b.CustomerID = customerID
	}).BuildSnapshot()
	input := commands.PlaceOrderInput{
		DesignID:   snap.ID,
		Size:       "12x16",
		FrameColor: ptr("black"),
		Quantity:   2,
	}

	s.Run("success: settles totals, persists, and submits to the provider", func() {
		s.mockDesigns.EXPECT().FindByIDForCustomer(gomock.Any(), snap.ID, customerID).
			Return(snap, nil).Times(1)
		s.mockOrders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		// net = 2 * (4999 + 1500) + 895 - 1 credit * 20
		s.mockLedger.EXPECT().RecordOrderSpend(gomock.Any(), customerID, int64(13873)).
			Return(nil).Times(1)

		fulfilled := make(chan struct{})
		s.mockProvider.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params printify.SubmitOrderParams) (string, error) {
				s.Equal(*snap.GeneratedImageURL, params.ImageURL)
				s.Equal("framed-print", params.ProductTypeID)
				s.Equal(int32(2), params.Quantity)
				return "po_42", nil
			}).Times(1)
		s.mockOrders.EXPECT().UpdateFulfillment(gomock.Any(), gomock.Any(), "po_42", order.StatusProcessing).
			DoAndReturn(func(context.Context, uuid.UUID, string, order.Status) error {
				close(fulfilled)
				return nil
			}).Times(1)

		result, err := s.commands.PlaceOrder(context.Background(), customerID, input)
		s.NoError(err)
		s.Equal(int32(12998), result.PriceCents)
		s.Equal(int32(895), result.ShippingCents)
		s.Equal(int32(20), result.CreditRefundCents)
		s.Equal(int32(13893), result.TotalCents)
		s.Equal(order.StatusPending.String(), result.Status)

		s.awaitFulfillment(fulfilled)
	})

	s.Run("success: failed submission leaves the order pending", func() {
		s.mockDesigns.EXPECT().FindByIDForCustomer(gomock.Any(), snap.ID, customerID).
			Return(snap, nil).Times(1)
		s.mockOrders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.mockLedger.EXPECT().RecordOrderSpend(gomock.Any(), customerID, gomock.Any()).
			Return(nil).Times(1)

		submitted := make(chan struct{})
		s.mockProvider.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, printify.SubmitOrderParams) (string, error) {
				close(submitted)
				return "", errs.New("provider unavailable")
			}).Times(1)

		result, err := s.commands.PlaceOrder(context.Background(), customerID, input)
		s.NoError(err)
		s.Equal(order.StatusPending.String(), result.Status)

		s.awaitFulfillment(submitted)
	})

	s.Run("error: unknown design", func() {
		s.mockDesigns.EXPECT().FindByIDForCustomer(gomock.Any(), snap.ID, customerID).
			Return(nil, infra.WrapRepoErr("design not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.PlaceOrder(context.Background(), customerID, input)
		s.ErrorIs(err, errs.ErrDesignNotFound)
	})

	s.Run("error: design without a generated image", func() {
		notReady := builder.NewDesignBuilder().With(func(b *builder.DesignBuilder) {
			b.ID = snap.ID
			b.CustomerID = customerID
			b.Status = design.StatusGenerating.String()
			b.ImageURL = nil
		}).BuildSnapshot()

		s.mockDesigns.EXPECT().FindByIDForCustomer(gomock.Any(), snap.ID, customerID).
			Return(notReady, nil).Times(1)

		_, err := s.commands.PlaceOrder(context.Background(), customerID, input)
		s.ErrorIs(err, errs.ErrDesignNotReady)
	})

	s.Run("error: invalid variant selections", func() {
		testCases := []struct {
			name     string
			mutate   func(in *commands.PlaceOrderInput)
			expected error
		}{
			{
				name:     "size not offered",
				mutate:   func(in *commands.PlaceOrderInput) { in.Size = "40x60" },
				expected: errs.ErrInvalidVariant,
			},
			{
				name:     "missing frame color",
				mutate:   func(in *commands.PlaceOrderInput) { in.FrameColor = nil },
				expected: errs.ErrInvalidVariant,
			},
			{
				name:     "unknown frame color",
				mutate:   func(in *commands.PlaceOrderInput) { in.FrameColor = ptr("chartreuse") },
				expected: errs.ErrInvalidVariant,
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				in := input
				tc.mutate(&in)

				s.mockDesigns.EXPECT().FindByIDForCustomer(gomock.Any(), snap.ID, customerID).
					Return(snap, nil).Times(1)

				_, err := s.commands.PlaceOrder(context.Background(), customerID, in)
				s.ErrorIs(err, tc.expected)
			})
		}
	})

	s.Run("error: quantity out of range", func() {
		in := input
		in.Quantity = 0

		s.mockDesigns.EXPECT().FindByIDForCustomer(gomock.Any(), snap.ID, customerID).
			Return(snap, nil).Times(1)

		_, err := s.commands.PlaceOrder(context.Background(), customerID, in)
		s.ErrorIs(err, errs.ErrInvalidOrderInput)
	})
}

// ================================================================================
// TestHandleProviderEvent
// ================================================================================

func (s *OrderCommandsTestSuite) TestHandleProviderEvent() {
	body := []byte(`{"topic":"order:shipment:created","resource":{"id":"po_42"}}`)

	s.Run("success: applies the mapped status", func() {
		s.mockProvider.EXPECT().ParseWebhook("sig", body).
			Return(&printify.WebhookEvent{PrintOrderID: "po_42", Status: "shipped"}, nil).Times(1)
		s.mockOrders.EXPECT().UpdateStatusByPrintOrderID(gomock.Any(), "po_42", order.StatusShipped).
			Return(nil).Times(1)

		s.NoError(s.commands.HandleProviderEvent(context.Background(), "sig", body))
	})

	s.Run("success: stale event against a terminal order is swallowed", func() {
		s.mockProvider.EXPECT().ParseWebhook("sig", body).
			Return(&printify.WebhookEvent{PrintOrderID: "po_42", Status: "shipped"}, nil).Times(1)
		s.mockOrders.EXPECT().UpdateStatusByPrintOrderID(gomock.Any(), "po_42", order.StatusShipped).
			Return(infra.WrapRepoErr("status transition rejected", nil, infra.KindConflict)).Times(1)

		s.NoError(s.commands.HandleProviderEvent(context.Background(), "sig", body))
	})

	s.Run("error: bad signature", func() {
		s.mockProvider.EXPECT().ParseWebhook("bad-sig", body).
			Return(nil, printify.ErrInvalidSignature).Times(1)

		err := s.commands.HandleProviderEvent(context.Background(), "bad-sig", body)
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("error: malformed payload", func() {
		s.mockProvider.EXPECT().ParseWebhook("sig", body).
			Return(nil, errs.New("unexpected topic")).Times(1)

		err := s.commands.HandleProviderEvent(context.Background(), "sig", body)
		s.ErrorIs(err, errs.ErrInvalidWebhook)
	})

	s.Run("error: status outside the known lifecycle", func() {
		s.mockProvider.EXPECT().ParseWebhook("sig", body).
			Return(&printify.WebhookEvent{PrintOrderID: "po_42", Status: "melted"}, nil).Times(1)

		err := s.commands.HandleProviderEvent(context.Background(), "sig", body)
		s.ErrorIs(err, errs.ErrInvalidWebhook)
	})

	s.Run("error: no order for the provider id", func() {
		s.mockProvider.EXPECT().ParseWebhook("sig", body).
			Return(&printify.WebhookEvent{PrintOrderID: "po_missing", Status: "shipped"}, nil).Times(1)
		s.mockOrders.EXPECT().UpdateStatusByPrintOrderID(gomock.Any(), "po_missing", order.StatusShipped).
			Return(infra.WrapRepoErr("order not found", nil, infra.KindNotFound)).Times(1)

		err := s.commands.HandleProviderEvent(context.Background(), "sig", body)
		s.ErrorIs(err, errs.ErrOrderNotFound)
	})
}
