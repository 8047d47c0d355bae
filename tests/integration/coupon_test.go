//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"printcanvas/internal/pkg/clock"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/commands"
	"printcanvas/internal/usecase/shared"

	"github.com/stretchr/testify/suite"
)

type CouponIntegrationTestSuite struct {
	SharedSuite
	clock    *clock.MockClock
	commands commands.CouponCommands
}

func (s *CouponIntegrationTestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewCouponCommands(s.UoW, s.clock)
}

func TestCouponIntegrationSuite(t *testing.T) {
	suite.Run(t, new(CouponIntegrationTestSuite))
}

func (s *CouponIntegrationTestSuite) redemptionCount(code string) int {
	var count int
	err := s.DB.QueryRow(context.Background(),
		`SELECT count(*) FROM coupon_redemptions r JOIN coupons c ON c.id = r.coupon_id WHERE c.code = $1`,
		code).Scan(&count)
	s.Require().NoError(err)
	return count
}

func (s *CouponIntegrationTestSuite) TestRedeemLifecycle() {
	ctx := context.Background()

	_, err := s.commands.Create(ctx, shared.CreateCouponParams{
		Code:         "LAUNCH15",
		CreditAmount: 15,
	})
	s.Require().NoError(err)

	customerID := s.provisionCustomer(5)

	s.Run("first redemption credits the wallet", func() {
		result, err := s.commands.Redeem(ctx, "LAUNCH15", customerID)
		s.NoError(err)
		s.Equal(int32(15), result.CreditsAdded)
		s.Equal(int32(20), result.NewBalance)
		s.Equal(1, s.redemptionCount("LAUNCH15"))
	})

	s.Run("second redemption by the same customer is blocked", func() {
		_, err := s.commands.Redeem(ctx, "LAUNCH15", customerID)
		s.ErrorIs(err, errs.ErrCouponAlreadyRedeemed)
		s.Equal(1, s.redemptionCount("LAUNCH15"))

		// The failed attempt must not leave a partial credit grant behind.
		var credits int32
		scanErr := s.DB.QueryRow(ctx, `SELECT credits FROM customers WHERE id = $1`, customerID).Scan(&credits)
		s.Require().NoError(scanErr)
		s.Equal(int32(20), credits)
	})

	s.Run("another customer can still redeem the same code", func() {
		otherID := s.provisionCustomer(0)

		result, err := s.commands.Redeem(ctx, "launch15", otherID)
		s.NoError(err)
		s.Equal(int32(15), result.NewBalance)
		s.Equal(2, s.redemptionCount("LAUNCH15"))
	})
}

func (s *CouponIntegrationTestSuite) TestRedeemUsageCap() {
	ctx := context.Background()
	maxUses := int32(1)

	_, err := s.commands.Create(ctx, shared.CreateCouponParams{
		Code:         "ONETIME",
		CreditAmount: 5,
		MaxUses:      &maxUses,
	})
	s.Require().NoError(err)

	first := s.provisionCustomer(0)
	second := s.provisionCustomer(0)

	_, err = s.commands.Redeem(ctx, "ONETIME", first)
	s.Require().NoError(err)

	_, err = s.commands.Redeem(ctx, "ONETIME", second)
	s.ErrorIs(err, errs.ErrCouponExhausted)
	s.Equal(1, s.redemptionCount("ONETIME"))
}

func (s *CouponIntegrationTestSuite) TestRedeemExpired() {
	ctx := context.Background()
	expiresAt := s.clock.Now().Add(time.Hour)

	_, err := s.commands.Create(ctx, shared.CreateCouponParams{
		Code:         "FLASH5",
		CreditAmount: 5,
		ExpiresAt:    &expiresAt,
	})
	s.Require().NoError(err)

	customerID := s.provisionCustomer(0)

	s.clock.Add(2 * time.Hour)
	_, err = s.commands.Redeem(ctx, "FLASH5", customerID)
	s.ErrorIs(err, errs.ErrCouponExpired)

	s.clock.Add(-2 * time.Hour)
	_, err = s.commands.Redeem(ctx, "FLASH5", customerID)
	s.NoError(err)
}

func (s *CouponIntegrationTestSuite) TestDeactivate() {
	ctx := context.Background()

	id, err := s.commands.Create(ctx, shared.CreateCouponParams{
		Code:         "SUNSET10",
		CreditAmount: 10,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.commands.Deactivate(ctx, id))

	customerID := s.provisionCustomer(0)
	_, err = s.commands.Redeem(ctx, "SUNSET10", customerID)
	s.ErrorIs(err, errs.ErrCouponInactive)
}

func (s *CouponIntegrationTestSuite) TestCreateDuplicateCode() {
	ctx := context.Background()

	_, err := s.commands.Create(ctx, shared.CreateCouponParams{Code: "UNIQUE1", CreditAmount: 5})
	s.Require().NoError(err)

	_, err = s.commands.Create(ctx, shared.CreateCouponParams{Code: "unique1", CreditAmount: 5})
	s.ErrorIs(err, errs.ErrCouponCodeTaken)
}
