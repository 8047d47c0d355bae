//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/pkg/jwt"
	"printcanvas/internal/pkg/password"
	"printcanvas/internal/usecase/commands"
	"printcanvas/internal/usecase/shared"
	sharedmock "printcanvas/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockMerchants *sharedmock.MockMerchantRepository
	jwtService    *jwt.Service
	commands      commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMerchants = sharedmock.NewMockMerchantRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-merchant-secret", time.Hour)
	s.commands = commands.NewAuthCommands(s.mockMerchants, s.jwtService)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLogin() {
	merchantID := uuid.New()
	email := "owner@artprints.example.com"
	hash, err := password.HashPassword("s3cret-pass")
	s.Require().NoError(err)

	active := &shared.MerchantSnapshot{ID: merchantID, Email: email, IsActive: true}

	s.Run("success: returns a token the service accepts", func() {
		s.mockMerchants.EXPECT().FindByEmail(gomock.Any(), email).
			Return(active, hash, nil).Times(1)

		result, err := s.commands.Login(context.Background(), email, "s3cret-pass")
		s.NoError(err)
		s.Equal(merchantID, result.MerchantID)
		s.Equal(email, result.Email)

		claims, err := s.jwtService.ValidateMerchantToken(result.Token)
		s.NoError(err)
		s.Equal(merchantID, claims.MerchantID)
	})

	s.Run("error: wrong password", func() {
		s.mockMerchants.EXPECT().FindByEmail(gomock.Any(), email).
			Return(active, hash, nil).Times(1)

		_, err := s.commands.Login(context.Background(), email, "wrong-pass")
		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("error: unknown email maps to the same credential error", func() {
		s.mockMerchants.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, "", errs.New("merchant not found")).Times(1)

		_, err := s.commands.Login(context.Background(), "ghost@example.com", "s3cret-pass")
		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("error: inactive merchant", func() {
		inactive := &shared.MerchantSnapshot{ID: merchantID, Email: email, IsActive: false}
		s.mockMerchants.EXPECT().FindByEmail(gomock.Any(), email).
			Return(inactive, hash, nil).Times(1)

		_, err := s.commands.Login(context.Background(), email, "s3cret-pass")
		s.ErrorIs(err, errs.ErrMerchantInactive)
	})
}

func (s *AuthCommandsTestSuite) TestCurrentMerchant() {
	merchantID := uuid.New()

	s.Run("success", func() {
		snap := &shared.MerchantSnapshot{ID: merchantID, Email: "owner@artprints.example.com", IsActive: true}
		s.mockMerchants.EXPECT().FindByID(gomock.Any(), merchantID).
			Return(snap, nil).Times(1)

		found, err := s.commands.CurrentMerchant(context.Background(), merchantID)
		s.NoError(err)
		s.Equal(merchantID, found.ID)
	})

	s.Run("error: unknown merchant", func() {
		s.mockMerchants.EXPECT().FindByID(gomock.Any(), merchantID).
			Return(nil, errs.New("no rows")).Times(1)

		_, err := s.commands.CurrentMerchant(context.Background(), merchantID)
		s.ErrorIs(err, errs.ErrMerchantNotFound)
	})

	s.Run("error: inactive merchant", func() {
		snap := &shared.MerchantSnapshot{ID: merchantID, Email: "owner@artprints.example.com", IsActive: false}
		s.mockMerchants.EXPECT().FindByID(gomock.Any(), merchantID).
			Return(snap, nil).Times(1)

		_, err := s.commands.CurrentMerchant(context.Background(), merchantID)
		s.ErrorIs(err, errs.ErrMerchantInactive)
	})
}
