package commands

import (
	"context"

	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/pkg/jwt"
	"printcanvas/internal/pkg/password"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResult struct {
	MerchantID uuid.UUID
	Email      string
	Token      string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	CurrentMerchant(ctx context.Context, merchantID uuid.UUID) (*shared.MerchantSnapshot, error)
}

type authCommandsImpl struct {
	merchants  shared.MerchantRepository
	jwtService *jwt.Service
}

func NewAuthCommands(merchants shared.MerchantRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{merchants: merchants, jwtService: jwtService}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	snap, hash, err := a.merchants.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch to prevent merchant enumeration
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}
	if !snap.IsActive {
		return nil, errs.ErrMerchantInactive
	}

	if err := password.ComparePassword(hash, plainPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateMerchantToken(snap.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}

	return &LoginResult{
		MerchantID: snap.ID,
		Email:      snap.Email,
		Token:      token,
	}, nil
}

func (a *authCommandsImpl) CurrentMerchant(ctx context.Context, merchantID uuid.UUID) (*shared.MerchantSnapshot, error) {
	snap, err := a.merchants.FindByID(ctx, merchantID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrMerchantNotFound)
	}
	if !snap.IsActive {
		return nil, errs.ErrMerchantInactive
	}
	return snap, nil
}
