package bootstrap

import (
	"printcanvas/internal/pkg/config"
	"printcanvas/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewSessionVerifier,
		NewJWTService,
	),
)

func NewSessionVerifier(cfg config.Config) *jwt.SessionVerifier {
	return jwt.NewSessionVerifier(cfg.Auth.SessionSecret)
}

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Auth.MerchantSecret, cfg.Auth.MerchantTokenDuration)
}
