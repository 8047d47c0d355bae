package cookie

import (
	"net/http"
	"time"

	"printcanvas/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const MerchantTokenCookieName = "merchant_token"

func SetMerchantTokenCookie(c *gin.Context, cfg config.AuthConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.CookieSameSite))

	c.SetCookie(
		MerchantTokenCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true, // HttpOnly
	)
}

func ClearMerchantTokenCookie(c *gin.Context, cfg config.AuthConfig) {
	c.SetSameSite(getSameSite(cfg.CookieSameSite))

	c.SetCookie(
		MerchantTokenCookieName,
		"",
		-1,
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true,
	)
}

func GetMerchantToken(c *gin.Context) string {
	token, _ := c.Cookie(MerchantTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
