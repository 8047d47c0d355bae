package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"printcanvas/internal/pkg/cookie"
	"printcanvas/internal/pkg/jwt"
	"printcanvas/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxCustomerIDKey = "customer_id"
	ctxShopDomainKey = "shop_domain"
	ctxMerchantIDKey = "merchant_id"
)

type AuthMiddleware struct {
	verifier *jwt.SessionVerifier
	jwtSvc   *jwt.Service
	identity commands.IdentityCommands
}

func NewAuthMiddleware(verifier *jwt.SessionVerifier, jwtSvc *jwt.Service, identity commands.IdentityCommands) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		jwtSvc:   jwtSvc,
		identity: identity,
	}
}

// RequireStorefrontAuth authenticates a storefront session token minted by the
// embedding platform and resolves (or provisions) the local customer record.
func (m *AuthMiddleware) RequireStorefrontAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			slog.Warn("session token verification failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session token",
			})
			c.Abort()
			return
		}

		customer, err := m.identity.EnsureCustomer(c.Request.Context(), claims.ShopDomain(), claims.ExternalCustomerID())
		if err != nil {
			slog.Error("failed to resolve customer", "shop_domain", claims.ShopDomain(), "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unable to resolve customer",
			})
			c.Abort()
			return
		}

		c.Set(ctxCustomerIDKey, customer.ID)
		c.Set(ctxShopDomainKey, customer.ShopDomain)
		c.Next()
	}
}

// RequireMerchantAuth authenticates the merchant dashboard via cookie or
// bearer token.
func (m *AuthMiddleware) RequireMerchantAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetMerchantToken(c)
		if token == "" {
			token = bearerToken(c)
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Merchant token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtSvc.ValidateMerchantToken(token)
		if err != nil {
			slog.Warn("merchant token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxMerchantIDKey, claims.MerchantID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetCustomerID(c *gin.Context) (uuid.UUID, bool) {
	customerID, exists := c.Get(ctxCustomerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := customerID.(uuid.UUID)
	return id, ok
}

func GetShopDomain(c *gin.Context) (string, bool) {
	shopDomain, exists := c.Get(ctxShopDomainKey)
	if !exists {
		return "", false
	}

	domain, ok := shopDomain.(string)
	return domain, ok
}

func GetMerchantID(c *gin.Context) (uuid.UUID, bool) {
	merchantID, exists := c.Get(ctxMerchantIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := merchantID.(uuid.UUID)
	return id, ok
}
