package api

import (
	"errors"
	"net/http"

	reqdto "printcanvas/internal/handler/dto/request"
	resdto "printcanvas/internal/handler/dto/response"
	"printcanvas/internal/handler/middleware"
	"printcanvas/internal/pkg/cookie"
	"printcanvas/internal/pkg/config"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cfg          config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cfg:          cfg,
	}
}

// @Summary Merchant login
// @Description Authenticate a merchant and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials), errors.Is(err, errs.ErrMerchantInactive):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetMerchantTokenCookie(c, h.cfg.Auth, result.Token, h.cfg.Auth.MerchantTokenDuration)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		MerchantID: result.MerchantID,
		Email:      result.Email,
		Token:      result.Token,
	})
}

// @Summary Merchant logout
// @Description Clear the merchant session cookie
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearMerchantTokenCookie(c, h.cfg.Auth)
	c.Status(http.StatusNoContent)
}

// @Summary Current merchant
// @Description Return the authenticated merchant
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MerchantResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	merchantID, ok := middleware.GetMerchantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	snap, err := h.authCommands.CurrentMerchant(c.Request.Context(), merchantID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMerchantNotFound), errors.Is(err, errs.ErrMerchantInactive):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MerchantResponse{ID: snap.ID, Email: snap.Email})
}
