package api

import (
	"errors"
	"net/http"

	reqdto "printcanvas/internal/handler/dto/request"
	resdto "printcanvas/internal/handler/dto/response"
	"printcanvas/internal/handler/middleware"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/commands"
	"printcanvas/internal/usecase/queries"
	"printcanvas/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
	couponQueries  queries.CouponQueries
}

func NewCouponHandler(couponCommands commands.CouponCommands, couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		couponCommands: couponCommands,
		couponQueries:  couponQueries,
	}
}

// @Summary Redeem coupon
// @Description Redeem a coupon code for credits
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemCouponRequest true "Redemption request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /coupons/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.couponCommands.Redeem(c.Request.Context(), req.Code, customerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, errs.ErrCouponInactive):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Coupon is not active",
			})
		case errors.Is(err, errs.ErrCouponExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "Coupon has expired",
			})
		case errors.Is(err, errs.ErrCouponExhausted):
			c.JSON(http.StatusGone, gin.H{
				"error": "Coupon usage limit reached",
			})
		case errors.Is(err, errs.ErrCouponAlreadyRedeemed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon already redeemed",
			})
		case errors.Is(err, errs.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RedeemResponse{
		CreditsAdded: result.CreditsAdded,
		NewBalance:   result.NewBalance,
	})
}

// @Summary Create coupon
// @Description Create a coupon (merchant only)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon definition"
// @Success 201 {object} resdto.CouponCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.couponCommands.Create(c.Request.Context(), shared.CreateCouponParams{
		Code:         req.Code,
		CreditAmount: req.CreditAmount,
		MaxUses:      req.MaxUses,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCouponInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid coupon parameters",
			})
		case errors.Is(err, errs.ErrCouponCodeTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon code already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CouponCreatedResponse{ID: id})
}

// @Summary List coupons
// @Description List all coupons (merchant only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.CouponListResponse
// @Failure 401 {object} map[string]string
// @Router /admin/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	page := parsePage(c)
	rows, total, err := h.couponQueries.ListAll(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCoupons(rows, total, hasMore(page, len(rows), total)))
}

// @Summary Deactivate coupon
// @Description Deactivate a coupon (merchant only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/coupons/{id} [delete]
func (h *CouponHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon ID format",
		})
		return
	}

	if err := h.couponCommands.Deactivate(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
