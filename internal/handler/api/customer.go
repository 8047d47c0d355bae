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

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerQueries queries.CustomerQueries
	creditCommands  commands.CreditCommands
}

func NewCustomerHandler(customerQueries queries.CustomerQueries, creditCommands commands.CreditCommands) *CustomerHandler {
	return &CustomerHandler{
		customerQueries: customerQueries,
		creditCommands:  creditCommands,
	}
}

// @Summary Get customer
// @Description Return the authenticated customer's wallet and usage counters
// @Tags customer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CustomerResponse
// @Failure 401 {object} map[string]string
// @Router /customer [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	profile, err := h.customerQueries.GetProfile(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerProfile(profile))
}

// @Summary Purchase credits
// @Description Record a storefront credit pack purchase
// @Tags credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseCreditsRequest true "Purchase request"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /credits/purchase [post]
func (h *CustomerHandler) PurchaseCredits(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PurchaseCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.creditCommands.ConfirmPurchase(c.Request.Context(), customerID, req.Credits, req.PriceCents)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPurchaseInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid purchase parameters",
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

	c.JSON(http.StatusOK, resdto.PurchaseResponse{
		CreditsAdded: result.CreditsAdded,
		NewBalance:   result.NewBalance,
	})
}

// @Summary Credit history
// @Description List the customer's credit ledger entries, newest first
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.CreditHistoryResponse
// @Failure 401 {object} map[string]string
// @Router /credits/history [get]
func (h *CustomerHandler) GetCreditHistory(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	page := parsePage(c)
	rows, total, err := h.customerQueries.ListCreditHistory(c.Request.Context(), customerID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactions(rows, total, hasMore(page, len(rows), total)))
}
