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
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Place order
// @Description Place a print order for a completed design
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceOrderRequest true "Order request"
// @Success 201 {object} resdto.PlaceOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.PlaceOrder(c.Request.Context(), customerID, commands.PlaceOrderInput{
		DesignID:   req.DesignID,
		Size:       req.Size,
		FrameColor: req.FrameColor,
		Quantity:   req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDesignNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Design not found",
			})
		case errors.Is(err, errs.ErrDesignNotReady):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Design has no generated image",
			})
		case errors.Is(err, errs.ErrUnknownProduct):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown product type",
			})
		case errors.Is(err, errs.ErrInvalidVariant):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid size or frame color for this product",
			})
		case errors.Is(err, errs.ErrInvalidOrderInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid order parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPlaceOrderResult(result))
}

// @Summary List orders
// @Description List the customer's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	page := parsePage(c)
	rows, total, err := h.orderQueries.ListByCustomer(c.Request.Context(), customerID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(rows, total, hasMore(page, len(rows), total)))
}

// @Summary Get order
// @Description Get one of the customer's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), customerID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
