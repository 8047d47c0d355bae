package api

import (
	"errors"
	"io"
	"net/http"

	"printcanvas/internal/infra/printify"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	orderCommands commands.OrderCommands
}

func NewWebhookHandler(orderCommands commands.OrderCommands) *WebhookHandler {
	return &WebhookHandler{orderCommands: orderCommands}
}

// @Summary Print provider webhook
// @Description Receive order status updates from the print provider
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /webhooks/printify [post]
func (h *WebhookHandler) Printify(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unable to read request body",
		})
		return
	}

	signature := c.GetHeader(printify.SignatureHeader)
	if err := h.orderCommands.HandleProviderEvent(c.Request.Context(), signature, body); err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid signature",
			})
		case errors.Is(err, errs.ErrInvalidWebhook):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid webhook payload",
			})
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
