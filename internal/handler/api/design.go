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

type DesignHandler struct {
	generationCommands commands.GenerationCommands
	designQueries      queries.DesignQueries
}

func NewDesignHandler(generationCommands commands.GenerationCommands, designQueries queries.DesignQueries) *DesignHandler {
	return &DesignHandler{
		generationCommands: generationCommands,
		designQueries:      designQueries,
	}
}

// @Summary Generate design
// @Description Generate artwork from a prompt, charging the free allowance or one credit
// @Tags designs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateDesignRequest true "Generation request"
// @Success 201 {object} resdto.GenerateDesignResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /designs/generate [post]
func (h *DesignHandler) Generate(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.GenerateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.generationCommands.Generate(c.Request.Context(), customerID, commands.GenerateDesignInput{
		Prompt:            req.Prompt,
		StylePreset:       req.StylePreset,
		ProductTypeID:     req.ProductTypeID,
		Size:              req.Size,
		FrameColor:        req.FrameColor,
		ReferenceImageB64: req.ReferenceImageBase64,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnknownProduct):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown product type",
			})
		case errors.Is(err, errs.ErrInvalidVariant):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid size or frame color for this product",
			})
		case errors.Is(err, errs.ErrInvalidDesignInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid design parameters",
			})
		case errors.Is(err, errs.ErrInsufficientCredits):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Insufficient credits",
			})
		case errors.Is(err, errs.ErrGenerationInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A generation is already in progress",
			})
		case errors.Is(err, errs.ErrGenerationFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Image generation failed; any charge was refunded",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGenerateResult(result))
}

// @Summary List designs
// @Description List the customer's designs, newest first
// @Tags designs
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.DesignListResponse
// @Failure 401 {object} map[string]string
// @Router /designs [get]
func (h *DesignHandler) List(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	page := parsePage(c)
	rows, total, err := h.designQueries.ListByCustomer(c.Request.Context(), customerID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDesignViews(rows, total, hasMore(page, len(rows), total)))
}

// @Summary Get design
// @Description Get one of the customer's designs
// @Tags designs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Design ID"
// @Success 200 {object} resdto.DesignResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /designs/{id} [get]
func (h *DesignHandler) Get(c *gin.Context) {
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
			"error": "Invalid design ID format",
		})
		return
	}

	view, err := h.designQueries.GetByID(c.Request.Context(), customerID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Design not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDesignView(view))
}

// @Summary Delete design
// @Description Delete one of the customer's designs
// @Tags designs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Design ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /designs/{id} [delete]
func (h *DesignHandler) Delete(c *gin.Context) {
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
			"error": "Invalid design ID format",
		})
		return
	}

	if err := h.generationCommands.DeleteDesign(c.Request.Context(), customerID, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrDesignNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Design not found",
			})
		case errors.Is(err, errs.ErrDesignHasOrders):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Design has orders and cannot be deleted",
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
