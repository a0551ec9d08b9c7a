package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mpcoutinho/condo_admin_app/internal/core/ports/services"
	"github.com/mpcoutinho/condo_admin_app/internal/dto"
	"github.com/mpcoutinho/condo_admin_app/internal/middleware"
)

// chargeHandler handles HTTP requests related to charges.
type chargeHandler struct {
	chargeService portssvc.ChargeSvcFacade
}

// registerChargeRoutes registers routes related to charges.
func registerChargeRoutes(rg *gin.RouterGroup, chargeService portssvc.ChargeSvcFacade) {
	h := &chargeHandler{chargeService: chargeService}

	charges := rg.Group("/cobrancas")
	{
		charges.POST("", h.createCharge)
		charges.GET("", h.listCharges)
		charges.GET("/:id", h.getCharge)
		charges.PUT("/:id", h.updateCharge)
		charges.DELETE("/:id", h.deleteCharge)
		charges.GET("/:id/mensagem", h.reminderMessage)
	}
}

// createCharge godoc
// @Summary Create a new charge
// @Description Issues a charge (cobrança) against a resident
// @Tags cobrancas
// @Accept  json
// @Produce  json
// @Param   cobranca body dto.ChargeRequest true "Charge details"
// @Success 201 {object} dto.ChargeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create charge"
// @Router /cobrancas [post]
func (h *chargeHandler) createCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	charge, err := h.chargeService.CreateCharge(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create charge")
		return
	}

	c.JSON(http.StatusCreated, dto.ToChargeResponse(charge))
}

// getCharge godoc
// @Summary Get a charge by ID
// @Tags cobrancas
// @Produce  json
// @Param   id path string true "Charge ID"
// @Success 200 {object} dto.ChargeResponse
// @Failure 404 {object} map[string]string "Charge not found"
// @Failure 500 {object} map[string]string "Failed to retrieve charge"
// @Router /cobrancas/{id} [get]
func (h *chargeHandler) getCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("id")

	charge, err := h.chargeService.GetChargeByID(c.Request.Context(), chargeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve charge")
		return
	}

	c.JSON(http.StatusOK, dto.ToChargeResponse(charge))
}

// listCharges godoc
// @Summary List charges
// @Tags cobrancas
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListChargesResponse
// @Failure 500 {object} map[string]string "Failed to list charges"
// @Router /cobrancas [get]
func (h *chargeHandler) listCharges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid pagination params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	charges, err := h.chargeService.ListCharges(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list charges")
		return
	}

	resp := dto.ListChargesResponse{Charges: make([]dto.ChargeResponse, len(charges))}
	for i := range charges {
		resp.Charges[i] = dto.ToChargeResponse(&charges[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateCharge godoc
// @Summary Update a charge
// @Tags cobrancas
// @Accept  json
// @Produce  json
// @Param   id path string true "Charge ID"
// @Param   cobranca body dto.ChargeRequest true "Charge details"
// @Success 200 {object} dto.ChargeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Charge not found"
// @Failure 500 {object} map[string]string "Failed to update charge"
// @Router /cobrancas/{id} [put]
func (h *chargeHandler) updateCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("id")

	var req dto.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateCharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	charge, err := h.chargeService.UpdateCharge(c.Request.Context(), chargeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update charge")
		return
	}

	c.JSON(http.StatusOK, dto.ToChargeResponse(charge))
}

// deleteCharge godoc
// @Summary Delete a charge
// @Tags cobrancas
// @Param   id path string true "Charge ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Charge not found"
// @Failure 500 {object} map[string]string "Failed to delete charge"
// @Router /cobrancas/{id} [delete]
func (h *chargeHandler) deleteCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("id")

	if err := h.chargeService.DeleteCharge(c.Request.Context(), chargeID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete charge")
		return
	}

	c.Status(http.StatusNoContent)
}

// reminderMessage godoc
// @Summary Render the collection notice for a charge
// @Description Builds the pending-charge notice text with the resident's name, due date and amount
// @Tags cobrancas
// @Produce  json
// @Param   id path string true "Charge ID"
// @Success 200 {object} dto.ReminderMessageResponse
// @Failure 404 {object} map[string]string "Charge or resident not found"
// @Failure 500 {object} map[string]string "Failed to render notice"
// @Router /cobrancas/{id}/mensagem [get]
func (h *chargeHandler) reminderMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("id")

	message, err := h.chargeService.ReminderMessage(c.Request.Context(), chargeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to render notice")
		return
	}

	c.JSON(http.StatusOK, dto.ReminderMessageResponse{Message: message})
}
