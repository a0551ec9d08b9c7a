package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
	portssvc "github.com/mpcoutinho/condo_admin_app/internal/core/ports/services"
	"github.com/mpcoutinho/condo_admin_app/internal/dto"
	"github.com/mpcoutinho/condo_admin_app/internal/middleware"
)

// residentHandler handles HTTP requests related to residents.
type residentHandler struct {
	residentService portssvc.ResidentSvcFacade
}

// registerResidentRoutes registers routes related to residents.
func registerResidentRoutes(rg *gin.RouterGroup, residentService portssvc.ResidentSvcFacade) {
	h := &residentHandler{residentService: residentService}

	residents := rg.Group("/moradores")
	{
		residents.POST("", h.createResident)
		residents.GET("", h.listResidents)
		residents.GET("/:id", h.getResident)
		residents.PUT("/:id", h.updateResident)
		residents.DELETE("/:id", h.deleteResident)
	}
}

// createResident godoc
// @Summary Create a new resident
// @Description Registers a resident (morador) in the condominium
// @Tags moradores
// @Accept  json
// @Produce  json
// @Param   morador body dto.ResidentRequest true "Resident details"
// @Success 201 {object} dto.ResidentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create resident"
// @Router /moradores [post]
func (h *residentHandler) createResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createResident", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resident, err := h.residentService.CreateResident(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create resident")
		return
	}

	c.JSON(http.StatusCreated, dto.ToResidentResponse(resident))
}

// getResident godoc
// @Summary Get a resident by ID
// @Tags moradores
// @Produce  json
// @Param   id path string true "Resident ID"
// @Success 200 {object} dto.ResidentResponse
// @Failure 404 {object} map[string]string "Resident not found"
// @Failure 500 {object} map[string]string "Failed to retrieve resident"
// @Router /moradores/{id} [get]
func (h *residentHandler) getResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID := c.Param("id")

	resident, err := h.residentService.GetResidentByID(c.Request.Context(), residentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve resident")
		return
	}

	c.JSON(http.StatusOK, dto.ToResidentResponse(resident))
}

// listResidents godoc
// @Summary List residents
// @Tags moradores
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListResidentsResponse
// @Failure 500 {object} map[string]string "Failed to list residents"
// @Router /moradores [get]
func (h *residentHandler) listResidents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid pagination params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	residents, err := h.residentService.ListResidents(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list residents")
		return
	}

	resp := dto.ListResidentsResponse{Residents: make([]dto.ResidentResponse, len(residents))}
	for i := range residents {
		resp.Residents[i] = dto.ToResidentResponse(&residents[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateResident godoc
// @Summary Update a resident
// @Tags moradores
// @Accept  json
// @Produce  json
// @Param   id path string true "Resident ID"
// @Param   morador body dto.ResidentRequest true "Resident details"
// @Success 200 {object} dto.ResidentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Resident not found"
// @Failure 500 {object} map[string]string "Failed to update resident"
// @Router /moradores/{id} [put]
func (h *residentHandler) updateResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID := c.Param("id")

	var req dto.ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateResident", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resident, err := h.residentService.UpdateResident(c.Request.Context(), residentID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update resident")
		return
	}

	c.JSON(http.StatusOK, dto.ToResidentResponse(resident))
}

// deleteResident godoc
// @Summary Delete a resident
// @Tags moradores
// @Param   id path string true "Resident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Resident still referenced by charges"
// @Failure 404 {object} map[string]string "Resident not found"
// @Failure 500 {object} map[string]string "Failed to delete resident"
// @Router /moradores/{id} [delete]
func (h *residentHandler) deleteResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID := c.Param("id")

	if err := h.residentService.DeleteResident(c.Request.Context(), residentID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete resident")
		return
	}

	c.Status(http.StatusNoContent)
}

// respondServiceError maps service errors to HTTP responses. Validation
// and malformed dates map to 400, missing resources to 404, duplicates
// to 409 and everything else to 500 with a generic message.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidDateFormat):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
