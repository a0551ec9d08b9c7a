package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mpcoutinho/condo_admin_app/internal/core/ports/services"
	"github.com/mpcoutinho/condo_admin_app/internal/dto"
	"github.com/mpcoutinho/condo_admin_app/internal/middleware"
)

// maintenanceHandler handles HTTP requests related to maintenance tasks.
type maintenanceHandler struct {
	maintenanceService portssvc.MaintenanceSvcFacade
}

// registerMaintenanceRoutes registers routes related to maintenance tasks.
func registerMaintenanceRoutes(rg *gin.RouterGroup, maintenanceService portssvc.MaintenanceSvcFacade) {
	h := &maintenanceHandler{maintenanceService: maintenanceService}

	maintenances := rg.Group("/manutencoes")
	{
		maintenances.POST("", h.createMaintenance)
		maintenances.GET("", h.listMaintenances)
		maintenances.GET("/proximas", h.nextMaintenances)
		maintenances.GET("/:id", h.getMaintenance)
		maintenances.PUT("/:id", h.updateMaintenance)
		maintenances.DELETE("/:id", h.deleteMaintenance)
	}
}

// createMaintenance godoc
// @Summary Create a new maintenance task
// @Description Schedules a maintenance task (manutenção), optionally linked to a supplier
// @Tags manutencoes
// @Accept  json
// @Produce  json
// @Param   manutencao body dto.MaintenanceRequest true "Maintenance details"
// @Success 201 {object} dto.MaintenanceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create maintenance task"
// @Router /manutencoes [post]
func (h *maintenanceHandler) createMaintenance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createMaintenance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	task, err := h.maintenanceService.CreateMaintenance(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create maintenance task")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMaintenanceResponse(task))
}

// getMaintenance godoc
// @Summary Get a maintenance task by ID
// @Tags manutencoes
// @Produce  json
// @Param   id path string true "Maintenance ID"
// @Success 200 {object} dto.MaintenanceResponse
// @Failure 404 {object} map[string]string "Maintenance task not found"
// @Failure 500 {object} map[string]string "Failed to retrieve maintenance task"
// @Router /manutencoes/{id} [get]
func (h *maintenanceHandler) getMaintenance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	maintenanceID := c.Param("id")

	task, err := h.maintenanceService.GetMaintenanceByID(c.Request.Context(), maintenanceID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve maintenance task")
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceResponse(task))
}

// listMaintenances godoc
// @Summary List maintenance tasks
// @Tags manutencoes
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListMaintenancesResponse
// @Failure 500 {object} map[string]string "Failed to list maintenance tasks"
// @Router /manutencoes [get]
func (h *maintenanceHandler) listMaintenances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid pagination params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	tasks, err := h.maintenanceService.ListMaintenances(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list maintenance tasks")
		return
	}

	resp := dto.ListMaintenancesResponse{Maintenances: make([]dto.MaintenanceResponse, len(tasks))}
	for i := range tasks {
		resp.Maintenances[i] = dto.ToMaintenanceResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, resp)
}

// nextMaintenances godoc
// @Summary List the next upcoming maintenance tasks
// @Description Active tasks (pendente, agendado, em_andamento) soonest first, with supplier names resolved
// @Tags manutencoes
// @Produce  json
// @Param   limite query int false "Maximum number of tasks" default(5)
// @Success 200 {array} dto.UpcomingMaintenanceResponse
// @Failure 500 {object} map[string]string "Failed to list upcoming maintenance tasks"
// @Router /manutencoes/proximas [get]
func (h *maintenanceHandler) nextMaintenances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListUpcomingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid limit param", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	tasks, err := h.maintenanceService.NextMaintenances(c.Request.Context(), params.Limit)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list upcoming maintenance tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToUpcomingMaintenanceResponses(tasks))
}

// updateMaintenance godoc
// @Summary Update a maintenance task
// @Tags manutencoes
// @Accept  json
// @Produce  json
// @Param   id path string true "Maintenance ID"
// @Param   manutencao body dto.MaintenanceRequest true "Maintenance details"
// @Success 200 {object} dto.MaintenanceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Maintenance task not found"
// @Failure 500 {object} map[string]string "Failed to update maintenance task"
// @Router /manutencoes/{id} [put]
func (h *maintenanceHandler) updateMaintenance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	maintenanceID := c.Param("id")

	var req dto.MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateMaintenance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	task, err := h.maintenanceService.UpdateMaintenance(c.Request.Context(), maintenanceID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update maintenance task")
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceResponse(task))
}

// deleteMaintenance godoc
// @Summary Delete a maintenance task
// @Tags manutencoes
// @Param   id path string true "Maintenance ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Maintenance task not found"
// @Failure 500 {object} map[string]string "Failed to delete maintenance task"
// @Router /manutencoes/{id} [delete]
func (h *maintenanceHandler) deleteMaintenance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	maintenanceID := c.Param("id")

	if err := h.maintenanceService.DeleteMaintenance(c.Request.Context(), maintenanceID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete maintenance task")
		return
	}

	c.Status(http.StatusNoContent)
}
