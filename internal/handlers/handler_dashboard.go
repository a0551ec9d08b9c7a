package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mpcoutinho/condo_admin_app/internal/core/ports/services"
	"github.com/mpcoutinho/condo_admin_app/internal/dto"
	"github.com/mpcoutinho/condo_admin_app/internal/middleware"
)

// dashboardHandler handles the aggregated dashboard endpoint.
type dashboardHandler struct {
	reportingService   portssvc.ReportingService
	maintenanceService portssvc.MaintenanceReaderSvc
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, maintenanceService portssvc.MaintenanceReaderSvc) {
	h := &dashboardHandler{
		reportingService:   reportingService,
		maintenanceService: maintenanceService,
	}

	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get the monthly dashboard
// @Description Monthly totals, per-day expense breakdown, registry counters and upcoming maintenances
// @Tags dashboard
// @Produce  json
// @Param   ano query int false "Reference year (defaults to current)"
// @Param   mes query int false "Reference month 1-12 (defaults to current)"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid dashboard params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dashboard parameters"})
		return
	}

	now := time.Now()
	if params.Year == 0 {
		params.Year = now.Year()
	}
	if params.Month == 0 {
		params.Month = int(now.Month())
	}
	if params.Month < 1 || params.Month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be between 1 and 12"})
		return
	}

	summary, err := h.reportingService.DashboardSummary(c.Request.Context(), params.Year, params.Month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build dashboard")
		return
	}

	next, err := h.maintenanceService.NextMaintenances(c.Request.Context(), 0)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary, next))
}
