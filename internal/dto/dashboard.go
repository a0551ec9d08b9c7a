package dto

import (
	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	"github.com/mpcoutinho/condo_admin_app/internal/utils"
	"github.com/shopspring/decimal"
)

// DashboardParams selects the reference month; both default to the
// current month when absent.
type DashboardParams struct {
	Year  int `form:"ano"`
	Month int `form:"mes"`
}

// DailyTotalResponse is one bar of the daily expenses chart.
type DailyTotalResponse struct {
	Day   int             `json:"dia"`
	Total decimal.Decimal `json:"total"`
}

// DashboardResponse aggregates everything the dashboard screen shows:
// monthly totals (pre-formatted for display as well), the per-day
// breakdown, registry counters and the next scheduled maintenances.
type DashboardResponse struct {
	Year               int                           `json:"ano"`
	Month              int                           `json:"mes"`
	TotalDue           decimal.Decimal               `json:"total_a_pagar"`
	TotalPaid          decimal.Decimal               `json:"total_pago"`
	TotalDueDisplay    string                        `json:"total_a_pagar_exibicao"`
	TotalPaidDisplay   string                        `json:"total_pago_exibicao"`
	DailyBreakdown     []DailyTotalResponse          `json:"despesas_diarias"`
	ActiveSuppliers    int64                         `json:"fornecedores_ativos"`
	ActiveMaintenances int64                         `json:"manutencoes_ativas"`
	NextMaintenances   []UpcomingMaintenanceResponse `json:"proximas_manutencoes"`
}

// ToDashboardResponse assembles the dashboard payload from the summary
// and the upcoming maintenance list.
func ToDashboardResponse(s *domain.DashboardSummary, next []domain.UpcomingMaintenance) DashboardResponse {
	daily := make([]DailyTotalResponse, len(s.DailyBreakdown))
	for i, d := range s.DailyBreakdown {
		daily[i] = DailyTotalResponse{Day: d.Day, Total: d.Total}
	}

	return DashboardResponse{
		Year:               s.Year,
		Month:              s.Month,
		TotalDue:           s.TotalDue,
		TotalPaid:          s.TotalPaid,
		TotalDueDisplay:    utils.FormatBRL(s.TotalDue),
		TotalPaidDisplay:   utils.FormatBRL(s.TotalPaid),
		DailyBreakdown:     daily,
		ActiveSuppliers:    s.ActiveSuppliers,
		ActiveMaintenances: s.ActiveMaintenances,
		NextMaintenances:   ToUpcomingMaintenanceResponses(next),
	}
}

// ToUpcomingMaintenanceResponses converts resolved upcoming tasks for display.
func ToUpcomingMaintenanceResponses(tasks []domain.UpcomingMaintenance) []UpcomingMaintenanceResponse {
	res := make([]UpcomingMaintenanceResponse, len(tasks))
	for i, t := range tasks {
		res[i] = UpcomingMaintenanceResponse{
			MaintenanceResponse:  ToMaintenanceResponse(&t.MaintenanceTask),
			SupplierName:         t.SupplierName,
			ScheduledDateDisplay: utils.DisplayDate(t.ScheduledDate),
		}
	}
	return res
}
