package domain

import "github.com/shopspring/decimal"

// PaymentDueRow is the lean payment projection used by the monthly
// aggregation: amount, status and the raw due date string.
type PaymentDueRow struct {
	Amount  decimal.Decimal
	Status  PaymentStatus
	DueDate string
}

// DailyTotal is the amount due on a single day of the month.
type DailyTotal struct {
	Day   int             `json:"dia"`
	Total decimal.Decimal `json:"total"`
}

// MonthlySummary aggregates the payments due in a reference month.
// DailyBreakdown always has exactly daysInMonth entries, day ascending,
// zero for days without payments.
type MonthlySummary struct {
	Year           int             `json:"ano"`
	Month          int             `json:"mes"`
	TotalDue       decimal.Decimal `json:"total_a_pagar"`
	TotalPaid      decimal.Decimal `json:"total_pago"`
	DailyBreakdown []DailyTotal    `json:"despesas_diarias"`
}

// DashboardSummary is the monthly summary plus the registry counters
// shown on the dashboard cards.
type DashboardSummary struct {
	MonthlySummary
	ActiveSuppliers    int64 `json:"fornecedores_ativos"`
	ActiveMaintenances int64 `json:"manutencoes_ativas"`
}

// UpcomingMaintenance is a maintenance task with its supplier name
// resolved for display.
type UpcomingMaintenance struct {
	MaintenanceTask
	SupplierName string `json:"fornecedor_nome"`
}

// NoSupplierLabel is attached when a task has no resolvable supplier.
const NoSupplierLabel = "Sem fornecedor"
