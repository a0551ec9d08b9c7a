package services

import (
	"context"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
)

// ReportingService computes the dashboard aggregates.
type ReportingService interface {
	// MonthlySummary aggregates the payments due in the given month:
	// total due, total paid and a per-day breakdown covering every day
	// of the month.
	MonthlySummary(ctx context.Context, year, month int) (*domain.MonthlySummary, error)

	// DashboardSummary is MonthlySummary plus the registry counters.
	DashboardSummary(ctx context.Context, year, month int) (*domain.DashboardSummary, error)
}
