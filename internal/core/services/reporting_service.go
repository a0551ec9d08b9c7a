package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	portsrepo "github.com/mpcoutinho/condo_admin_app/internal/core/ports/repositories"
	portssvc "github.com/mpcoutinho/condo_admin_app/internal/core/ports/services"
	"github.com/mpcoutinho/condo_admin_app/internal/utils"
	"github.com/shopspring/decimal"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingServiceImpl{reportingRepo: repo}
}

// Ensure reportingServiceImpl implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingServiceImpl)(nil)

// MonthlySummary aggregates the payments due in the reference month.
// Cancelled rows never count toward the total due; only rows with status
// pago count toward the total paid. The daily breakdown always covers
// every day of the month, and rows whose due date cannot be decoded are
// skipped rather than failing the whole report.
func (s *reportingServiceImpl) MonthlySummary(ctx context.Context, year, month int) (*domain.MonthlySummary, error) {
	daysInMonth := utils.DaysInMonth(year, month)
	from := fmt.Sprintf("%04d-%02d-01", year, month)
	to := fmt.Sprintf("%04d-%02d-%02d", year, month, daysInMonth)

	rows, err := s.reportingRepo.ListPaymentsDueInRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for monthly summary",
			slog.Int("year", year), slog.Int("month", month))
		return nil, fmt.Errorf("failed to build monthly summary: %w", err)
	}

	totalDue := decimal.Zero
	totalPaid := decimal.Zero
	perDay := make(map[int]decimal.Decimal)

	for _, row := range rows {
		if row.Status == "cancelado" {
			continue
		}
		totalDue = totalDue.Add(row.Amount)
		if row.Status == domain.PaymentPaid {
			totalPaid = totalPaid.Add(row.Amount)
		}

		d, err := utils.ParseCalendarDate(row.DueDate)
		if err != nil || d.Day < 1 || d.Day > daysInMonth {
			s.LogDebug(ctx, "Skipping payment with undecodable due date",
				slog.String("due_date", row.DueDate))
			continue
		}
		perDay[d.Day] = perDay[d.Day].Add(row.Amount)
	}

	breakdown := make([]domain.DailyTotal, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		total, ok := perDay[day]
		if !ok {
			total = decimal.Zero
		}
		breakdown[day-1] = domain.DailyTotal{Day: day, Total: total}
	}

	return &domain.MonthlySummary{
		Year:           year,
		Month:          month,
		TotalDue:       totalDue,
		TotalPaid:      totalPaid,
		DailyBreakdown: breakdown,
	}, nil
}

// DashboardSummary is the monthly summary plus the registry counters.
func (s *reportingServiceImpl) DashboardSummary(ctx context.Context, year, month int) (*domain.DashboardSummary, error) {
	summary, err := s.MonthlySummary(ctx, year, month)
	if err != nil {
		return nil, err
	}

	suppliers, err := s.reportingRepo.CountActiveSuppliers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count active suppliers")
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	maintenances, err := s.reportingRepo.CountActiveMaintenances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count active maintenance tasks")
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	return &domain.DashboardSummary{
		MonthlySummary:     *summary,
		ActiveSuppliers:    suppliers,
		ActiveMaintenances: maintenances,
	}, nil
}
