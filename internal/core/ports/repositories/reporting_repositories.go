package repositories

import (
	"context"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
)

// ReportingRepository defines the read-only queries behind the dashboard.
type ReportingRepository interface {
	// ListPaymentsDueInRange retrieves the payment rows whose due date falls
	// within [from, to], both YYYY-MM-DD, inclusive on both ends.
	ListPaymentsDueInRange(ctx context.Context, from, to string) ([]domain.PaymentDueRow, error)

	// CountActiveSuppliers counts suppliers with status ativo.
	CountActiveSuppliers(ctx context.Context) (int64, error)

	// CountActiveMaintenances counts tasks with status pendente, agendado or em_andamento.
	CountActiveMaintenances(ctx context.Context) (int64, error)
}
