package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	portsrepo "github.com/mpcoutinho/condo_admin_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates the read-only repository behind the dashboard.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// ListPaymentsDueInRange retrieves the lean payment projection for the
// monthly aggregation. Both bounds are inclusive YYYY-MM-DD strings.
func (r *PgxReportingRepository) ListPaymentsDueInRange(ctx context.Context, from, to string) ([]domain.PaymentDueRow, error) {
	query := `
		SELECT valor, status, data_vencimento::text
		FROM pagamentos
		WHERE data_vencimento BETWEEN $1 AND $2;
	`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments due between %s and %s: %w", from, to, err)
	}
	defer rows.Close()

	result := []domain.PaymentDueRow{}
	for rows.Next() {
		var row domain.PaymentDueRow
		if err := rows.Scan(&row.Amount, &row.Status, &row.DueDate); err != nil {
			return nil, fmt.Errorf("failed to scan payment due row: %w", err)
		}
		result = append(result, row)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment due rows: %w", rows.Err())
	}
	return result, nil
}

// CountActiveSuppliers counts suppliers with status ativo.
func (r *PgxReportingRepository) CountActiveSuppliers(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM fornecedores WHERE status = 'ativo';`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active suppliers: %w", err)
	}
	return count, nil
}

// CountActiveMaintenances counts tasks that are still in flight.
func (r *PgxReportingRepository) CountActiveMaintenances(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM manutencoes WHERE status IN ('pendente', 'agendado', 'em_andamento');`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active maintenance tasks: %w", err)
	}
	return count, nil
}
