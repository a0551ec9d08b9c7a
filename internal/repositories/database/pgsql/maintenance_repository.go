package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	portsrepo "github.com/mpcoutinho/condo_admin_app/internal/core/ports/repositories"
	"github.com/mpcoutinho/condo_admin_app/internal/models"
)

type PgxMaintenanceRepository struct {
	pool *pgxpool.Pool
}

// newPgxMaintenanceRepository creates a new repository for maintenance data.
func newPgxMaintenanceRepository(pool *pgxpool.Pool) portsrepo.MaintenanceRepositoryFacade {
	return &PgxMaintenanceRepository{pool: pool}
}

// Ensure PgxMaintenanceRepository implements portsrepo.MaintenanceRepositoryFacade
var _ portsrepo.MaintenanceRepositoryFacade = (*PgxMaintenanceRepository)(nil)

func toModelMaintenance(d domain.MaintenanceTask) models.MaintenanceTask {
	return models.MaintenanceTask{
		MaintenanceID: d.MaintenanceID,
		SupplierID:    d.SupplierID,
		Description:   d.Description,
		ScheduledDate: d.ScheduledDate,
		Status:        string(d.Status),
		EstimatedCost: d.EstimatedCost,
		Notes:         d.Notes,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainMaintenance(m models.MaintenanceTask) domain.MaintenanceTask {
	return domain.MaintenanceTask{
		MaintenanceID: m.MaintenanceID,
		SupplierID:    m.SupplierID,
		Description:   m.Description,
		ScheduledDate: m.ScheduledDate,
		Status:        domain.MaintenanceStatus(m.Status),
		EstimatedCost: m.EstimatedCost,
		Notes:         m.Notes,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// SaveMaintenance inserts a new maintenance task.
func (r *PgxMaintenanceRepository) SaveMaintenance(ctx context.Context, task domain.MaintenanceTask) error {
	m := toModelMaintenance(task)

	query := `
		INSERT INTO manutencoes (id, fornecedor_id, descricao, data_agendada, status, custo_estimado, observacoes, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.MaintenanceID,
		nullableString(m.SupplierID),
		m.Description,
		m.ScheduledDate,
		m.Status,
		m.EstimatedCost,
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: maintenance task with ID %s already exists", apperrors.ErrDuplicate, m.MaintenanceID)
			case "23503":
				return fmt.Errorf("%w: supplier %s does not exist", apperrors.ErrValidation, m.SupplierID)
			}
		}
		return fmt.Errorf("failed to save maintenance task %s: %w", m.MaintenanceID, err)
	}
	return nil
}

// FindMaintenanceByID retrieves a maintenance task by its ID.
func (r *PgxMaintenanceRepository) FindMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceTask, error) {
	query := `
		SELECT id, fornecedor_id, descricao, data_agendada::text, status, custo_estimado, observacoes, criado_em, atualizado_em
		FROM manutencoes
		WHERE id = $1;
	`
	var m models.MaintenanceTask
	var supplierID sql.NullString
	err := r.pool.QueryRow(ctx, query, maintenanceID).Scan(
		&m.MaintenanceID,
		&supplierID,
		&m.Description,
		&m.ScheduledDate,
		&m.Status,
		&m.EstimatedCost,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance task by ID %s: %w", maintenanceID, err)
	}

	m.SupplierID = supplierID.String
	d := toDomainMaintenance(m)
	return &d, nil
}

// ListMaintenances retrieves a paginated list of maintenance tasks, soonest first.
func (r *PgxMaintenanceRepository) ListMaintenances(ctx context.Context, limit int, offset int) ([]domain.MaintenanceTask, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, fornecedor_id, descricao, data_agendada::text, status, custo_estimado, observacoes, criado_em, atualizado_em
		FROM manutencoes
		ORDER BY data_agendada ASC, criado_em ASC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.MaintenanceTask{}
	for rows.Next() {
		var m models.MaintenanceTask
		var supplierID sql.NullString
		err := rows.Scan(
			&m.MaintenanceID,
			&supplierID,
			&m.Description,
			&m.ScheduledDate,
			&m.Status,
			&m.EstimatedCost,
			&m.Notes,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance row: %w", err)
		}
		m.SupplierID = supplierID.String
		tasks = append(tasks, toDomainMaintenance(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating maintenance rows: %w", rows.Err())
	}
	return tasks, nil
}

// ListUpcomingMaintenances retrieves active tasks, soonest first, with the
// supplier name joined in. Ties on the scheduled date break by creation
// time so the order is stable.
func (r *PgxMaintenanceRepository) ListUpcomingMaintenances(ctx context.Context, limit int) ([]domain.UpcomingMaintenance, error) {
	if limit <= 0 {
		limit = 5
	}

	query := `
		SELECT m.id, m.fornecedor_id, m.descricao, m.data_agendada::text, m.status, m.custo_estimado, m.observacoes, m.criado_em, m.atualizado_em, f.nome
		FROM manutencoes m
		LEFT JOIN fornecedores f ON f.id = m.fornecedor_id
		WHERE m.status IN ('pendente', 'agendado', 'em_andamento')
		ORDER BY m.data_agendada ASC, m.criado_em ASC
		LIMIT $1;
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming maintenance tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.UpcomingMaintenance{}
	for rows.Next() {
		var m models.MaintenanceTask
		var supplierID, supplierName sql.NullString
		err := rows.Scan(
			&m.MaintenanceID,
			&supplierID,
			&m.Description,
			&m.ScheduledDate,
			&m.Status,
			&m.EstimatedCost,
			&m.Notes,
			&m.CreatedAt,
			&m.UpdatedAt,
			&supplierName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upcoming maintenance row: %w", err)
		}
		m.SupplierID = supplierID.String
		tasks = append(tasks, domain.UpcomingMaintenance{
			MaintenanceTask: toDomainMaintenance(m),
			SupplierName:    supplierName.String,
		})
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating upcoming maintenance rows: %w", rows.Err())
	}
	return tasks, nil
}

// UpdateMaintenance replaces an existing task's editable fields.
func (r *PgxMaintenanceRepository) UpdateMaintenance(ctx context.Context, task domain.MaintenanceTask) error {
	m := toModelMaintenance(task)

	query := `
		UPDATE manutencoes
		SET fornecedor_id = $2, descricao = $3, data_agendada = $4, status = $5, custo_estimado = $6, observacoes = $7, atualizado_em = $8
		WHERE id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.MaintenanceID,
		nullableString(m.SupplierID),
		m.Description,
		m.ScheduledDate,
		m.Status,
		m.EstimatedCost,
		m.Notes,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: supplier %s does not exist", apperrors.ErrValidation, m.SupplierID)
		}
		return fmt.Errorf("failed to update maintenance task %s: %w", m.MaintenanceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMaintenance removes a maintenance task record.
func (r *PgxMaintenanceRepository) DeleteMaintenance(ctx context.Context, maintenanceID string) error {
	query := `DELETE FROM manutencoes WHERE id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, maintenanceID)
	if err != nil {
		return fmt.Errorf("failed to delete maintenance task %s: %w", maintenanceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
