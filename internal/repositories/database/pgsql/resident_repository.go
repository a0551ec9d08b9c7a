package pgsql

import (
	"context"
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

type PgxResidentRepository struct {
	pool *pgxpool.Pool
}

// newPgxResidentRepository creates a new repository for resident data.
func newPgxResidentRepository(pool *pgxpool.Pool) portsrepo.ResidentRepositoryFacade {
	return &PgxResidentRepository{pool: pool}
}

// Ensure PgxResidentRepository implements portsrepo.ResidentRepositoryFacade
var _ portsrepo.ResidentRepositoryFacade = (*PgxResidentRepository)(nil)

func toModelResident(d domain.Resident) models.Resident {
	return models.Resident{
		ResidentID: d.ResidentID,
		Name:       d.Name,
		CPF:        d.CPF,
		Email:      d.Email,
		Phone:      d.Phone,
		Unit:       d.Unit,
		Status:     string(d.Status),
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainResident(m models.Resident) domain.Resident {
	return domain.Resident{
		ResidentID: m.ResidentID,
		Name:       m.Name,
		CPF:        m.CPF,
		Email:      m.Email,
		Phone:      m.Phone,
		Unit:       m.Unit,
		Status:     domain.RegistryStatus(m.Status),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// SaveResident inserts a new resident.
func (r *PgxResidentRepository) SaveResident(ctx context.Context, resident domain.Resident) error {
	m := toModelResident(resident)

	query := `
		INSERT INTO moradores (id, nome, cpf, email, telefone, unidade, status, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ResidentID,
		m.Name,
		m.CPF,
		m.Email,
		m.Phone,
		m.Unit,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: resident with ID %s already exists", apperrors.ErrDuplicate, m.ResidentID)
		}
		return fmt.Errorf("failed to save resident %s: %w", m.ResidentID, err)
	}
	return nil
}

// FindResidentByID retrieves a resident by its ID.
func (r *PgxResidentRepository) FindResidentByID(ctx context.Context, residentID string) (*domain.Resident, error) {
	query := `
		SELECT id, nome, cpf, email, telefone, unidade, status, criado_em, atualizado_em
		FROM moradores
		WHERE id = $1;
	`
	var m models.Resident
	err := r.pool.QueryRow(ctx, query, residentID).Scan(
		&m.ResidentID,
		&m.Name,
		&m.CPF,
		&m.Email,
		&m.Phone,
		&m.Unit,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resident by ID %s: %w", residentID, err)
	}

	d := toDomainResident(m)
	return &d, nil
}

// ListResidents retrieves a paginated list of residents ordered by name.
func (r *PgxResidentRepository) ListResidents(ctx context.Context, limit int, offset int) ([]domain.Resident, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, nome, cpf, email, telefone, unidade, status, criado_em, atualizado_em
		FROM moradores
		ORDER BY nome
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query residents: %w", err)
	}
	defer rows.Close()

	residents := []domain.Resident{}
	for rows.Next() {
		var m models.Resident
		err := rows.Scan(
			&m.ResidentID,
			&m.Name,
			&m.CPF,
			&m.Email,
			&m.Phone,
			&m.Unit,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resident row: %w", err)
		}
		residents = append(residents, toDomainResident(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating resident rows: %w", rows.Err())
	}
	return residents, nil
}

// UpdateResident replaces an existing resident's editable fields.
func (r *PgxResidentRepository) UpdateResident(ctx context.Context, resident domain.Resident) error {
	m := toModelResident(resident)

	query := `
		UPDATE moradores
		SET nome = $2, cpf = $3, email = $4, telefone = $5, unidade = $6, status = $7, atualizado_em = $8
		WHERE id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.ResidentID,
		m.Name,
		m.CPF,
		m.Email,
		m.Phone,
		m.Unit,
		m.Status,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update resident %s: %w", m.ResidentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteResident removes a resident. Charges referencing the resident
// block the delete at the database level.
func (r *PgxResidentRepository) DeleteResident(ctx context.Context, residentID string) error {
	query := `DELETE FROM moradores WHERE id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, residentID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: resident %s still has charges", apperrors.ErrValidation, residentID)
		}
		return fmt.Errorf("failed to delete resident %s: %w", residentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
