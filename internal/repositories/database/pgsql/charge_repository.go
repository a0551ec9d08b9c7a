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

type PgxChargeRepository struct {
	pool *pgxpool.Pool
}

// newPgxChargeRepository creates a new repository for charge data.
func newPgxChargeRepository(pool *pgxpool.Pool) portsrepo.ChargeRepositoryFacade {
	return &PgxChargeRepository{pool: pool}
}

// Ensure PgxChargeRepository implements portsrepo.ChargeRepositoryFacade
var _ portsrepo.ChargeRepositoryFacade = (*PgxChargeRepository)(nil)

func toModelCharge(d domain.Charge) models.Charge {
	return models.Charge{
		ChargeID:       d.ChargeID,
		ResidentID:     d.ResidentID,
		Description:    d.Description,
		Amount:         d.Amount,
		DueDate:        d.DueDate,
		SettlementDate: d.SettlementDate,
		Status:         string(d.Status),
		Notes:          d.Notes,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainCharge(m models.Charge) domain.Charge {
	return domain.Charge{
		ChargeID:       m.ChargeID,
		ResidentID:     m.ResidentID,
		Description:    m.Description,
		Amount:         m.Amount,
		DueDate:        m.DueDate,
		SettlementDate: m.SettlementDate,
		Status:         domain.ChargeStatus(m.Status),
		Notes:          m.Notes,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// nullableDate converts an optional YYYY-MM-DD string for a nullable
// date column.
func nullableDate(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// SaveCharge inserts a new charge.
func (r *PgxChargeRepository) SaveCharge(ctx context.Context, charge domain.Charge) error {
	m := toModelCharge(charge)

	query := `
		INSERT INTO cobrancas (id, morador_id, descricao, valor, data_vencimento, data_pagamento, status, observacoes, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ChargeID,
		m.ResidentID,
		m.Description,
		m.Amount,
		m.DueDate,
		nullableDate(m.SettlementDate),
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: charge with ID %s already exists", apperrors.ErrDuplicate, m.ChargeID)
			case "23503":
				return fmt.Errorf("%w: resident %s does not exist", apperrors.ErrValidation, m.ResidentID)
			}
		}
		return fmt.Errorf("failed to save charge %s: %w", m.ChargeID, err)
	}
	return nil
}

// FindChargeByID retrieves a charge by its ID. Date columns come back as
// text so the stored calendar day is never shifted.
func (r *PgxChargeRepository) FindChargeByID(ctx context.Context, chargeID string) (*domain.Charge, error) {
	query := `
		SELECT id, morador_id, descricao, valor, data_vencimento::text, data_pagamento::text, status, observacoes, criado_em, atualizado_em
		FROM cobrancas
		WHERE id = $1;
	`
	var m models.Charge
	var settlement sql.NullString
	err := r.pool.QueryRow(ctx, query, chargeID).Scan(
		&m.ChargeID,
		&m.ResidentID,
		&m.Description,
		&m.Amount,
		&m.DueDate,
		&settlement,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find charge by ID %s: %w", chargeID, err)
	}

	m.SettlementDate = settlement.String
	d := toDomainCharge(m)
	return &d, nil
}

// ListCharges retrieves a paginated list of charges, most recent due date first.
func (r *PgxChargeRepository) ListCharges(ctx context.Context, limit int, offset int) ([]domain.Charge, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, morador_id, descricao, valor, data_vencimento::text, data_pagamento::text, status, observacoes, criado_em, atualizado_em
		FROM cobrancas
		ORDER BY data_vencimento DESC, criado_em DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query charges: %w", err)
	}
	defer rows.Close()

	charges := []domain.Charge{}
	for rows.Next() {
		var m models.Charge
		var settlement sql.NullString
		err := rows.Scan(
			&m.ChargeID,
			&m.ResidentID,
			&m.Description,
			&m.Amount,
			&m.DueDate,
			&settlement,
			&m.Status,
			&m.Notes,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan charge row: %w", err)
		}
		m.SettlementDate = settlement.String
		charges = append(charges, toDomainCharge(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating charge rows: %w", rows.Err())
	}
	return charges, nil
}

// UpdateCharge replaces an existing charge's editable fields.
func (r *PgxChargeRepository) UpdateCharge(ctx context.Context, charge domain.Charge) error {
	m := toModelCharge(charge)

	query := `
		UPDATE cobrancas
		SET morador_id = $2, descricao = $3, valor = $4, data_vencimento = $5, data_pagamento = $6, status = $7, observacoes = $8, atualizado_em = $9
		WHERE id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.ChargeID,
		m.ResidentID,
		m.Description,
		m.Amount,
		m.DueDate,
		nullableDate(m.SettlementDate),
		m.Status,
		m.Notes,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: resident %s does not exist", apperrors.ErrValidation, m.ResidentID)
		}
		return fmt.Errorf("failed to update charge %s: %w", m.ChargeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCharge removes a charge record.
func (r *PgxChargeRepository) DeleteCharge(ctx context.Context, chargeID string) error {
	query := `DELETE FROM cobrancas WHERE id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, chargeID)
	if err != nil {
		return fmt.Errorf("failed to delete charge %s: %w", chargeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
