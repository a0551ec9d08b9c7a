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

type PgxPaymentRepository struct {
	pool *pgxpool.Pool
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{pool: pool}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func toModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:      d.PaymentID,
		SupplierID:     d.SupplierID,
		Description:    d.Description,
		Amount:         d.Amount,
		DueDate:        d.DueDate,
		SettlementDate: d.SettlementDate,
		Method:         string(d.Method),
		Status:         string(d.Status),
		Notes:          d.Notes,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:      m.PaymentID,
		SupplierID:     m.SupplierID,
		Description:    m.Description,
		Amount:         m.Amount,
		DueDate:        m.DueDate,
		SettlementDate: m.SettlementDate,
		Method:         domain.PaymentMethod(m.Method),
		Status:         domain.PaymentStatus(m.Status),
		Notes:          m.Notes,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// SavePayment inserts a new payment.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := toModelPayment(payment)

	query := `
		INSERT INTO pagamentos (id, fornecedor_id, descricao, valor, data_vencimento, data_pagamento, forma_pagamento, status, observacoes, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PaymentID,
		nullableString(m.SupplierID),
		m.Description,
		m.Amount,
		m.DueDate,
		nullableDate(m.SettlementDate),
		nullableString(m.Method),
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
				return fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, m.PaymentID)
			case "23503":
				return fmt.Errorf("%w: supplier %s does not exist", apperrors.ErrValidation, m.SupplierID)
			}
		}
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `
		SELECT id, fornecedor_id, descricao, valor, data_vencimento::text, data_pagamento::text, forma_pagamento, status, observacoes, criado_em, atualizado_em
		FROM pagamentos
		WHERE id = $1;
	`
	var m models.Payment
	var supplierID, settlement, method sql.NullString
	err := r.pool.QueryRow(ctx, query, paymentID).Scan(
		&m.PaymentID,
		&supplierID,
		&m.Description,
		&m.Amount,
		&m.DueDate,
		&settlement,
		&method,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}

	m.SupplierID = supplierID.String
	m.SettlementDate = settlement.String
	m.Method = method.String
	d := toDomainPayment(m)
	return &d, nil
}

// ListPayments retrieves a paginated list of payments, most recent due date first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, limit int, offset int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, fornecedor_id, descricao, valor, data_vencimento::text, data_pagamento::text, forma_pagamento, status, observacoes, criado_em, atualizado_em
		FROM pagamentos
		ORDER BY data_vencimento DESC, criado_em DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var m models.Payment
		var supplierID, settlement, method sql.NullString
		err := rows.Scan(
			&m.PaymentID,
			&supplierID,
			&m.Description,
			&m.Amount,
			&m.DueDate,
			&settlement,
			&method,
			&m.Status,
			&m.Notes,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		m.SupplierID = supplierID.String
		m.SettlementDate = settlement.String
		m.Method = method.String
		payments = append(payments, toDomainPayment(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return payments, nil
}

// UpdatePayment replaces an existing payment's editable fields.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := toModelPayment(payment)

	query := `
		UPDATE pagamentos
		SET fornecedor_id = $2, descricao = $3, valor = $4, data_vencimento = $5, data_pagamento = $6, forma_pagamento = $7, status = $8, observacoes = $9, atualizado_em = $10
		WHERE id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.PaymentID,
		nullableString(m.SupplierID),
		m.Description,
		m.Amount,
		m.DueDate,
		nullableDate(m.SettlementDate),
		nullableString(m.Method),
		m.Status,
		m.Notes,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: supplier %s does not exist", apperrors.ErrValidation, m.SupplierID)
		}
		return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePayment removes a payment record.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	query := `DELETE FROM pagamentos WHERE id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
