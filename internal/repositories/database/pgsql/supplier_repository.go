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

type PgxSupplierRepository struct {
	pool *pgxpool.Pool
}

// newPgxSupplierRepository creates a new repository for supplier data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{pool: pool}
}

// Ensure PgxSupplierRepository implements portsrepo.SupplierRepositoryFacade
var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func toModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:  d.SupplierID,
		Name:        d.Name,
		Document:    d.Document,
		ServiceType: d.ServiceType,
		Phone:       d.Phone,
		Email:       d.Email,
		Address:     d.Address,
		Status:      string(d.Status),
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:  m.SupplierID,
		Name:        m.Name,
		Document:    m.Document,
		ServiceType: m.ServiceType,
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		Status:      domain.RegistryStatus(m.Status),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// SaveSupplier inserts a new supplier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := toModelSupplier(supplier)

	query := `
		INSERT INTO fornecedores (id, nome, documento, tipo_servico, telefone, email, endereco, status, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.SupplierID,
		m.Name,
		m.Document,
		m.ServiceType,
		m.Phone,
		m.Email,
		m.Address,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: supplier with ID %s already exists", apperrors.ErrDuplicate, m.SupplierID)
		}
		return fmt.Errorf("failed to save supplier %s: %w", m.SupplierID, err)
	}
	return nil
}

// FindSupplierByID retrieves a supplier by its ID.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `
		SELECT id, nome, documento, tipo_servico, telefone, email, endereco, status, criado_em, atualizado_em
		FROM fornecedores
		WHERE id = $1;
	`
	var m models.Supplier
	err := r.pool.QueryRow(ctx, query, supplierID).Scan(
		&m.SupplierID,
		&m.Name,
		&m.Document,
		&m.ServiceType,
		&m.Phone,
		&m.Email,
		&m.Address,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}

	d := toDomainSupplier(m)
	return &d, nil
}

// ListSuppliers retrieves a paginated list of suppliers ordered by name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, nome, documento, tipo_servico, telefone, email, endereco, status, criado_em, atualizado_em
		FROM fornecedores
		ORDER BY nome
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		var m models.Supplier
		err := rows.Scan(
			&m.SupplierID,
			&m.Name,
			&m.Document,
			&m.ServiceType,
			&m.Phone,
			&m.Email,
			&m.Address,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, toDomainSupplier(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", rows.Err())
	}
	return suppliers, nil
}

// UpdateSupplier replaces an existing supplier's editable fields.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := toModelSupplier(supplier)

	query := `
		UPDATE fornecedores
		SET nome = $2, documento = $3, tipo_servico = $4, telefone = $5, email = $6, endereco = $7, status = $8, atualizado_em = $9
		WHERE id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.SupplierID,
		m.Name,
		m.Document,
		m.ServiceType,
		m.Phone,
		m.Email,
		m.Address,
		m.Status,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", m.SupplierID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSupplier removes a supplier. Payments and maintenance tasks
// referencing it keep their rows with the reference cleared.
func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	query := `DELETE FROM fornecedores WHERE id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
