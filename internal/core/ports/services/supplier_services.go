package services

import (
	"context"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	"github.com/mpcoutinho/condo_admin_app/internal/dto"
)

// SupplierReaderSvc defines read operations for supplier data
type SupplierReaderSvc interface {
	// GetSupplierByID retrieves a specific supplier by its unique identifier.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated list of suppliers.
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

// SupplierWriterSvc defines write operations for supplier data
type SupplierWriterSvc interface {
	// CreateSupplier validates and persists a new supplier.
	CreateSupplier(ctx context.Context, req dto.SupplierRequest) (*domain.Supplier, error)

	// UpdateSupplier validates and replaces an existing supplier record.
	UpdateSupplier(ctx context.Context, supplierID string, req dto.SupplierRequest) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier record.
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierSvcFacade combines all supplier-related service interfaces
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}
