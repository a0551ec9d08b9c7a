package services

import (
	"context"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	"github.com/mpcoutinho/condo_admin_app/internal/dto"
)

// ResidentReaderSvc defines read operations for resident data
type ResidentReaderSvc interface {
	// GetResidentByID retrieves a specific resident by its unique identifier.
	GetResidentByID(ctx context.Context, residentID string) (*domain.Resident, error)

	// ListResidents retrieves a paginated list of residents.
	ListResidents(ctx context.Context, limit int, offset int) ([]domain.Resident, error)
}

// ResidentWriterSvc defines write operations for resident data
type ResidentWriterSvc interface {
	// CreateResident validates and persists a new resident.
	CreateResident(ctx context.Context, req dto.ResidentRequest) (*domain.Resident, error)

	// UpdateResident validates and replaces an existing resident record.
	UpdateResident(ctx context.Context, residentID string, req dto.ResidentRequest) (*domain.Resident, error)

	// DeleteResident removes a resident record.
	DeleteResident(ctx context.Context, residentID string) error
}

// ResidentSvcFacade combines all resident-related service interfaces
type ResidentSvcFacade interface {
	ResidentReaderSvc
	ResidentWriterSvc
}
