package repositories

import (
	"context"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
)

// ResidentReader defines read operations for resident data
type ResidentReader interface {
	// FindResidentByID retrieves a specific resident by its unique identifier.
	FindResidentByID(ctx context.Context, residentID string) (*domain.Resident, error)

	// ListResidents retrieves a paginated list of residents ordered by name.
	ListResidents(ctx context.Context, limit int, offset int) ([]domain.Resident, error)
}

// ResidentWriter defines write operations for resident data
type ResidentWriter interface {
	// SaveResident persists a new resident.
	SaveResident(ctx context.Context, resident domain.Resident) error

	// UpdateResident replaces an existing resident's editable fields.
	UpdateResident(ctx context.Context, resident domain.Resident) error

	// DeleteResident removes a resident record.
	DeleteResident(ctx context.Context, residentID string) error
}

// ResidentRepositoryFacade combines all resident repository interfaces
type ResidentRepositoryFacade interface {
	ResidentReader
	ResidentWriter
}
