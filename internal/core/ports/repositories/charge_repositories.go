package repositories

import (
	"context"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
)

// ChargeReader defines read operations for charge data
type ChargeReader interface {
	// FindChargeByID retrieves a specific charge by its unique identifier.
	FindChargeByID(ctx context.Context, chargeID string) (*domain.Charge, error)

	// ListCharges retrieves a paginated list of charges, most recent due date first.
	ListCharges(ctx context.Context, limit int, offset int) ([]domain.Charge, error)
}

// ChargeWriter defines write operations for charge data
type ChargeWriter interface {
	// SaveCharge persists a new charge.
	SaveCharge(ctx context.Context, charge domain.Charge) error

	// UpdateCharge replaces an existing charge's editable fields.
	UpdateCharge(ctx context.Context, charge domain.Charge) error

	// DeleteCharge removes a charge record.
	DeleteCharge(ctx context.Context, chargeID string) error
}

// ChargeRepositoryFacade combines all charge repository interfaces
type ChargeRepositoryFacade interface {
	ChargeReader
	ChargeWriter
}
