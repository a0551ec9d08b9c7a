package services

import (
	"context"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	"github.com/mpcoutinho/condo_admin_app/internal/dto"
)

// ChargeReaderSvc defines read operations for charge data
type ChargeReaderSvc interface {
	// GetChargeByID retrieves a specific charge by its unique identifier.
	GetChargeByID(ctx context.Context, chargeID string) (*domain.Charge, error)

	// ListCharges retrieves a paginated list of charges.
	ListCharges(ctx context.Context, limit int, offset int) ([]domain.Charge, error)
}

// ChargeWriterSvc defines write operations for charge data
type ChargeWriterSvc interface {
	// CreateCharge validates, normalizes and persists a new charge.
	CreateCharge(ctx context.Context, req dto.ChargeRequest) (*domain.Charge, error)

	// UpdateCharge validates, normalizes and replaces an existing charge record.
	UpdateCharge(ctx context.Context, chargeID string, req dto.ChargeRequest) (*domain.Charge, error)

	// DeleteCharge removes a charge record.
	DeleteCharge(ctx context.Context, chargeID string) error
}

// ChargeNoticeSvc builds the collection notice for a charge.
type ChargeNoticeSvc interface {
	// ReminderMessage renders the collection notice for the given charge,
	// resolving the owning resident's name and document.
	ReminderMessage(ctx context.Context, chargeID string) (string, error)
}

// ChargeSvcFacade combines all charge-related service interfaces
type ChargeSvcFacade interface {
	ChargeReaderSvc
	ChargeWriterSvc
	ChargeNoticeSvc
}
