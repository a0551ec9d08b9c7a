package services

import (
	"context"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	"github.com/mpcoutinho/condo_admin_app/internal/dto"
)

// MaintenanceReaderSvc defines read operations for maintenance data
type MaintenanceReaderSvc interface {
	// GetMaintenanceByID retrieves a specific maintenance task by its unique identifier.
	GetMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceTask, error)

	// ListMaintenances retrieves a paginated list of maintenance tasks.
	ListMaintenances(ctx context.Context, limit int, offset int) ([]domain.MaintenanceTask, error)

	// NextMaintenances retrieves the next upcoming active tasks, soonest
	// first, with supplier names resolved for display.
	NextMaintenances(ctx context.Context, limit int) ([]domain.UpcomingMaintenance, error)
}

// MaintenanceWriterSvc defines write operations for maintenance data
type MaintenanceWriterSvc interface {
	// CreateMaintenance validates and persists a new maintenance task.
	CreateMaintenance(ctx context.Context, req dto.MaintenanceRequest) (*domain.MaintenanceTask, error)

	// UpdateMaintenance validates and replaces an existing maintenance task.
	UpdateMaintenance(ctx context.Context, maintenanceID string, req dto.MaintenanceRequest) (*domain.MaintenanceTask, error)

	// DeleteMaintenance removes a maintenance task record.
	DeleteMaintenance(ctx context.Context, maintenanceID string) error
}

// MaintenanceSvcFacade combines all maintenance-related service interfaces
type MaintenanceSvcFacade interface {
	MaintenanceReaderSvc
	MaintenanceWriterSvc
}
