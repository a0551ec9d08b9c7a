package repositories

import (
	"context"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
)

// MaintenanceReader defines read operations for maintenance task data
type MaintenanceReader interface {
	// FindMaintenanceByID retrieves a specific maintenance task by its unique identifier.
	FindMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceTask, error)

	// ListMaintenances retrieves a paginated list of maintenance tasks, soonest first.
	ListMaintenances(ctx context.Context, limit int, offset int) ([]domain.MaintenanceTask, error)

	// ListUpcomingMaintenances retrieves active tasks (pendente, agendado,
	// em_andamento) ordered by scheduled date then creation time, with the
	// supplier name resolved when the reference exists.
	ListUpcomingMaintenances(ctx context.Context, limit int) ([]domain.UpcomingMaintenance, error)
}

// MaintenanceWriter defines write operations for maintenance task data
type MaintenanceWriter interface {
	// SaveMaintenance persists a new maintenance task.
	SaveMaintenance(ctx context.Context, task domain.MaintenanceTask) error

	// UpdateMaintenance replaces an existing task's editable fields.
	UpdateMaintenance(ctx context.Context, task domain.MaintenanceTask) error

	// DeleteMaintenance removes a maintenance task record.
	DeleteMaintenance(ctx context.Context, maintenanceID string) error
}

// MaintenanceRepositoryFacade combines all maintenance repository interfaces
type MaintenanceRepositoryFacade interface {
	MaintenanceReader
	MaintenanceWriter
}
