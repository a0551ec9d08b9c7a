package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	portsrepo "github.com/mpcoutinho/condo_admin_app/internal/core/ports/repositories"
	portssvc "github.com/mpcoutinho/condo_admin_app/internal/core/ports/services"
	"github.com/mpcoutinho/condo_admin_app/internal/dto"
	"github.com/shopspring/decimal"
)

// defaultUpcomingLimit caps the dashboard maintenance list.
const defaultUpcomingLimit = 5

// maintenanceServiceImpl implements the MaintenanceSvcFacade interface
type maintenanceServiceImpl struct {
	BaseService
	maintenanceRepo portsrepo.MaintenanceRepositoryFacade
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(repo portsrepo.MaintenanceRepositoryFacade) portssvc.MaintenanceSvcFacade {
	return &maintenanceServiceImpl{maintenanceRepo: repo}
}

// Ensure maintenanceServiceImpl implements the MaintenanceSvcFacade interface
var _ portssvc.MaintenanceSvcFacade = (*maintenanceServiceImpl)(nil)

func taskFromRequest(req dto.MaintenanceRequest) domain.MaintenanceTask {
	cost := decimal.NullDecimal{}
	if req.EstimatedCost != nil {
		cost = decimal.NullDecimal{Decimal: *req.EstimatedCost, Valid: true}
	}
	return domain.MaintenanceTask{
		SupplierID:    req.SupplierID,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		Status:        domain.MaintenanceStatus(req.Status),
		EstimatedCost: cost,
		Notes:         req.Notes,
	}
}

func (s *maintenanceServiceImpl) CreateMaintenance(ctx context.Context, req dto.MaintenanceRequest) (*domain.MaintenanceTask, error) {
	now := time.Now()
	task := taskFromRequest(req)
	task.MaintenanceID = uuid.NewString()
	task.Timestamps = domain.Timestamps{CreatedAt: now, UpdatedAt: now}
	task.Normalize()
	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.maintenanceRepo.SaveMaintenance(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save maintenance task",
			slog.String("maintenance_id", task.MaintenanceID))
		return nil, err
	}

	s.LogInfo(ctx, "Maintenance task created successfully",
		slog.String("maintenance_id", task.MaintenanceID))
	return &task, nil
}

func (s *maintenanceServiceImpl) GetMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceTask, error) {
	task, err := s.maintenanceRepo.FindMaintenanceByID(ctx, maintenanceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find maintenance task by ID",
				slog.String("maintenance_id", maintenanceID))
		}
		return nil, err
	}
	return task, nil
}

func (s *maintenanceServiceImpl) ListMaintenances(ctx context.Context, limit int, offset int) ([]domain.MaintenanceTask, error) {
	tasks, err := s.maintenanceRepo.ListMaintenances(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list maintenance tasks",
			slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list maintenance tasks: %w", err)
	}
	if tasks == nil {
		return []domain.MaintenanceTask{}, nil
	}
	return tasks, nil
}

// NextMaintenances returns the next active tasks, soonest first. Tasks
// without a resolvable supplier carry the no-supplier label so the
// dashboard never renders an empty name.
func (s *maintenanceServiceImpl) NextMaintenances(ctx context.Context, limit int) ([]domain.UpcomingMaintenance, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}

	tasks, err := s.maintenanceRepo.ListUpcomingMaintenances(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list upcoming maintenance tasks",
			slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list upcoming maintenance tasks: %w", err)
	}

	for i := range tasks {
		if tasks[i].SupplierName == "" {
			tasks[i].SupplierName = domain.NoSupplierLabel
		}
	}
	if tasks == nil {
		return []domain.UpcomingMaintenance{}, nil
	}
	return tasks, nil
}

func (s *maintenanceServiceImpl) UpdateMaintenance(ctx context.Context, maintenanceID string, req dto.MaintenanceRequest) (*domain.MaintenanceTask, error) {
	existing, err := s.maintenanceRepo.FindMaintenanceByID(ctx, maintenanceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find maintenance task for update",
				slog.String("maintenance_id", maintenanceID))
		}
		return nil, err
	}

	task := taskFromRequest(req)
	task.MaintenanceID = existing.MaintenanceID
	task.Timestamps = domain.Timestamps{CreatedAt: existing.CreatedAt, UpdatedAt: time.Now()}
	task.Normalize()
	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.maintenanceRepo.UpdateMaintenance(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to update maintenance task",
			slog.String("maintenance_id", maintenanceID))
		return nil, err
	}

	s.LogInfo(ctx, "Maintenance task updated successfully",
		slog.String("maintenance_id", maintenanceID))
	return &task, nil
}

func (s *maintenanceServiceImpl) DeleteMaintenance(ctx context.Context, maintenanceID string) error {
	if err := s.maintenanceRepo.DeleteMaintenance(ctx, maintenanceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete maintenance task",
				slog.String("maintenance_id", maintenanceID))
		}
		return err
	}

	s.LogInfo(ctx, "Maintenance task deleted successfully",
		slog.String("maintenance_id", maintenanceID))
	return nil
}
