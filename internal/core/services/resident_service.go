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
)

// residentServiceImpl implements the ResidentSvcFacade interface
type residentServiceImpl struct {
	BaseService
	residentRepo portsrepo.ResidentRepositoryFacade
}

// NewResidentService creates a new resident service
func NewResidentService(repo portsrepo.ResidentRepositoryFacade) portssvc.ResidentSvcFacade {
	return &residentServiceImpl{residentRepo: repo}
}

// Ensure residentServiceImpl implements the ResidentSvcFacade interface
var _ portssvc.ResidentSvcFacade = (*residentServiceImpl)(nil)

func (s *residentServiceImpl) CreateResident(ctx context.Context, req dto.ResidentRequest) (*domain.Resident, error) {
	now := time.Now()
	resident := domain.Resident{
		ResidentID: uuid.NewString(),
		Name:       req.Name,
		CPF:        req.CPF,
		Email:      req.Email,
		Phone:      req.Phone,
		Unit:       req.Unit,
		Status:     domain.RegistryStatus(req.Status),
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	resident.Normalize()
	if err := resident.Validate(); err != nil {
		return nil, err
	}

	if err := s.residentRepo.SaveResident(ctx, resident); err != nil {
		s.LogError(ctx, err, "Failed to save resident",
			slog.String("resident_id", resident.ResidentID))
		return nil, err
	}

	s.LogInfo(ctx, "Resident created successfully",
		slog.String("resident_id", resident.ResidentID))
	return &resident, nil
}

func (s *residentServiceImpl) GetResidentByID(ctx context.Context, residentID string) (*domain.Resident, error) {
	resident, err := s.residentRepo.FindResidentByID(ctx, residentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find resident by ID",
				slog.String("resident_id", residentID))
		}
		return nil, err
	}
	return resident, nil
}

func (s *residentServiceImpl) ListResidents(ctx context.Context, limit int, offset int) ([]domain.Resident, error) {
	residents, err := s.residentRepo.ListResidents(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list residents",
			slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	if residents == nil {
		return []domain.Resident{}, nil
	}
	return residents, nil
}

func (s *residentServiceImpl) UpdateResident(ctx context.Context, residentID string, req dto.ResidentRequest) (*domain.Resident, error) {
	existing, err := s.residentRepo.FindResidentByID(ctx, residentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find resident for update",
				slog.String("resident_id", residentID))
		}
		return nil, err
	}

	resident := domain.Resident{
		ResidentID: existing.ResidentID,
		Name:       req.Name,
		CPF:        req.CPF,
		Email:      req.Email,
		Phone:      req.Phone,
		Unit:       req.Unit,
		Status:     domain.RegistryStatus(req.Status),
		Timestamps: domain.Timestamps{
			CreatedAt: existing.CreatedAt,
			UpdatedAt: time.Now(),
		},
	}
	resident.Normalize()
	if err := resident.Validate(); err != nil {
		return nil, err
	}

	if err := s.residentRepo.UpdateResident(ctx, resident); err != nil {
		s.LogError(ctx, err, "Failed to update resident",
			slog.String("resident_id", residentID))
		return nil, err
	}

	s.LogInfo(ctx, "Resident updated successfully",
		slog.String("resident_id", residentID))
	return &resident, nil
}

func (s *residentServiceImpl) DeleteResident(ctx context.Context, residentID string) error {
	if err := s.residentRepo.DeleteResident(ctx, residentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete resident",
				slog.String("resident_id", residentID))
		}
		return err
	}

	s.LogInfo(ctx, "Resident deleted successfully",
		slog.String("resident_id", residentID))
	return nil
}
