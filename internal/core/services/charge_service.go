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
	"github.com/mpcoutinho/condo_admin_app/internal/utils"
)

// chargeServiceImpl implements the ChargeSvcFacade interface
type chargeServiceImpl struct {
	BaseService
	chargeRepo   portsrepo.ChargeRepositoryFacade
	residentRepo portsrepo.ResidentReader
}

// NewChargeService creates a new charge service. The resident reader is
// needed to resolve the owning resident when rendering notices.
func NewChargeService(chargeRepo portsrepo.ChargeRepositoryFacade, residentRepo portsrepo.ResidentReader) portssvc.ChargeSvcFacade {
	return &chargeServiceImpl{chargeRepo: chargeRepo, residentRepo: residentRepo}
}

// Ensure chargeServiceImpl implements the ChargeSvcFacade interface
var _ portssvc.ChargeSvcFacade = (*chargeServiceImpl)(nil)

func (s *chargeServiceImpl) CreateCharge(ctx context.Context, req dto.ChargeRequest) (*domain.Charge, error) {
	now := time.Now()
	charge := domain.Charge{
		ChargeID:       uuid.NewString(),
		ResidentID:     req.ResidentID,
		Description:    req.Description,
		Amount:         req.Amount,
		DueDate:        req.DueDate,
		SettlementDate: req.SettlementDate,
		Status:         domain.ChargeStatus(req.Status),
		Notes:          req.Notes,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	charge.Normalize()
	if err := charge.Validate(); err != nil {
		return nil, err
	}

	if err := s.chargeRepo.SaveCharge(ctx, charge); err != nil {
		s.LogError(ctx, err, "Failed to save charge",
			slog.String("charge_id", charge.ChargeID),
			slog.String("resident_id", charge.ResidentID))
		return nil, err
	}

	s.LogInfo(ctx, "Charge created successfully",
		slog.String("charge_id", charge.ChargeID))
	return &charge, nil
}

func (s *chargeServiceImpl) GetChargeByID(ctx context.Context, chargeID string) (*domain.Charge, error) {
	charge, err := s.chargeRepo.FindChargeByID(ctx, chargeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find charge by ID",
				slog.String("charge_id", chargeID))
		}
		return nil, err
	}
	return charge, nil
}

func (s *chargeServiceImpl) ListCharges(ctx context.Context, limit int, offset int) ([]domain.Charge, error) {
	charges, err := s.chargeRepo.ListCharges(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list charges",
			slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list charges: %w", err)
	}
	if charges == nil {
		return []domain.Charge{}, nil
	}
	return charges, nil
}

func (s *chargeServiceImpl) UpdateCharge(ctx context.Context, chargeID string, req dto.ChargeRequest) (*domain.Charge, error) {
	existing, err := s.chargeRepo.FindChargeByID(ctx, chargeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find charge for update",
				slog.String("charge_id", chargeID))
		}
		return nil, err
	}

	charge := domain.Charge{
		ChargeID:       existing.ChargeID,
		ResidentID:     req.ResidentID,
		Description:    req.Description,
		Amount:         req.Amount,
		DueDate:        req.DueDate,
		SettlementDate: req.SettlementDate,
		Status:         domain.ChargeStatus(req.Status),
		Notes:          req.Notes,
		Timestamps: domain.Timestamps{
			CreatedAt: existing.CreatedAt,
			UpdatedAt: time.Now(),
		},
	}
	charge.Normalize()
	if err := charge.Validate(); err != nil {
		return nil, err
	}

	if err := s.chargeRepo.UpdateCharge(ctx, charge); err != nil {
		s.LogError(ctx, err, "Failed to update charge",
			slog.String("charge_id", chargeID))
		return nil, err
	}

	s.LogInfo(ctx, "Charge updated successfully",
		slog.String("charge_id", chargeID))
	return &charge, nil
}

func (s *chargeServiceImpl) DeleteCharge(ctx context.Context, chargeID string) error {
	if err := s.chargeRepo.DeleteCharge(ctx, chargeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete charge",
				slog.String("charge_id", chargeID))
		}
		return err
	}

	s.LogInfo(ctx, "Charge deleted successfully",
		slog.String("charge_id", chargeID))
	return nil
}

// ReminderMessage renders the collection notice for a charge. The notice
// is returned as text; delivering it (WhatsApp, email) is the caller's
// concern.
func (s *chargeServiceImpl) ReminderMessage(ctx context.Context, chargeID string) (string, error) {
	charge, err := s.chargeRepo.FindChargeByID(ctx, chargeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find charge for notice",
				slog.String("charge_id", chargeID))
		}
		return "", err
	}

	resident, err := s.residentRepo.FindResidentByID(ctx, charge.ResidentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve resident for notice",
			slog.String("charge_id", chargeID),
			slog.String("resident_id", charge.ResidentID))
		return "", err
	}

	message := utils.ReminderMessage(resident.Name, resident.CPF, charge.Amount, charge.DueDate, charge.SettlementDate)
	s.LogDebug(ctx, "Collection notice rendered",
		slog.String("charge_id", chargeID))
	return message, nil
}
