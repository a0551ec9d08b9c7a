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

// paymentServiceImpl implements the PaymentSvcFacade interface
type paymentServiceImpl struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates a new payment service
func NewPaymentService(repo portsrepo.PaymentRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentServiceImpl{paymentRepo: repo}
}

// Ensure paymentServiceImpl implements the PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentServiceImpl)(nil)

func (s *paymentServiceImpl) CreatePayment(ctx context.Context, req dto.PaymentRequest) (*domain.Payment, error) {
	now := time.Now()
	payment := domain.Payment{
		PaymentID:      uuid.NewString(),
		SupplierID:     req.SupplierID,
		Description:    req.Description,
		Amount:         req.Amount,
		DueDate:        req.DueDate,
		SettlementDate: req.SettlementDate,
		Status:         domain.PaymentStatus(req.Status),
		Method:         domain.PaymentMethod(req.Method),
		Notes:          req.Notes,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	payment.Normalize()
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment",
			slog.String("payment_id", payment.PaymentID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment created successfully",
		slog.String("payment_id", payment.PaymentID))
	return &payment, nil
}

func (s *paymentServiceImpl) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment by ID",
				slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentServiceImpl) ListPayments(ctx context.Context, limit int, offset int) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments",
			slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *paymentServiceImpl) UpdatePayment(ctx context.Context, paymentID string, req dto.PaymentRequest) (*domain.Payment, error) {
	existing, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment for update",
				slog.String("payment_id", paymentID))
		}
		return nil, err
	}

	payment := domain.Payment{
		PaymentID:      existing.PaymentID,
		SupplierID:     req.SupplierID,
		Description:    req.Description,
		Amount:         req.Amount,
		DueDate:        req.DueDate,
		SettlementDate: req.SettlementDate,
		Status:         domain.PaymentStatus(req.Status),
		Method:         domain.PaymentMethod(req.Method),
		Notes:          req.Notes,
		Timestamps: domain.Timestamps{
			CreatedAt: existing.CreatedAt,
			UpdatedAt: time.Now(),
		},
	}
	payment.Normalize()
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.UpdatePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to update payment",
			slog.String("payment_id", paymentID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment updated successfully",
		slog.String("payment_id", paymentID))
	return &payment, nil
}

func (s *paymentServiceImpl) DeletePayment(ctx context.Context, paymentID string) error {
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete payment",
				slog.String("payment_id", paymentID))
		}
		return err
	}

	s.LogInfo(ctx, "Payment deleted successfully",
		slog.String("payment_id", paymentID))
	return nil
}
