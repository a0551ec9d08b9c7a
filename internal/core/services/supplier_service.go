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

// supplierServiceImpl implements the SupplierSvcFacade interface
type supplierServiceImpl struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new supplier service
func NewSupplierService(repo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierServiceImpl{supplierRepo: repo}
}

// Ensure supplierServiceImpl implements the SupplierSvcFacade interface
var _ portssvc.SupplierSvcFacade = (*supplierServiceImpl)(nil)

func (s *supplierServiceImpl) CreateSupplier(ctx context.Context, req dto.SupplierRequest) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:  uuid.NewString(),
		Name:        req.Name,
		Document:    req.Document,
		ServiceType: req.ServiceType,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Status:      domain.RegistryStatus(req.Status),
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	supplier.Normalize()
	if err := supplier.Validate(); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier",
			slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier created successfully",
		slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierServiceImpl) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find supplier by ID",
				slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierServiceImpl) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers",
			slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

func (s *supplierServiceImpl) UpdateSupplier(ctx context.Context, supplierID string, req dto.SupplierRequest) (*domain.Supplier, error) {
	existing, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find supplier for update",
				slog.String("supplier_id", supplierID))
		}
		return nil, err
	}

	supplier := domain.Supplier{
		SupplierID:  existing.SupplierID,
		Name:        req.Name,
		Document:    req.Document,
		ServiceType: req.ServiceType,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Status:      domain.RegistryStatus(req.Status),
		Timestamps: domain.Timestamps{
			CreatedAt: existing.CreatedAt,
			UpdatedAt: time.Now(),
		},
	}
	supplier.Normalize()
	if err := supplier.Validate(); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.UpdateSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier",
			slog.String("supplier_id", supplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier updated successfully",
		slog.String("supplier_id", supplierID))
	return &supplier, nil
}

func (s *supplierServiceImpl) DeleteSupplier(ctx context.Context, supplierID string) error {
	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete supplier",
				slog.String("supplier_id", supplierID))
		}
		return err
	}

	s.LogInfo(ctx, "Supplier deleted successfully",
		slog.String("supplier_id", supplierID))
	return nil
}
