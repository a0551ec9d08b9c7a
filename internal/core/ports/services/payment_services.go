package services

import (
	"context"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	"github.com/mpcoutinho/condo_admin_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its unique identifier.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves a paginated list of payments.
	ListPayments(ctx context.Context, limit int, offset int) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// CreatePayment validates, normalizes and persists a new payment.
	CreatePayment(ctx context.Context, req dto.PaymentRequest) (*domain.Payment, error)

	// UpdatePayment validates, normalizes and replaces an existing payment record.
	UpdatePayment(ctx context.Context, paymentID string, req dto.PaymentRequest) (*domain.Payment, error)

	// DeletePayment removes a payment record.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
