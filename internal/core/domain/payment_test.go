package domain

import (
	"errors"
	"testing"

	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayment() Payment {
	return Payment{
		Description: "Manutenção Elétrica",
		Amount:      decimal.RequireFromString("480.00"),
		DueDate:     "2026-02-10",
		Status:      PaymentPending,
	}
}

func TestPaymentNormalizeClearsSettlementWhenNotPaid(t *testing.T) {
	tests := []struct {
		name   string
		status PaymentStatus
		keep   bool
	}{
		{name: "pending clears", status: PaymentPending, keep: false},
		{name: "overdue clears", status: PaymentOverdue, keep: false},
		{name: "paid keeps", status: PaymentPaid, keep: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayment()
			p.Status = tt.status
			p.SettlementDate = "2026-02-09"
			p.Normalize()
			if tt.keep {
				assert.Equal(t, "2026-02-09", p.SettlementDate)
			} else {
				assert.Empty(t, p.SettlementDate)
			}
		})
	}
}

func TestPaymentNormalizeDefaultsStatus(t *testing.T) {
	p := validPayment()
	p.Status = ""
	p.Normalize()
	assert.Equal(t, PaymentPending, p.Status)
}

func TestPaymentValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Payment)
		wantCode string
	}{
		{name: "valid", mutate: func(p *Payment) {}},
		{name: "missing due date", mutate: func(p *Payment) { p.DueDate = "" }, wantCode: apperrors.CodeRequiredField},
		{name: "missing amount", mutate: func(p *Payment) { p.Amount = decimal.Zero }, wantCode: apperrors.CodeRequiredField},
		{name: "negative amount", mutate: func(p *Payment) { p.Amount = decimal.RequireFromString("-10") }, wantCode: apperrors.CodeInvalidAmount},
		{name: "paid without settlement date", mutate: func(p *Payment) { p.Status = PaymentPaid }, wantCode: apperrors.CodeMissingSettlementDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayment()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			var vErr *apperrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantCode, vErr.Code)
		})
	}
}

func TestPaymentPaidWithSettlementDateIsValid(t *testing.T) {
	p := validPayment()
	p.Status = PaymentPaid
	p.SettlementDate = "2026-02-08"
	p.Method = MethodPix
	p.Normalize()
	require.NoError(t, p.Validate())
	assert.Equal(t, "2026-02-08", p.SettlementDate)
}

// Re-validating a normalized payment must be a no-op: whatever the caller
// supplied, the stored status/settlement combination stays legal.
func TestPaymentNormalizeIsIdempotent(t *testing.T) {
	p := validPayment()
	p.Status = PaymentOverdue
	p.SettlementDate = "2026-02-09"
	p.Normalize()
	require.NoError(t, p.Validate())

	again := p
	again.Normalize()
	assert.Equal(t, p, again)
	assert.NoError(t, again.Validate())
}
