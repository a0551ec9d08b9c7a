package domain

import (
	"errors"
	"testing"

	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCharge() Charge {
	return Charge{
		ResidentID:  "8d5c4f7e-0000-0000-0000-000000000001",
		Description: "Taxa condominial fevereiro",
		Amount:      decimal.RequireFromString("350.00"),
		DueDate:     "2026-02-10",
	}
}

func TestChargeNormalizeDefaultsStatus(t *testing.T) {
	c := validCharge()
	c.Normalize()
	assert.Equal(t, ChargePending, c.Status)
}

// A charge keeps its settlement date regardless of status. The coupling
// rule applies to payments only.
func TestChargeKeepsSettlementDateWhenPending(t *testing.T) {
	c := validCharge()
	c.Status = ChargePending
	c.SettlementDate = "2026-02-09"
	c.Normalize()
	require.NoError(t, c.Validate())
	assert.Equal(t, "2026-02-09", c.SettlementDate)
}

func TestChargeValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Charge)
		wantField string
	}{
		{name: "valid", mutate: func(c *Charge) {}},
		{name: "missing resident", mutate: func(c *Charge) { c.ResidentID = "" }, wantField: "morador_id"},
		{name: "missing description", mutate: func(c *Charge) { c.Description = "" }, wantField: "descricao"},
		{name: "missing amount", mutate: func(c *Charge) { c.Amount = decimal.Zero }, wantField: "valor"},
		{name: "missing due date", mutate: func(c *Charge) { c.DueDate = "" }, wantField: "data_vencimento"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCharge()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			var vErr *apperrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.Equal(t, apperrors.CodeRequiredField, vErr.Code)
		})
	}
}

func TestChargeCancelledStatusIsAccepted(t *testing.T) {
	c := validCharge()
	c.Status = ChargeCancelled
	c.Normalize()
	assert.NoError(t, c.Validate())
}
