package domain

import (
	"testing"

	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceValidateRequiredFields(t *testing.T) {
	m := MaintenanceTask{ScheduledDate: "2026-04-01"}
	err := m.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	m = MaintenanceTask{Description: "Limpeza da caixa d'água"}
	err = m.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	m = MaintenanceTask{Description: "Limpeza da caixa d'água", ScheduledDate: "2026-04-01"}
	assert.NoError(t, m.Validate())
}

func TestMaintenanceNormalizeDefaultsStatus(t *testing.T) {
	m := MaintenanceTask{Description: "Poda do jardim", ScheduledDate: "2026-04-15"}
	m.Normalize()
	assert.Equal(t, MaintenancePending, m.Status)
}

// An absent estimate is not the same as a zero estimate.
func TestMaintenanceEstimatedCostAbsentVsZero(t *testing.T) {
	absent := MaintenanceTask{Description: "x", ScheduledDate: "2026-04-01"}
	assert.False(t, absent.EstimatedCost.Valid)

	zero := MaintenanceTask{
		Description:   "x",
		ScheduledDate: "2026-04-01",
		EstimatedCost: decimal.NewNullDecimal(decimal.Zero),
	}
	assert.True(t, zero.EstimatedCost.Valid)
	assert.True(t, zero.EstimatedCost.Decimal.IsZero())
}
