package domain

import (
	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaintenanceStatus is the lifecycle status of a maintenance task.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pendente"
	MaintenanceScheduled  MaintenanceStatus = "agendado"
	MaintenanceInProgress MaintenanceStatus = "em_andamento"
	MaintenanceCompleted  MaintenanceStatus = "concluido"
	MaintenanceCancelled  MaintenanceStatus = "cancelado"
)

// MaintenanceTask (manutenção) is a scheduled or in-progress service
// engagement, optionally linked to a supplier. EstimatedCost uses
// NullDecimal because "no estimate" is distinct from a zero estimate.
type MaintenanceTask struct {
	MaintenanceID string              `json:"id"`
	SupplierID    string              `json:"fornecedor_id,omitempty"`
	Description   string              `json:"descricao"`
	ScheduledDate string              `json:"data_agendada"`
	Status        MaintenanceStatus   `json:"status"`
	EstimatedCost decimal.NullDecimal `json:"custo_estimado"`
	Notes         string              `json:"observacoes"`
	Timestamps
}

// Normalize fills defaults on a candidate maintenance record.
func (m *MaintenanceTask) Normalize() {
	if m.Status == "" {
		m.Status = MaintenancePending
	}
}

// Validate checks required fields before a write is accepted.
func (m *MaintenanceTask) Validate() error {
	if m.Description == "" {
		return apperrors.NewValidationError(apperrors.CodeRequiredField, "descricao", "Descrição é obrigatória.")
	}
	if m.ScheduledDate == "" {
		return apperrors.NewValidationError(apperrors.CodeRequiredField, "data_agendada", "Data Agendada é obrigatória.")
	}
	return nil
}
