package dto

import (
	"time"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaintenanceRequest carries the full editable field set for a
// maintenance task. A nil estimated cost means no estimate, which is
// distinct from an explicit zero.
type MaintenanceRequest struct {
	SupplierID    string           `json:"fornecedor_id"`
	Description   string           `json:"descricao" binding:"required"`
	ScheduledDate string           `json:"data_agendada" binding:"required,caldate"`
	Status        string           `json:"status" binding:"omitempty,oneof=pendente agendado em_andamento concluido cancelado"`
	EstimatedCost *decimal.Decimal `json:"custo_estimado"`
	Notes         string           `json:"observacoes"`
}

// MaintenanceResponse defines the data returned for a maintenance task.
type MaintenanceResponse struct {
	ID            string              `json:"id"`
	SupplierID    string              `json:"fornecedor_id,omitempty"`
	Description   string              `json:"descricao"`
	ScheduledDate string              `json:"data_agendada"`
	Status        string              `json:"status"`
	EstimatedCost decimal.NullDecimal `json:"custo_estimado"`
	Notes         string              `json:"observacoes"`
	CreatedAt     time.Time           `json:"criado_em"`
	UpdatedAt     time.Time           `json:"atualizado_em"`
}

// ToMaintenanceResponse converts a domain.MaintenanceTask to MaintenanceResponse DTO
func ToMaintenanceResponse(m *domain.MaintenanceTask) MaintenanceResponse {
	return MaintenanceResponse{
		ID:            m.MaintenanceID,
		SupplierID:    m.SupplierID,
		Description:   m.Description,
		ScheduledDate: m.ScheduledDate,
		Status:        string(m.Status),
		EstimatedCost: m.EstimatedCost,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ListMaintenancesResponse wraps the list of maintenance tasks.
type ListMaintenancesResponse struct {
	Maintenances []MaintenanceResponse `json:"manutencoes"`
}

// UpcomingMaintenanceResponse is a task with its supplier name resolved
// and its scheduled date pre-formatted for display.
type UpcomingMaintenanceResponse struct {
	MaintenanceResponse
	SupplierName         string `json:"fornecedor_nome"`
	ScheduledDateDisplay string `json:"data_agendada_exibicao"`
}

// ListUpcomingParams defines query parameters for the upcoming-tasks query.
type ListUpcomingParams struct {
	Limit int `form:"limite,default=5"`
}
