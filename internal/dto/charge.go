package dto

import (
	"time"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChargeRequest carries the full editable field set for a charge.
// Dates are plain YYYY-MM-DD strings (caldate binding); an empty
// settlement date means none was recorded.
type ChargeRequest struct {
	ResidentID     string          `json:"morador_id" binding:"required"`
	Description    string          `json:"descricao" binding:"required"`
	Amount         decimal.Decimal `json:"valor" binding:"required"`
	DueDate        string          `json:"data_vencimento" binding:"required,caldate"`
	SettlementDate string          `json:"data_pagamento" binding:"omitempty,caldate"`
	Status         string          `json:"status" binding:"omitempty,oneof=pendente pago atrasado cancelado"`
	Notes          string          `json:"observacoes"`
}

// ChargeResponse defines the data returned for a charge.
type ChargeResponse struct {
	ID             string          `json:"id"`
	ResidentID     string          `json:"morador_id"`
	Description    string          `json:"descricao"`
	Amount         decimal.Decimal `json:"valor"`
	DueDate        string          `json:"data_vencimento"`
	SettlementDate string          `json:"data_pagamento,omitempty"`
	Status         string          `json:"status"`
	Notes          string          `json:"observacoes"`
	CreatedAt      time.Time       `json:"criado_em"`
	UpdatedAt      time.Time       `json:"atualizado_em"`
}

// ToChargeResponse converts a domain.Charge to ChargeResponse DTO
func ToChargeResponse(c *domain.Charge) ChargeResponse {
	return ChargeResponse{
		ID:             c.ChargeID,
		ResidentID:     c.ResidentID,
		Description:    c.Description,
		Amount:         c.Amount,
		DueDate:        c.DueDate,
		SettlementDate: c.SettlementDate,
		Status:         string(c.Status),
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ListChargesResponse wraps the list of charges.
type ListChargesResponse struct {
	Charges []ChargeResponse `json:"cobrancas"`
}

// ReminderMessageResponse wraps the generated collection notice.
type ReminderMessageResponse struct {
	Message string `json:"mensagem"`
}
