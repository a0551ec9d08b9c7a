package dto

import (
	"time"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentRequest carries the full editable field set for a payment.
// A settlement date supplied alongside a non-pago status is cleared by
// normalization rather than rejected.
type PaymentRequest struct {
	SupplierID     string          `json:"fornecedor_id"`
	Description    string          `json:"descricao" binding:"required"`
	Amount         decimal.Decimal `json:"valor" binding:"required"`
	DueDate        string          `json:"data_vencimento" binding:"required,caldate"`
	SettlementDate string          `json:"data_pagamento" binding:"omitempty,caldate"`
	Status         string          `json:"status" binding:"omitempty,oneof=pendente pago atrasado"`
	Method         string          `json:"forma_pagamento" binding:"omitempty,oneof=boleto pix transferencia cartao dinheiro"`
	Notes          string          `json:"observacoes"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID             string          `json:"id"`
	SupplierID     string          `json:"fornecedor_id,omitempty"`
	Description    string          `json:"descricao"`
	Amount         decimal.Decimal `json:"valor"`
	DueDate        string          `json:"data_vencimento"`
	SettlementDate string          `json:"data_pagamento,omitempty"`
	Status         string          `json:"status"`
	Method         string          `json:"forma_pagamento,omitempty"`
	Notes          string          `json:"observacoes"`
	CreatedAt      time.Time       `json:"criado_em"`
	UpdatedAt      time.Time       `json:"atualizado_em"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.PaymentID,
		SupplierID:     p.SupplierID,
		Description:    p.Description,
		Amount:         p.Amount,
		DueDate:        p.DueDate,
		SettlementDate: p.SettlementDate,
		Status:         string(p.Status),
		Method:         string(p.Method),
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ListPaymentsResponse wraps the list of payments.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"pagamentos"`
}
