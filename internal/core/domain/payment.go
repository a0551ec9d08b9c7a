package domain

import (
	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle status of a payment owed to a supplier.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pendente"
	PaymentPaid    PaymentStatus = "pago"
	PaymentOverdue PaymentStatus = "atrasado"
)

// PaymentMethod is how a paid payment was settled. Only meaningful when
// the status is pago; an empty value means unset.
type PaymentMethod string

const (
	MethodBoleto   PaymentMethod = "boleto"
	MethodPix      PaymentMethod = "pix"
	MethodTransfer PaymentMethod = "transferencia"
	MethodCard     PaymentMethod = "cartao"
	MethodCash     PaymentMethod = "dinheiro"
)

// Payment (pagamento) is an amount owed by the condominium to a supplier.
// The supplier reference is optional.
type Payment struct {
	PaymentID      string          `json:"id"`
	SupplierID     string          `json:"fornecedor_id,omitempty"`
	Description    string          `json:"descricao"`
	Amount         decimal.Decimal `json:"valor"`
	DueDate        string          `json:"data_vencimento"`
	SettlementDate string          `json:"data_pagamento,omitempty"`
	Status         PaymentStatus   `json:"status"`
	Method         PaymentMethod   `json:"forma_pagamento,omitempty"`
	Notes          string          `json:"observacoes"`
	Timestamps
}

// Normalize fills defaults and enforces the status/settlement coupling:
// a payment that is not pago cannot carry a settlement date, so whatever
// the caller supplied is silently cleared.
func (p *Payment) Normalize() {
	if p.Status == "" {
		p.Status = PaymentPending
	}
	if p.Status != PaymentPaid {
		p.SettlementDate = ""
	}
}

// Validate checks the lifecycle rules before a write is accepted.
// Callers run Normalize first; validation never mutates the record.
func (p *Payment) Validate() error {
	if p.DueDate == "" {
		return apperrors.NewValidationError(apperrors.CodeRequiredField, "data_vencimento", "Data de Vencimento é obrigatória.")
	}
	if p.Amount.IsZero() {
		return apperrors.NewValidationError(apperrors.CodeRequiredField, "valor", "Valor é obrigatório.")
	}
	if p.Amount.Sign() <= 0 {
		return apperrors.NewValidationError(apperrors.CodeInvalidAmount, "valor", "Valor deve ser maior que zero.")
	}
	if p.Status == PaymentPaid && p.SettlementDate == "" {
		return apperrors.NewValidationError(apperrors.CodeMissingSettlementDate, "data_pagamento", "Data do Pagamento é obrigatória para um pagamento pago.")
	}
	return nil
}
