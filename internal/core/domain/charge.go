package domain

import (
	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ChargeStatus is the lifecycle status of a charge issued to a resident.
type ChargeStatus string

const (
	ChargePending   ChargeStatus = "pendente"
	ChargePaid      ChargeStatus = "pago"
	ChargeOverdue   ChargeStatus = "atrasado"
	ChargeCancelled ChargeStatus = "cancelado"
)

// Charge (cobrança) is a billed amount owed by a resident to the
// condominium. Dates travel as plain YYYY-MM-DD strings; an empty
// SettlementDate means the charge has no recorded settlement.
type Charge struct {
	ChargeID       string          `json:"id"`
	ResidentID     string          `json:"morador_id"`
	Description    string          `json:"descricao"`
	Amount         decimal.Decimal `json:"valor"`
	DueDate        string          `json:"data_vencimento"`
	SettlementDate string          `json:"data_pagamento,omitempty"`
	Status         ChargeStatus    `json:"status"`
	Notes          string          `json:"observacoes"`
	Timestamps
}

// Normalize fills defaults on a candidate charge record. Unlike Payment,
// the settlement date is kept whatever the status is; only an explicitly
// blank value becomes absent. The asymmetry is intentional.
func (c *Charge) Normalize() {
	if c.Status == "" {
		c.Status = ChargePending
	}
}

// Validate checks required fields before a write is accepted.
func (c *Charge) Validate() error {
	if c.ResidentID == "" {
		return apperrors.NewValidationError(apperrors.CodeRequiredField, "morador_id", "Selecione um morador.")
	}
	if c.Description == "" {
		return apperrors.NewValidationError(apperrors.CodeRequiredField, "descricao", "Descrição é obrigatória.")
	}
	if c.Amount.IsZero() {
		return apperrors.NewValidationError(apperrors.CodeRequiredField, "valor", "Valor é obrigatório.")
	}
	if c.DueDate == "" {
		return apperrors.NewValidationError(apperrors.CodeRequiredField, "data_vencimento", "Data de vencimento é obrigatória.")
	}
	return nil
}
