package models

import "github.com/shopspring/decimal"

// Charge mirrors the cobrancas table. Date columns are selected as text
// so values stay plain YYYY-MM-DD strings end to end.
type Charge struct {
	ChargeID       string          `db:"id"`
	ResidentID     string          `db:"morador_id"`
	Description    string          `db:"descricao"`
	Amount         decimal.Decimal `db:"valor"`
	DueDate        string          `db:"data_vencimento"`
	SettlementDate string          `db:"data_pagamento"` // Nullable
	Status         string          `db:"status"`
	Notes          string          `db:"observacoes"`
	Timestamps
}
