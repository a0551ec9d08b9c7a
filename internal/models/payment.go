package models

import "github.com/shopspring/decimal"

// Payment mirrors the pagamentos table.
type Payment struct {
	PaymentID      string          `db:"id"`
	SupplierID     string          `db:"fornecedor_id"` // Nullable
	Description    string          `db:"descricao"`
	Amount         decimal.Decimal `db:"valor"`
	DueDate        string          `db:"data_vencimento"`
	SettlementDate string          `db:"data_pagamento"`  // Nullable
	Method         string          `db:"forma_pagamento"` // Nullable
	Status         string          `db:"status"`
	Notes          string          `db:"observacoes"`
	Timestamps
}
