package models

import "github.com/shopspring/decimal"

// MaintenanceTask mirrors the manutencoes table.
type MaintenanceTask struct {
	MaintenanceID string              `db:"id"`
	SupplierID    string              `db:"fornecedor_id"` // Nullable
	Description   string              `db:"descricao"`
	ScheduledDate string              `db:"data_agendada"`
	Status        string              `db:"status"`
	EstimatedCost decimal.NullDecimal `db:"custo_estimado"` // Nullable
	Notes         string              `db:"observacoes"`
	Timestamps
}
