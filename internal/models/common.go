package models

import "time"

// Timestamps embeds the record bookkeeping columns shared by every table.
type Timestamps struct {
	CreatedAt time.Time `db:"criado_em"`
	UpdatedAt time.Time `db:"atualizado_em"`
}
