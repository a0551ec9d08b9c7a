package domain

import "time"

// Timestamps holds standard record timestamps for domain entities.
type Timestamps struct {
	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`
}
