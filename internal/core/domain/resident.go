package domain

import "github.com/mpcoutinho/condo_admin_app/internal/apperrors"

// RegistryStatus is the lifecycle status shared by residents and suppliers.
type RegistryStatus string

const (
	RegistryActive   RegistryStatus = "ativo"
	RegistryInactive RegistryStatus = "inativo"
)

// Resident is a condominium resident (morador). Charges reference
// residents but never own their lifecycle.
type Resident struct {
	ResidentID string         `json:"id"`
	Name       string         `json:"nome"`
	CPF        string         `json:"cpf"`
	Email      string         `json:"email"`
	Phone      string         `json:"telefone"`
	Unit       string         `json:"unidade"`
	Status     RegistryStatus `json:"status"`
	Timestamps
}

// Normalize fills defaults on a candidate resident record.
func (r *Resident) Normalize() {
	if r.Status == "" {
		r.Status = RegistryActive
	}
}

// Validate checks required fields before a write is accepted.
func (r *Resident) Validate() error {
	if r.Name == "" {
		return apperrors.NewValidationError(apperrors.CodeRequiredField, "nome", "Nome é obrigatório.")
	}
	if r.Unit == "" {
		return apperrors.NewValidationError(apperrors.CodeRequiredField, "unidade", "Unidade/Apartamento é obrigatório.")
	}
	return nil
}
