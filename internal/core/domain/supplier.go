package domain

import "github.com/mpcoutinho/condo_admin_app/internal/apperrors"

// Supplier is a service provider (fornecedor) referenced by payments and
// maintenance tasks.
type Supplier struct {
	SupplierID  string         `json:"id"`
	Name        string         `json:"nome"`
	Document    string         `json:"documento"`
	ServiceType string         `json:"tipo_servico"`
	Phone       string         `json:"telefone"`
	Email       string         `json:"email"`
	Address     string         `json:"endereco"`
	Status      RegistryStatus `json:"status"`
	Timestamps
}

// Normalize fills defaults on a candidate supplier record.
func (s *Supplier) Normalize() {
	if s.Status == "" {
		s.Status = RegistryActive
	}
}

// Validate checks required fields before a write is accepted.
func (s *Supplier) Validate() error {
	if s.Name == "" {
		return apperrors.NewValidationError(apperrors.CodeRequiredField, "nome", "Nome é obrigatório.")
	}
	return nil
}
