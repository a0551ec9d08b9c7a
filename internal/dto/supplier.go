package dto

import (
	"time"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
)

// SupplierRequest carries the full editable field set for a supplier.
type SupplierRequest struct {
	Name        string `json:"nome" binding:"required"`
	Document    string `json:"documento"`
	ServiceType string `json:"tipo_servico"`
	Phone       string `json:"telefone"`
	Email       string `json:"email"`
	Address     string `json:"endereco"`
	Status      string `json:"status" binding:"omitempty,oneof=ativo inativo"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Document    string    `json:"documento"`
	ServiceType string    `json:"tipo_servico"`
	Phone       string    `json:"telefone"`
	Email       string    `json:"email"`
	Address     string    `json:"endereco"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"criado_em"`
	UpdatedAt   time.Time `json:"atualizado_em"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.SupplierID,
		Name:        s.Name,
		Document:    s.Document,
		ServiceType: s.ServiceType,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ListSuppliersResponse wraps the list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"fornecedores"`
}
