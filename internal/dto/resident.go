package dto

import (
	"time"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
)

// ResidentRequest carries the full editable field set for a resident.
// Updates always replace the whole record; there are no partial patches.
type ResidentRequest struct {
	Name   string `json:"nome" binding:"required"`
	CPF    string `json:"cpf"`
	Email  string `json:"email"`
	Phone  string `json:"telefone"`
	Unit   string `json:"unidade" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof=ativo inativo"`
}

// ResidentResponse defines the data returned for a resident.
type ResidentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	Unit      string    `json:"unidade"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`
}

// ToResidentResponse converts a domain.Resident to ResidentResponse DTO
func ToResidentResponse(r *domain.Resident) ResidentResponse {
	return ResidentResponse{
		ID:        r.ResidentID,
		Name:      r.Name,
		CPF:       r.CPF,
		Email:     r.Email,
		Phone:     r.Phone,
		Unit:      r.Unit,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ListResidentsResponse wraps the list of residents.
type ListResidentsResponse struct {
	Residents []ResidentResponse `json:"moradores"`
}

// ListParams defines the shared limit/offset query parameters.
type ListParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
