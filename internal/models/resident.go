package models

// Resident mirrors the moradores table.
type Resident struct {
	ResidentID string `db:"id"`
	Name       string `db:"nome"`
	CPF        string `db:"cpf"`
	Email      string `db:"email"`
	Phone      string `db:"telefone"`
	Unit       string `db:"unidade"`
	Status     string `db:"status"`
	Timestamps
}
