package models

// Supplier mirrors the fornecedores table.
type Supplier struct {
	SupplierID  string `db:"id"`
	Name        string `db:"nome"`
	Document    string `db:"documento"`
	ServiceType string `db:"tipo_servico"`
	Phone       string `db:"telefone"`
	Email       string `db:"email"`
	Address     string `db:"endereco"`
	Status      string `db:"status"`
	Timestamps
}
