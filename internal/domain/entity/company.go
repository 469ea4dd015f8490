package entity

import "time"

// Company representa uma loja/tenant do sistema.
type Company struct {
	ID        string
	Name      string
	NIF       string // Número de Identificação Fiscal (Angola)
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
