package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa um utilizador do sistema (pertence a uma Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro no domínio depois de persistir
	Name         string
	Role         string // admin, operador
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
