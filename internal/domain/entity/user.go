package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleOwner = "owner"
)

// ValidRole indica si el rol está dentro del conjunto permitido.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser || role == RoleOwner
}

// User representa una cuenta del sistema. El email se guarda siempre en
// minúsculas: la unicidad es case-insensitive.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Address      string
	Role         string // admin, user, owner
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
