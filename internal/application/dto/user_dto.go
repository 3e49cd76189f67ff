package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest entrada para registro público (rol fijado por la ruta:
// /register crea "user", /register-owner crea "owner").
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=4,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"omitempty,max=400"`
	Password string `json:"password" validate:"required,min=8,max=16"`
}

// CreateUserRequest entrada del panel admin: igual que el registro pero con
// rol explícito.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=4,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"omitempty,max=400"`
	Password string `json:"password" validate:"required,min=8,max=16"`
	Role     string `json:"role" validate:"required,oneof=admin user owner"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest entrada para cambio de contraseña del usuario en sesión.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse salida de login y registro: token de sesión + usuario.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserListResponse salida del listado admin de usuarios.
type UserListResponse struct {
	Users []AdminUserRow `json:"users"`
}

// AdminUserRow fila del panel admin: para dueños incluye la dirección de su
// tienda y el promedio de calificación de la misma.
type AdminUserRow struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          string          `json:"role"`
	Address       string          `json:"address"`
	StoreAddress  string          `json:"store_address,omitempty"`
	AverageRating decimal.Decimal `json:"average_rating"`
}
