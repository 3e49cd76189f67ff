package repository

import "github.com/Pranshau/Rating-App/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los métodos Get* devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error) // email ya normalizado a minúsculas
	UpdatePassword(id, passwordHash string) error
	ListWithStoreRating() ([]*entity.UserAdminRow, error)
}
