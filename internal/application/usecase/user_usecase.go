package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pranshau/Rating-App/internal/application/dto"
	"github.com/Pranshau/Rating-App/internal/domain"
	"github.com/Pranshau/Rating-App/internal/domain/entity"
	"github.com/Pranshau/Rating-App/internal/domain/repository"
	"github.com/Pranshau/Rating-App/internal/domain/validation"
)

// UserUseCase gestión de usuarios del panel admin y cambio de contraseña.
type UserUseCase struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(users repository.UserRepository, bcryptCost int) *UserUseCase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{users: users, bcryptCost: bcryptCost}
}

// ListAdmin devuelve todos los usuarios; para los dueños incluye la dirección
// de su tienda y el promedio de calificación de la misma.
func (uc *UserUseCase) ListAdmin() (*dto.UserListResponse, error) {
	rows, err := uc.users.ListWithStoreRating()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminUserRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AdminUserRow{
			ID:            r.ID,
			Name:          r.Name,
			Email:         r.Email,
			Role:          r.Role,
			Address:       r.Address,
			StoreAddress:  r.StoreAddress,
			AverageRating: r.AverageRating.Round(2),
		})
	}
	return &dto.UserListResponse{Users: out}, nil
}

// Create crea un usuario con rol explícito (el admin puede crear admin, user
// u owner). Mismas validaciones que el registro público.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !validation.Name(in.Name) || !validation.Email(in.Email) || !validation.Address(in.Address) || !validation.Password(in.Password) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	email := validation.NormalizeEmail(in.Email)
	existing, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Address:      in.Address,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
	}, nil
}

// ChangePassword sobreescribe el hash del usuario en sesión.
// La nueva contraseña debe cumplir la política (ErrInvalidInput); la vieja
// debe coincidir con el hash guardado (ErrUnauthorized). El rehash usa un salt
// fresco: bcrypt lo genera en cada GenerateFromPassword.
func (uc *UserUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	if !validation.Password(in.NewPassword) {
		return domain.ErrInvalidInput
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), uc.bcryptCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(userID, string(hash))
}
