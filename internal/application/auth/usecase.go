package auth

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
	"github.com/Pranshau/Rating-App/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro (user/owner) y login.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtCfg     JWTConfig
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, bcryptCost int) *AuthUseCase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, bcryptCost: bcryptCost}
}

// Register crea un usuario con el rol indicado por la ruta ("user" u "owner"),
// valida todos los campos, hashea la contraseña con bcrypt y emite el token de
// sesión. Devuelve ErrEmailAlreadyExists si el email (en minúsculas) ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest, role string) (*dto.AuthResponse, error) {
	if !validation.Name(in.Name) {
		return nil, domain.ErrInvalidInput
	}
	if !validation.Email(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	if !validation.Address(in.Address) {
		return nil, domain.ErrInvalidInput
	}
	if !validation.Password(in.Password) {
		return nil, domain.ErrInvalidInput
	}

	email := validation.NormalizeEmail(in.Email)
	existing, err := uc.userRepo.GetByEmail(email)
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
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := uc.tokenFor(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Login verifica email/password y emite el token de sesión.
// El error es el mismo (ErrUnauthorized) tanto para email inexistente como
// para contraseña incorrecta: no se revela cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	if !validation.Email(in.Email) || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(validation.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := uc.tokenFor(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

func (uc *AuthUseCase) tokenFor(u *entity.User) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, u.Role, u.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}
