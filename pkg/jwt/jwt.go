package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores del paquete. El middleware distingue token expirado de token
// malformado para poder responder con un mensaje específico.
var (
	ErrMissingSecret = errors.New("jwt: secret vacío")
	ErrExpired       = errors.New("jwt: token expirado")
	ErrMalformed     = errors.New("jwt: token inválido")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añaden Role y Name para que el middleware y el frontend puedan tomar
// decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // "admin" | "user" | "owner"
	Name   string `json:"name"`
}

// Identity es el resultado de verificar un token: la identidad de la sesión.
type Identity struct {
	ID    string
	Email string
	Role  string
	Name  string
}

// Generate genera un token JWT firmado (HS256) con id, email, role y name.
// La ventana de validez es expMinutes (480 = 8 horas en producción).
func Generate(secret, userID, email, role, name, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
		Name:   name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la identidad de la sesión.
// Retorna ErrExpired si la ventana de validez ya pasó y ErrMalformed para
// cualquier otro problema (firma incorrecta, estructura rota, alg inesperado).
func Parse(secret, tokenString string) (*Identity, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformed
	}
	return &Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
		Name:  claims.Name,
	}, nil
}
