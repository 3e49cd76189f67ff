package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pranshau/Rating-App/internal/domain/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Política de contraseñas: 8-16 chars, una mayúscula, un carácter especial.
// ──────────────────────────────────────────────────────────────────────────────

func TestPassword_CasosValidos(t *testing.T) {
	valid := []string{
		"Abcdef1!",         // 8 chars, mayúscula y símbolo
		"Password#1",       // símbolo distinto
		"XyZ@abcdefghijk1", // 16 chars exactos
		"A!bcdefg",
	}
	for _, p := range valid {
		assert.True(t, validation.Password(p), "debe aceptar %q", p)
	}
}

func TestPassword_CasosInvalidos(t *testing.T) {
	invalid := []string{
		"abcdefgh",           // sin mayúscula ni símbolo
		"ABCDEFGH",           // sin símbolo
		"abcdefg!",           // sin mayúscula
		"A!",                 // demasiado corta
		"A!" + strings.Repeat("x", 15), // 17 chars, demasiado larga
		"",
	}
	for _, p := range invalid {
		assert.False(t, validation.Password(p), "debe rechazar %q", p)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Nombre: 4-60 caracteres tras recortar espacios.
// ──────────────────────────────────────────────────────────────────────────────

func TestName_Limites(t *testing.T) {
	assert.True(t, validation.Name("Juan"), "4 chars exactos es válido")
	assert.True(t, validation.Name(strings.Repeat("a", 60)), "60 chars exactos es válido")
	assert.True(t, validation.Name("  Juan  "), "los espacios exteriores no cuentan")

	assert.False(t, validation.Name("Jua"), "3 chars es inválido")
	assert.False(t, validation.Name(strings.Repeat("a", 61)), "61 chars es inválido")
	assert.False(t, validation.Name("   a   "), "espacios no rellenan el mínimo")
}

// Los límites cuentan caracteres, no bytes: un nombre acentuado de 60 runas
// ocupa más de 60 bytes y aun así es válido.
func TestName_CuentaRunasNoBytes(t *testing.T) {
	acentuado := strings.Repeat("á", 60) // 60 runas, 120 bytes
	assert.True(t, validation.Name(acentuado), "60 runas acentuadas es válido")
	assert.False(t, validation.Name(strings.Repeat("á", 61)), "61 runas es inválido")

	assert.True(t, validation.Name("Ñoño"), "4 runas multibyte alcanzan el mínimo")
}

func TestPassword_CuentaRunasNoBytes(t *testing.T) {
	// 16 runas (17 bytes por la á): dentro del límite
	assert.True(t, validation.Password("ábcdefghijklmN1!"))
	// 17 runas: fuera del límite
	assert.False(t, validation.Password("ábcdefghijklmnO1!"))
	// 8 runas multibyte con mayúscula ASCII y símbolo
	assert.True(t, validation.Password("áéíóú#X1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Email y dirección.
// ──────────────────────────────────────────────────────────────────────────────

func TestEmail_Forma(t *testing.T) {
	assert.True(t, validation.Email("x@y.com"))
	assert.True(t, validation.Email("nombre.apellido@sub.dominio.co"))

	assert.False(t, validation.Email("sin-arroba.com"))
	assert.False(t, validation.Email("dos@@arrobas.com"))
	assert.False(t, validation.Email("con espacio@y.com"))
	assert.False(t, validation.Email("x@sinpunto"))
}

func TestNormalizeEmail_Minusculas(t *testing.T) {
	// La unicidad es case-insensitive: "X@y.com" y "x@y.com" son el mismo email.
	assert.Equal(t, "x@y.com", validation.NormalizeEmail("X@y.com"))
	assert.Equal(t, validation.NormalizeEmail("X@Y.COM"), validation.NormalizeEmail(" x@y.com "))
}

func TestAddress_Opcional(t *testing.T) {
	assert.True(t, validation.Address(""), "dirección vacía es válida (opcional)")
	assert.True(t, validation.Address(strings.Repeat("c", 400)))
	assert.False(t, validation.Address(strings.Repeat("c", 401)))
}
