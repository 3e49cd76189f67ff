// Package validation contiene las reglas de validación de campos de la
// aplicación. Son funciones puras: se ejecutan antes de cualquier acceso a
// persistencia y el error se responde de inmediato (HTTP 400).
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Email "RFC-ish": una sola @, sin espacios, con punto en el dominio.
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Password: 8-16 caracteres, al menos una mayúscula y al menos un símbolo
	// del conjunto fijo. Go (RE2) no soporta lookaheads, así que las tres
	// condiciones se chequean por separado.
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordSpecial = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// Name valida el nombre de un usuario o dueño: 4 a 60 caracteres tras recortar
// espacios. Los límites cuentan runas, no bytes: "Ñoño Pérez" son 10.
func Name(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= 4 && n <= 60
}

// Address valida una dirección: opcional, máximo 400 caracteres.
func Address(address string) bool {
	return utf8.RuneCountInString(address) <= 400
}

// Email valida la forma del correo. La comparación de unicidad se hace
// siempre sobre el email en minúsculas (ver NormalizeEmail).
func Email(email string) bool {
	return emailRegexp.MatchString(email)
}

// Password valida la política: 8-16 caracteres, al menos una mayúscula y al
// menos un carácter especial.
func Password(password string) bool {
	n := utf8.RuneCountInString(password)
	if n < 8 || n > 16 {
		return false
	}
	return passwordUpper.MatchString(password) && passwordSpecial.MatchString(password)
}

// NormalizeEmail devuelve el email en minúsculas, listo para persistir o
// comparar. La unicidad de emails es case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
