package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/Pranshau/Rating-App/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "rating-app-test"
	testExpMin = 480 // 8 horas, igual que producción
)

// Round-trip: los claims del token emitido deben volver intactos al verificar.
func TestJWT_GenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "7", "dueno@tienda.com", "owner", "Dueño Tienda", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, "7", id.ID)
	assert.Equal(t, "dueno@tienda.com", id.Email)
	assert.Equal(t, "owner", id.Role)
	assert.Equal(t, "Dueño Tienda", id.Name)
}

// Token con expiración forzada al pasado → error específico de expiración.
func TestJWT_TokenExpirado_RetornaErrExpired(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "7", "a@b.com", "user", "Usuario Prueba", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired,
		"token expirado debe retornar ErrExpired, no un error genérico")
}

// Firma con otro secret → malformado, no expirado.
func TestJWT_SecretIncorrecto_RetornaErrMalformed(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "7", "a@b.com", "admin", "Admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrMalformed)
}

// Cadena que ni siquiera es un JWT → malformado.
func TestJWT_BasuraNoEsToken_RetornaErrMalformed(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "esto.no-es.un-token")
	assert.ErrorIs(t, err, pkgjwt.ErrMalformed)
}

// Secret vacío es un error de configuración, fatal en el arranque del proceso.
func TestJWT_SecretVacio_RetornaErrMissingSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", "7", "a@b.com", "user", "Usuario", testIssuer, testExpMin)
	assert.ErrorIs(t, err, pkgjwt.ErrMissingSecret)

	_, err = pkgjwt.Parse("", "cualquier.cosa.aqui")
	assert.ErrorIs(t, err, pkgjwt.ErrMissingSecret)
}
