package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sastre-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "sastre-api-test"
)

func TestAccess_GenerateYParse(t *testing.T) {
	tok, err := jwt.GenerateAccess(testSecret, testUserID, "tailor", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := jwt.ParseAccess(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "tailor", role)
}

func TestRefresh_RoleIDViajaEnElClaim(t *testing.T) {
	tok, err := jwt.GenerateRefresh(testSecret, testUserID, 3, testIssuer, 240)
	require.NoError(t, err)

	userID, roleID, err := jwt.ParseRefresh(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, 3, roleID, "el role_id decide la colección en la rotación")
}

// Los refresh emitidos antes de la migración no traen role_id; el parser debe
// devolver 0 para que el caller asuma la colección de users.
func TestRefresh_TokenLegacySinRoleID(t *testing.T) {
	tok, err := jwt.GenerateRefresh(testSecret, testUserID, 0, testIssuer, 240)
	require.NoError(t, err)

	_, roleID, err := jwt.ParseRefresh(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, 0, roleID)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := jwt.GenerateAccess(testSecret, testUserID, "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = jwt.ParseAccess("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.GenerateAccess(testSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = jwt.ParseAccess(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.GenerateAccess("", testUserID, "admin", testIssuer, 60)
	assert.Error(t, err)

	_, err = jwt.GenerateRefresh("", testUserID, 1, testIssuer, 240)
	assert.Error(t, err)
}
