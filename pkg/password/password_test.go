package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sastre-api/pkg/password"
)

func TestGenerateTemp_FormatoDeLaCredencial(t *testing.T) {
	temp, err := password.GenerateTemp()
	require.NoError(t, err)

	assert.Len(t, temp, 13, "10 caracteres base36 más el sufijo de 3")
	assert.True(t, strings.HasSuffix(temp, "A1!"),
		"el sufijo fijo garantiza mayúscula, dígito y símbolo")

	body := strings.TrimSuffix(temp, "A1!")
	for _, r := range body {
		assert.Contains(t, "0123456789abcdefghijklmnopqrstuvwxyz", string(r),
			"el cuerpo debe ser base36 en minúsculas")
	}
}

func TestGenerateTemp_NoSeRepite(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		temp, err := password.GenerateTemp()
		require.NoError(t, err)
		assert.False(t, seen[temp], "dos contraseñas temporales no deben coincidir")
		seen[temp] = true
	}
}

func TestHashYCompare(t *testing.T) {
	hash, err := password.Hash("secreta123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secreta123", hash, "el hash nunca es el claro")

	assert.True(t, password.Compare(hash, "secreta123"))
	assert.False(t, password.Compare(hash, "otra-cosa"))
	assert.False(t, password.Compare("", "secreta123"), "hash vacío nunca valida")
}
