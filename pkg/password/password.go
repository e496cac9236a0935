package password

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// tempSuffix garantiza al menos una mayúscula, un dígito y un símbolo en la
// contraseña temporal, independientemente del cuerpo aleatorio.
const tempSuffix = "A1!"

// tempBodyLen longitud del cuerpo base36. El contrato externo exige ≥10
// caracteres base36 más el sufijo fijo.
const tempBodyLen = 10

// GenerateTemp sintetiza una contraseña temporal con entropía de crypto/rand.
// Se devuelve UNA vez en la respuesta de aprobación y se envía por email;
// solo el hash bcrypt se persiste.
func GenerateTemp() (string, error) {
	buf := make([]byte, tempBodyLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar contraseña temporal: %w", err)
	}
	body := make([]byte, tempBodyLen)
	for i, b := range buf {
		body[i] = base36[int(b)%len(base36)]
	}
	return string(body) + tempSuffix, nil
}

// Hash aplica bcrypt con el costo por defecto.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Compare verifica una contraseña en claro contra su hash bcrypt.
func Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
