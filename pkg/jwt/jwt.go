package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims claims del token de acceso (corto). Se añade Role para que los
// gates del middleware puedan decidir sin consultar la DB.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "admin" | "tailor" | "customer"
}

// RefreshClaims claims del refresh token (largo). RoleID va embebido porque
// la colección a consultar (users vs customers) no puede inferirse del id:
// en el refresh hay que re-resolver colección solo con el token.
// Los tokens legacy no traen role_id; el parser devuelve 0 y el caller asume
// colección no-customer.
type RefreshClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	RoleID int    `json:"role_id,omitempty"`
}

// GenerateAccess genera el token de acceso firmado HS256.
func GenerateAccess(secret, userID, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateRefresh genera el refresh token con el role_id resuelto.
func GenerateRefresh(secret, userID string, roleID int, issuer string, expHours int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		UserID: userID,
		RoleID: roleID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccess valida el token de acceso y devuelve userID y role.
func ParseAccess(secret, tokenString string) (userID, role string, err error) {
	claims := &AccessClaims{}
	if err := parse(secret, tokenString, claims); err != nil {
		return "", "", err
	}
	return claims.UserID, claims.Role, nil
}

// ParseRefresh valida el refresh token y devuelve userID y role_id (0 si el
// token es legacy y no trae el claim).
func ParseRefresh(secret, tokenString string) (userID string, roleID int, err error) {
	claims := &RefreshClaims{}
	if err := parse(secret, tokenString, claims); err != nil {
		return "", 0, err
	}
	return claims.UserID, claims.RoleID, nil
}

func parse(secret, tokenString string, claims jwt.Claims) error {
	if secret == "" {
		return fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("claims inválidos")
	}
	return nil
}
