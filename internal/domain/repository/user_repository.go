package repository

import "github.com/tu-usuario/sastre-api/internal/domain/entity"

// UserRepository puerto de persistencia para User (admins y sastres).
// Los Get* devuelven (nil, nil) cuando no hay fila; el rol se resuelve
// siempre con join al registro de roles.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByPhone(phone string) (*entity.User, error)
	Update(user *entity.User) error
	// UpdateRefreshToken sobreescribe el refresh token almacenado (sesión
	// única por principal; vacío = revocar).
	UpdateRefreshToken(id, token string) error
}
