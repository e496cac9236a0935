package repository

import "github.com/tu-usuario/sastre-api/internal/domain/entity"

// RoleRepository puerto de persistencia del registro de roles.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByRoleID(roleID int) (*entity.Role, error)
	List() ([]*entity.Role, error)
}
