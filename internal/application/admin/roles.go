package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/domain"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
	"github.com/tu-usuario/sastre-api/internal/domain/repository"
)

// RoleUseCase administra el registro de roles. El registro es la fuente de
// verdad de los role_id numéricos: el login por rol y los guards por nombre
// dependen de que 1/2/3 existan sembrados.
type RoleUseCase struct {
	roleRepo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso de roles.
func NewRoleUseCase(roleRepo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo}
}

// Create da de alta una entrada del registro. El role_id numérico es único.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	name := strings.TrimSpace(strings.ToLower(in.Name))
	if name == "" || in.RoleID <= 0 {
		return nil, fmt.Errorf("%w: name y role_id requeridos", domain.ErrInvalidInput)
	}
	existing, err := uc.roleRepo.GetByRoleID(in.RoleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: role_id %d", domain.ErrDuplicate, in.RoleID)
	}
	now := time.Now()
	r := &entity.Role{
		ID:        uuid.New().String(),
		RoleID:    in.RoleID,
		Name:      name,
		Active:    in.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.roleRepo.Create(r); err != nil {
		return nil, err
	}
	return dto.ToRoleResponse(r), nil
}

// List devuelve el registro completo.
func (uc *RoleUseCase) List() ([]*dto.RoleResponse, error) {
	roles, err := uc.roleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.ToRoleResponse(r))
	}
	return out, nil
}
