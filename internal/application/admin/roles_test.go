package admin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sastre-api/internal/application/admin"
	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/domain"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
)

type fakeRoleRepo struct {
	roles map[int]*entity.Role
}

func (r *fakeRoleRepo) Create(role *entity.Role) error {
	if _, ok := r.roles[role.RoleID]; ok {
		return domain.ErrDuplicate
	}
	r.roles[role.RoleID] = role
	return nil
}
func (r *fakeRoleRepo) GetByRoleID(roleID int) (*entity.Role, error) { return r.roles[roleID], nil }
func (r *fakeRoleRepo) List() ([]*entity.Role, error) {
	var out []*entity.Role
	for _, role := range r.roles {
		out = append(out, role)
	}
	return out, nil
}

func TestCreateRole_NormalizaElNombre(t *testing.T) {
	repo := &fakeRoleRepo{roles: map[int]*entity.Role{}}
	uc := admin.NewRoleUseCase(repo)

	out, err := uc.Create(dto.CreateRoleRequest{Name: "  Courier  ", RoleID: 4, Active: true})
	require.NoError(t, err)
	assert.Equal(t, "courier", out.Name, "el nombre se guarda en minúsculas y sin espacios")
	assert.Equal(t, 4, out.RoleID)
	assert.NotEmpty(t, out.ID)
}

func TestCreateRole_RoleIDDuplicado(t *testing.T) {
	repo := &fakeRoleRepo{roles: map[int]*entity.Role{
		2: {ID: "r2", RoleID: 2, Name: entity.RoleTailor, Active: true},
	}}
	uc := admin.NewRoleUseCase(repo)

	_, err := uc.Create(dto.CreateRoleRequest{Name: "tailor", RoleID: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateRole_Invalidos(t *testing.T) {
	uc := admin.NewRoleUseCase(&fakeRoleRepo{roles: map[int]*entity.Role{}})

	_, err := uc.Create(dto.CreateRoleRequest{Name: "   ", RoleID: 4})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateRoleRequest{Name: "courier", RoleID: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListRoles(t *testing.T) {
	repo := &fakeRoleRepo{roles: map[int]*entity.Role{
		1: {ID: "r1", RoleID: 1, Name: entity.RoleAdmin, Active: true},
		3: {ID: "r3", RoleID: 3, Name: entity.RoleCustomer, Active: true},
	}}
	out, err := admin.NewRoleUseCase(repo).List()
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
