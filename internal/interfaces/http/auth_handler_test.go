package http_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpiface "github.com/tu-usuario/sastre-api/internal/interfaces/http"

	"github.com/tu-usuario/sastre-api/internal/application/auth"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
	"github.com/tu-usuario/sastre-api/pkg/config"
	"github.com/tu-usuario/sastre-api/pkg/logger"
	"github.com/tu-usuario/sastre-api/pkg/password"
)

// Fakes mínimos de los puertos de persistencia para montar el handler.

type loginUserRepo struct {
	users map[string]*entity.User
}

func (r *loginUserRepo) Create(u *entity.User) error             { r.users[u.ID] = u; return nil }
func (r *loginUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *loginUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *loginUserRepo) GetByPhone(phone string) (*entity.User, error) {
	for _, u := range r.users {
		if u.PhoneNumber == phone {
			return u, nil
		}
	}
	return nil, nil
}
func (r *loginUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *loginUserRepo) UpdateRefreshToken(id, token string) error {
	if u, ok := r.users[id]; ok {
		u.RefreshToken = token
	}
	return nil
}

type loginCustomerRepo struct{}

func (loginCustomerRepo) Create(*entity.Customer) error                       { return nil }
func (loginCustomerRepo) GetByID(string) (*entity.Customer, error)            { return nil, nil }
func (loginCustomerRepo) GetByEmail(string) (*entity.Customer, error)         { return nil, nil }
func (loginCustomerRepo) GetByContactNumber(string) (*entity.Customer, error) { return nil, nil }
func (loginCustomerRepo) Update(*entity.Customer) error                       { return nil }
func (loginCustomerRepo) UpdateRefreshToken(string, string) error             { return nil }

type loginRoleRepo struct{}

func (loginRoleRepo) Create(*entity.Role) error { return nil }
func (loginRoleRepo) GetByRoleID(roleID int) (*entity.Role, error) {
	names := map[int]string{1: entity.RoleAdmin, 2: entity.RoleTailor, 3: entity.RoleCustomer}
	if name, ok := names[roleID]; ok {
		return &entity.Role{RoleID: roleID, Name: name, Active: true}, nil
	}
	return nil, nil
}
func (loginRoleRepo) List() ([]*entity.Role, error) { return nil, nil }

type noopNotifier struct{}

func (noopNotifier) EnqueueEmail(to, subject, body string) {}
func (noopNotifier) EnqueuePush(principalID, message string) {}

func newLoginApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := password.Hash("secreta123")
	require.NoError(t, err)

	tailorRole := &entity.Role{RoleID: entity.RoleIDTailor, Name: entity.RoleTailor, Active: true}
	users := &loginUserRepo{users: map[string]*entity.User{
		"t1": {
			ID: "t1", Email: "sastre@test.com", PhoneNumber: "+971500000001",
			Password: hash, RoleIDNum: entity.RoleIDTailor, Role: tailorRole,
			Status: entity.UserStatusApproved,
		},
	}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := auth.NewAuthUseCase(users, loginCustomerRepo{}, loginRoleRepo{}, noopNotifier{}, auth.JWTConfig{
		Secret:           testSecret,
		AccessExpMinutes: 60,
		RefreshExpHours:  240,
		Issuer:           "sastre-api-test",
	}, log)

	handler := httpiface.NewAuthHandler(uc, config.JWTConfig{Secret: testSecret, AccessExpMinutes: 60, RefreshExpHours: 240})
	app := fiber.New()
	app.Post("/api/auth/login/:roleId", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, roleID, body string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/auth/login/"+roleID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	out := map[string]string{}
	if resp.StatusCode != fiber.StatusOK {
		out = decodeBody(t, resp.Body)
	}
	return resp.StatusCode, out
}

func TestLogin_IdentificadorDesconocidoEs400(t *testing.T) {
	app := newLoginApp(t)

	status, body := postLogin(t, app, "2", `{"emailOrPhone":"nadie@test.com","password":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, status, "email desconocido es error del cliente, no 404")
	assert.Equal(t, "EMAIL_NOT_FOUND", body["code"])
	assert.Equal(t, "Email does not exist", body["message"])

	status, body = postLogin(t, app, "2", `{"emailOrPhone":"+971599999999","password":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "PHONE_NOT_FOUND", body["code"])
	assert.Equal(t, "Phone number does not exist", body["message"])
}

func TestLogin_MismatchDeRolEs404(t *testing.T) {
	app := newLoginApp(t)

	// El sastre existe, pero pide entrar como admin: el 404 no filtra su existencia.
	status, body := postLogin(t, app, "1", `{"emailOrPhone":"sastre@test.com","password":"secreta123"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "USER_NOT_FOUND", body["code"])
	assert.Equal(t, "User does not exist", body["message"])
}

func TestLogin_CredencialesInvalidasEs401(t *testing.T) {
	app := newLoginApp(t)

	status, body := postLogin(t, app, "2", `{"emailOrPhone":"sastre@test.com","password":"equivocada"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
}

func TestLogin_Feliz(t *testing.T) {
	app := newLoginApp(t)

	status, _ := postLogin(t, app, "2", `{"emailOrPhone":"sastre@test.com","password":"secreta123"}`)
	assert.Equal(t, fiber.StatusOK, status)
}
