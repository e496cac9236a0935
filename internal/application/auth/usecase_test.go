package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sastre-api/internal/application/auth"
	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/domain"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
	"github.com/tu-usuario/sastre-api/pkg/jwt"
	"github.com/tu-usuario/sastre-api/pkg/logger"
	"github.com/tu-usuario/sastre-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: map[string]*entity.User{}} }

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, e := range r.users {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByPhone(phone string) (*entity.User, error) {
	for _, u := range r.users {
		if u.PhoneNumber == phone {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) UpdateRefreshToken(id, token string) error {
	if u, ok := r.users[id]; ok {
		u.RefreshToken = token
	}
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	for _, e := range r.customers {
		if e.Email == c.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.customers[c.ID] = c
	return nil
}
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) { return r.customers[id], nil }
func (r *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) GetByContactNumber(contactNumber string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.ContactNumber == contactNumber {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) Update(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) UpdateRefreshToken(id, token string) error {
	if c, ok := r.customers[id]; ok {
		c.RefreshToken = token
	}
	return nil
}

type fakeRoleRepo struct {
	roles map[int]*entity.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[int]*entity.Role{
		1: {ID: "r1", RoleID: 1, Name: entity.RoleAdmin, Active: true},
		2: {ID: "r2", RoleID: 2, Name: entity.RoleTailor, Active: true},
		3: {ID: "r3", RoleID: 3, Name: entity.RoleCustomer, Active: true},
	}}
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

// recordingNotifier captura las notificaciones encoladas.
type recordingNotifier struct {
	emails []string // "to|subject"
	pushes []string // "principal|message"
}

func (n *recordingNotifier) EnqueueEmail(to, subject, body string) {
	n.emails = append(n.emails, to+"|"+subject)
}
func (n *recordingNotifier) EnqueuePush(principalID, message string) {
	n.pushes = append(n.pushes, principalID+"|"+message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "auth-test-secret"

type fixture struct {
	uc        *auth.AuthUseCase
	users     *fakeUserRepo
	customers *fakeCustomerRepo
	roles     *fakeRoleRepo
	notifier  *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := newFakeUserRepo()
	customers := newFakeCustomerRepo()
	roles := newFakeRoleRepo()
	notifier := &recordingNotifier{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := auth.NewAuthUseCase(users, customers, roles, notifier, auth.JWTConfig{
		Secret:           testSecret,
		AccessExpMinutes: 60,
		RefreshExpHours:  240,
		Issuer:           "sastre-api-test",
	}, log)
	return &fixture{uc: uc, users: users, customers: customers, roles: roles, notifier: notifier}
}

func (f *fixture) addUser(t *testing.T, id, email, phone, plain string, roleID int) *entity.User {
	t.Helper()
	hash := ""
	if plain != "" {
		var err error
		hash, err = password.Hash(plain)
		require.NoError(t, err)
	}
	u := &entity.User{
		ID: id, Email: email, PhoneNumber: phone, Password: hash,
		RoleIDNum: roleID, Role: f.roles.roles[roleID],
		Status: entity.UserStatusApproved,
	}
	f.users.users[id] = u
	return u
}

func (f *fixture) addCustomer(t *testing.T, id, email, contact, plain string) *entity.Customer {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	c := &entity.Customer{
		ID: id, Email: email, ContactNumber: contact, Password: hash,
		RoleIDNum: entity.RoleIDCustomer, Role: f.roles.roles[3],
		Status: entity.CustomerStatusApproved,
	}
	f.customers.customers[id] = c
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_SastrePorEmail(t *testing.T) {
	f := newFixture(t)
	u := f.addUser(t, "u1", "sastre@test.com", "+971500000001", "secreta123", 2)

	out, err := f.uc.Login(dto.LoginRequest{EmailOrPhone: "sastre@test.com", Password: "secreta123"}, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, out.RefreshToken, u.RefreshToken,
		"el refresh emitido debe quedar persistido en el principal")
}

func TestLogin_ClientePorTelefono(t *testing.T) {
	f := newFixture(t)
	f.addCustomer(t, "c1", "cliente@test.com", "+971500000009", "secreta123")

	// Sin '@' el identificador se busca como número de contacto.
	out, err := f.uc.Login(dto.LoginRequest{EmailOrPhone: "+971500000009", Password: "secreta123"}, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestLogin_RolNoCoincide_EsUserNotFound(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "sastre@test.com", "", "secreta123", 2)

	// Un sastre intentando entrar como admin no filtra su existencia.
	_, err := f.uc.Login(dto.LoginRequest{EmailOrPhone: "sastre@test.com", Password: "secreta123"}, 1)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_AdminEntraPorCualquierRol(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "a1", "admin@test.com", "", "secreta123", 1)

	out, err := f.uc.Login(dto.LoginRequest{EmailOrPhone: "admin@test.com", Password: "secreta123"}, 2)
	require.NoError(t, err, "role_id 1 pasa el check de rol de cualquier login")
	assert.NotEmpty(t, out.AccessToken)
}

func TestLogin_ErroresDeAusencia(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Login(dto.LoginRequest{EmailOrPhone: "nadie@test.com", Password: "x"}, 2)
	assert.ErrorIs(t, err, domain.ErrEmailNotFound)

	_, err = f.uc.Login(dto.LoginRequest{EmailOrPhone: "+971599999999", Password: "x"}, 3)
	assert.ErrorIs(t, err, domain.ErrPhoneNotFound)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "sastre@test.com", "", "secreta123", 2)

	_, err := f.uc.Login(dto.LoginRequest{EmailOrPhone: "sastre@test.com", Password: "equivocada"}, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_FederadoNoValidaPassword(t *testing.T) {
	f := newFixture(t)
	c := f.addCustomer(t, "c1", "cliente@test.com", "", "irrelevante")
	c.Password = "" // cuenta federada sin contraseña local

	out, err := f.uc.Login(dto.LoginRequest{EmailOrPhone: "cliente@test.com", Provider: "google"}, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestLogin_IdentificadorVacio(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Login(dto.LoginRequest{}, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_RotacionFeliz(t *testing.T) {
	f := newFixture(t)
	u := f.addUser(t, "u1", "sastre@test.com", "", "secreta123", 2)

	login, err := f.uc.Login(dto.LoginRequest{EmailOrPhone: "sastre@test.com", Password: "secreta123"}, 2)
	require.NoError(t, err)

	out, err := f.uc.Refresh(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, out.RefreshToken, u.RefreshToken, "la rotación persiste el refresh nuevo")
}

func TestRefresh_ReplayDetectado(t *testing.T) {
	f := newFixture(t)
	u := f.addUser(t, "u1", "sastre@test.com", "", "secreta123", 2)

	login, err := f.uc.Login(dto.LoginRequest{EmailOrPhone: "sastre@test.com", Password: "secreta123"}, 2)
	require.NoError(t, err)

	// Otro escritor ya rotó: el almacenado no coincide con el presentado.
	u.RefreshToken = "otro-token-mas-nuevo"

	_, err = f.uc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenReused)
}

func TestRefresh_RoleIDDecideColeccion(t *testing.T) {
	f := newFixture(t)
	c := f.addCustomer(t, "c1", "cliente@test.com", "", "secreta123")

	tok, err := jwt.GenerateRefresh(testSecret, "c1", 3, "sastre-api-test", 240)
	require.NoError(t, err)
	c.RefreshToken = tok

	out, err := f.uc.Refresh(tok)
	require.NoError(t, err, "role_id 3 en el claim resuelve contra customers")
	assert.NotEmpty(t, out.AccessToken)
}

func TestRefresh_TokenLegacyCaeEnUsers(t *testing.T) {
	f := newFixture(t)
	u := f.addUser(t, "u1", "sastre@test.com", "", "secreta123", 2)

	// role_id 0 = token emitido antes de la migración: colección users.
	tok, err := jwt.GenerateRefresh(testSecret, "u1", 0, "sastre-api-test", 240)
	require.NoError(t, err)
	u.RefreshToken = tok

	_, err = f.uc.Refresh(tok)
	require.NoError(t, err)
}

func TestRefresh_TokenInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Refresh("no.es.un.jwt")
	assert.ErrorIs(t, err, domain.ErrTokenReused)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout / ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_LimpiaElRefreshYEsIdempotente(t *testing.T) {
	f := newFixture(t)
	u := f.addUser(t, "u1", "sastre@test.com", "", "secreta123", 2)
	u.RefreshToken = "algo"

	require.NoError(t, f.uc.Logout(u))
	assert.Empty(t, u.RefreshToken)

	require.NoError(t, f.uc.Logout(u), "repetir el logout no es error")
	require.NoError(t, f.uc.Logout(nil), "logout sin sesión tampoco")
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	u := f.addUser(t, "u1", "sastre@test.com", "", "vieja1234", 2)

	err := f.uc.ChangePassword(u, dto.ChangePasswordRequest{OldPassword: "equivocada", NewPassword: "nueva1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = f.uc.ChangePassword(u, dto.ChangePasswordRequest{OldPassword: "vieja1234", NewPassword: "nueva1234"})
	require.NoError(t, err)
	assert.True(t, password.Compare(u.Password, "nueva1234"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_RolInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Register(dto.RegisterRequest{Email: "x@test.com", Password: "12345678", RoleID: 9}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegister_ClienteNaceAprobado(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Register(dto.RegisterRequest{
		Email: "cliente@test.com", Password: "12345678", RoleID: 3, Name: "Cliente",
	}, nil)
	require.NoError(t, err)

	resp, ok := out.(*dto.CustomerResponse)
	require.True(t, ok, "role_id 3 crea en la colección customers")
	assert.Equal(t, entity.CustomerStatusApproved, resp.Status)
}

func TestRegister_SastreNacePendiente(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Register(dto.RegisterRequest{
		Email: "sastre@test.com", Password: "12345678", RoleID: 2,
		BusinessName: "Sastrería Norte", OwnerName: "Amal",
	}, nil)
	require.NoError(t, err)

	resp, ok := out.(*dto.UserResponse)
	require.True(t, ok)
	assert.Equal(t, entity.UserStatusPending, resp.Status)
	require.NotNil(t, resp.TailorInfo)
	assert.Equal(t, entity.TailorStatusPending, resp.TailorInfo.Status)

	require.Len(t, f.notifier.emails, 1, "el alta de sastre encola el email de bienvenida")
	assert.Contains(t, f.notifier.emails[0], "sastre@test.com")
}

func TestRegister_AdminPreapruebaAlSastre(t *testing.T) {
	f := newFixture(t)
	admin := f.addUser(t, "a1", "admin@test.com", "", "secreta123", 1)

	out, err := f.uc.Register(dto.RegisterRequest{
		Email: "sastre@test.com", Password: "12345678", RoleID: 2,
	}, admin)
	require.NoError(t, err)

	resp := out.(*dto.UserResponse)
	assert.Equal(t, entity.UserStatusApproved, resp.Status)
	assert.Equal(t, entity.TailorStatusApproved, resp.TailorInfo.Status)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "sastre@test.com", "", "secreta123", 2)

	_, err := f.uc.Register(dto.RegisterRequest{Email: "sastre@test.com", Password: "12345678", RoleID: 2}, nil)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveByID
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveByID_UsersPrimeroLuegoCustomers(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "sastre@test.com", "", "x", 2)
	f.addCustomer(t, "c1", "cliente@test.com", "", "x")

	p, kind, err := f.uc.ResolveByID("u1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "user", kind)

	p, kind, err = f.uc.ResolveByID("c1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "customer", kind)

	p, _, err = f.uc.ResolveByID("nadie")
	require.NoError(t, err)
	assert.Nil(t, p)
}
