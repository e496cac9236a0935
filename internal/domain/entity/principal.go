package entity

// Principal es un actor autenticado. Lo implementan User y Customer: dos
// colecciones concretas con semántica de rol compartida, no una jerarquía.
// La elección de colección la hace el facade de auth según el role_id
// solicitado; el id es disjunto entre colecciones (UUIDs por colección).
type Principal interface {
	PrincipalID() string
	RoleID() int
	RoleName() string
	EmailAddress() string
	// PasswordHash devuelve el hash bcrypt almacenado; vacío si la cuenta
	// aún no tiene contraseña (cuentas creadas por un admin).
	PasswordHash() string
	StoredRefreshToken() string
}
