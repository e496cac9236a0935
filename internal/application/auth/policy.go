package auth

import "github.com/tu-usuario/sastre-api/internal/domain/entity"

// IsAdminOverride es la regla global de escalación: un principal con role_id 1
// (admin de plataforma) puede autenticarse por cualquier endpoint de login con
// rol, aunque el rol solicitado no coincida con el suyo. Es una concesión
// deliberada del producto, no un bug; vive como función con nombre para que
// sea auditable y testeable aislada en vez de un condicional inline.
func IsAdminOverride(p entity.Principal) bool {
	return p != nil && p.RoleID() == entity.RoleIDAdmin
}
