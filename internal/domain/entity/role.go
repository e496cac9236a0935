package entity

import "time"

// Identificadores numéricos de rol. El registro de roles es extensible
// (pueden existir otros role_id), pero estos tres son los que el núcleo conoce.
const (
	RoleIDAdmin    = 1
	RoleIDTailor   = 2
	RoleIDCustomer = 3
)

// Nombres de rol usados por los gates del middleware.
const (
	RoleAdmin    = "admin"
	RoleTailor   = "tailor"
	RoleCustomer = "customer"
)

// Role es una entrada del registro de roles. Los principals la referencian
// por role_id; nunca se embebe en el documento del principal.
type Role struct {
	ID        string
	RoleID    int
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
