package entity

import "time"

// Estados de Customer (solo dos; los clientes no pasan por verificación).
const (
	CustomerStatusApproved    = "Approved"
	CustomerStatusDeactivated = "Deactivated"
)

// GeoPoint coordenadas [longitud, latitud] del cliente.
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Customer es el principal de la colección de clientes. Colección separada de
// users: mismo shape de credenciales pero indexación y campos propios.
type Customer struct {
	ID            string
	Email         string
	Password      string // hash bcrypt; puede estar vacío (login federado)
	RoleIDNum     int
	Role          *Role
	Name          string
	ContactNumber string
	Status        string // Approved, Deactivated
	Measurements  map[string]float64
	Location      GeoPoint
	RefreshToken  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var _ Principal = (*Customer)(nil)

func (c *Customer) PrincipalID() string  { return c.ID }
func (c *Customer) RoleID() int          { return c.RoleIDNum }
func (c *Customer) EmailAddress() string { return c.Email }
func (c *Customer) PasswordHash() string { return c.Password }

func (c *Customer) RoleName() string {
	if c.Role != nil {
		return c.Role.Name
	}
	return ""
}

func (c *Customer) StoredRefreshToken() string { return c.RefreshToken }
