package entity

import "time"

// Estados externos de User. El estado de tailorInfo va aparte (en minúsculas)
// pero el flujo de verificación los mantiene en sincronía.
const (
	UserStatusPending     = "Pending"
	UserStatusApproved    = "Approved"
	UserStatusUnapproved  = "Unapproved"
	UserStatusBlocked     = "Blocked"
	UserStatusRejected    = "Rejected"
	UserStatusDeactivated = "Deactivated"
)

// Estados internos de TailorInfo, gestionados por el flujo de verificación.
const (
	TailorStatusPending     = "pending"
	TailorStatusApproved    = "approved"
	TailorStatusRejected    = "rejected"
	TailorStatusDeactivated = "deactivated"
)

// SpecialtyRef referencia a una especialidad del catálogo (colaborador externo).
type SpecialtyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TailorInfo perfil anidado del sastre, embebido en User cuando role_id=2.
// Se persiste como JSONB.
type TailorInfo struct {
	BusinessInfo struct {
		BusinessName string   `json:"businessName"`
		OwnerName    string   `json:"ownerName"`
		Whatsapp     string   `json:"whatsapp"`
		Locations    []string `json:"locations"`
	} `json:"businessInfo"`
	ProfessionalInfo struct {
		Gender      string         `json:"gender"`
		Specialties []SpecialtyRef `json:"specialties"`
		Experience  string         `json:"experience"`
		Description string         `json:"description"`
	} `json:"professionalInfo"`
	Services struct {
		HomeMeasurement bool `json:"homeMeasurement"`
		RushOrders      bool `json:"rushOrders"`
	} `json:"services"`
	Documents struct {
		EmiratesID      []string `json:"emiratesId"`
		TradeLicense    []string `json:"tradeLicense"`
		Certificates    []string `json:"certificates"`
		PortfolioImages []string `json:"portfolioImages"`
	} `json:"documents"`
	SubmittedAt     time.Time `json:"submittedAt"`
	Status          string    `json:"status"` // pending, approved, rejected, deactivated
	RejectionReason string    `json:"rejectionReason,omitempty"`
}

// User es el principal genérico (admins y sastres). El email es único dentro
// de esta colección; puede repetirse en customers.
type User struct {
	ID           string
	Email        string
	Password     string // hash bcrypt; vacío = cuenta sin contraseña
	RoleIDNum    int
	Role         *Role // resuelto por el repositorio, nunca embebido
	OwnerName    string
	BusinessName string
	PhoneNumber  string
	Country      string
	City         string
	Status       string // Pending, Approved, Unapproved, Blocked, Rejected, Deactivated
	TailorInfo   *TailorInfo
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var _ Principal = (*User)(nil)

func (u *User) PrincipalID() string  { return u.ID }
func (u *User) RoleID() int          { return u.RoleIDNum }
func (u *User) EmailAddress() string { return u.Email }
func (u *User) PasswordHash() string { return u.Password }

func (u *User) RoleName() string {
	if u.Role != nil {
		return u.Role.Name
	}
	return ""
}

func (u *User) StoredRefreshToken() string { return u.RefreshToken }

// IsTailor acepta tanto role_id=2 como el nombre del rol, porque los datos
// históricos tienen usuarios donde solo uno de los dos campos es fiable.
func (u *User) IsTailor() bool {
	if u.RoleIDNum == RoleIDTailor {
		return true
	}
	return u.Role != nil && u.Role.Name == RoleTailor
}
