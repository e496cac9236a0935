package dto

import (
	"time"

	"github.com/tu-usuario/sastre-api/internal/domain/entity"
)

// LoginRequest cuerpo de POST /auth/login/:roleId. El identificador se
// interpreta como email si contiene '@', si no como teléfono. Provider no
// vacío indica login federado: el token del proveedor ya fue verificado por
// un middleware aparte y aquí no se comprueba contraseña.
type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
	Provider     string `json:"provider"`
}

// LoginResponse par de tokens más el principal sin campos sensibles.
type LoginResponse struct {
	User         interface{} `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// TokenPair resultado de la rotación de refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest cuerpo de POST /auth/refresh-token (el token también puede
// venir en cookie).
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RegisterRequest registro de principals. RoleID decide la colección:
// 3 crea un Customer, cualquier otro un User. Los campos de sastre solo se
// leen cuando RoleID es 2.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"user_role"`

	// User (admin/sastre)
	OwnerName    string `json:"ownerName"`
	BusinessName string `json:"businessName"`
	PhoneNumber  string `json:"phone_number"`
	Country      string `json:"country"`
	City         string `json:"city"`

	// Perfil de sastre
	Whatsapp        string   `json:"whatsapp"`
	Locations       []string `json:"locations"`
	Gender          string   `json:"gender"`
	Specialties     []string `json:"specialties"`
	Experience      string   `json:"experience"`
	Description     string   `json:"description"`
	HomeMeasurement bool     `json:"homeMeasurement"`
	RushOrders      bool     `json:"rushOrders"`

	// Customer
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
}

// ChangePasswordRequest cuerpo de POST /auth/change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UserResponse proyección de User sin password ni refresh token.
type UserResponse struct {
	ID           string             `json:"id"`
	Email        string             `json:"email"`
	RoleID       int                `json:"role_id"`
	Role         string             `json:"role,omitempty"`
	OwnerName    string             `json:"ownerName,omitempty"`
	BusinessName string             `json:"businessName,omitempty"`
	PhoneNumber  string             `json:"phone_number,omitempty"`
	Country      string             `json:"country,omitempty"`
	City         string             `json:"city,omitempty"`
	Status       string             `json:"status"`
	TailorInfo   *entity.TailorInfo `json:"tailorInfo,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// CustomerResponse proyección de Customer sin campos sensibles.
type CustomerResponse struct {
	ID            string             `json:"id"`
	Email         string             `json:"email"`
	RoleID        int                `json:"role_id"`
	Role          string             `json:"role,omitempty"`
	Name          string             `json:"name"`
	ContactNumber string             `json:"contactNumber"`
	Status        string             `json:"status"`
	Measurements  map[string]float64 `json:"measurements,omitempty"`
	Location      entity.GeoPoint    `json:"location"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// ToUserResponse mapea la entidad a su proyección pública.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		RoleID:       u.RoleIDNum,
		Role:         u.RoleName(),
		OwnerName:    u.OwnerName,
		BusinessName: u.BusinessName,
		PhoneNumber:  u.PhoneNumber,
		Country:      u.Country,
		City:         u.City,
		Status:       u.Status,
		TailorInfo:   u.TailorInfo,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToCustomerResponse mapea la entidad a su proyección pública.
func ToCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:            c.ID,
		Email:         c.Email,
		RoleID:        c.RoleIDNum,
		Role:          c.RoleName(),
		Name:          c.Name,
		ContactNumber: c.ContactNumber,
		Status:        c.Status,
		Measurements:  c.Measurements,
		Location:      c.Location,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToPrincipalResponse elige la proyección según la colección de origen.
func ToPrincipalResponse(p entity.Principal) interface{} {
	switch v := p.(type) {
	case *entity.User:
		return ToUserResponse(v)
	case *entity.Customer:
		return ToCustomerResponse(v)
	default:
		return nil
	}
}
