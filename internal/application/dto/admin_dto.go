package dto

import (
	"time"

	"github.com/tu-usuario/sastre-api/internal/domain/entity"
)

// Acciones del flujo de verificación de sastres.
const (
	VerifyActionApprove    = "approve"
	VerifyActionReject     = "reject"
	VerifyActionDeactivate = "deactivate"
	VerifyActionActivate   = "activate"
)

// VerifyTailorRequest cuerpo de POST /admin/tailors/:userId/verify.
type VerifyTailorRequest struct {
	Action               string `json:"action"`
	Reason               string `json:"reason"`
	GenerateTempPassword bool   `json:"generateTempPassword"`
}

// VerifyTailorResponse resultado de la transición. TempPassword solo viene en
// approve cuando se sintetizó una credencial: es la única vez que existe en
// claro fuera del email.
type VerifyTailorResponse struct {
	User         *UserResponse `json:"user"`
	TempPassword string        `json:"tempPassword,omitempty"`
}

// CreateRoleRequest alta en el registro de roles.
type CreateRoleRequest struct {
	Name   string `json:"name"`
	RoleID int    `json:"role_id"`
	Active bool   `json:"active"`
}

// RoleResponse proyección de una entrada del registro.
type RoleResponse struct {
	ID        string    `json:"id"`
	RoleID    int       `json:"role_id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToRoleResponse mapea la entidad Role.
func ToRoleResponse(r *entity.Role) *RoleResponse {
	if r == nil {
		return nil
	}
	return &RoleResponse{
		ID:        r.ID,
		RoleID:    r.RoleID,
		Name:      r.Name,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
	}
}

// ShipmentStatusRequest actualización admin del sub-estado de envío.
type ShipmentStatusRequest struct {
	Status     string             `json:"status"`
	CourierGPS *entity.CourierGPS `json:"courierGPS"`
}
