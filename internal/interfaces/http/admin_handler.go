package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sastre-api/internal/application/admin"
	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/application/order"
	"github.com/tu-usuario/sastre-api/internal/application/tailor"
	"github.com/tu-usuario/sastre-api/internal/domain"
)

// AdminHandler rutas de administración: registro de roles, verificación de
// sastres y estado de envíos.
type AdminHandler struct {
	roleUC   *admin.RoleUseCase
	verifyUC *tailor.VerificationUseCase
	orderUC  *order.UseCase
}

// NewAdminHandler construye el handler de admin.
func NewAdminHandler(roleUC *admin.RoleUseCase, verifyUC *tailor.VerificationUseCase, orderUC *order.UseCase) *AdminHandler {
	return &AdminHandler{roleUC: roleUC, verifyUC: verifyUC, orderUC: orderUC}
}

// CreateRole godoc
// @Summary      Alta en el registro de roles
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoleRequest  true  "name, role_id"
// @Success      201   {object}  dto.RoleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/roles [post]
func (h *AdminHandler) CreateRole(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.roleUC.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ROLE_EXISTS", Message: "el role_id ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRoles godoc
// @Summary      Registro completo de roles
// @Tags         admin
// @Produce      json
// @Success      200   {array}  dto.RoleResponse
// @Router       /api/admin/roles [get]
func (h *AdminHandler) ListRoles(c *fiber.Ctx) error {
	out, err := h.roleUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// VerifyTailor godoc
// @Summary      Transición del estado de verificación de un sastre
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        userId  path  string  true  "ID del sastre"
// @Param        body  body  dto.VerifyTailorRequest  true  "action, reason?, generateTempPassword?"
// @Success      200   {object}  dto.VerifyTailorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/tailors/{userId}/verify [post]
func (h *AdminHandler) VerifyTailor(c *fiber.Ctx) error {
	var in dto.VerifyTailorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.verifyUC.Verify(c.Params("userId"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "User does not exist"})
		case errors.Is(err, domain.ErrNotATailor):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_A_TAILOR", Message: "el usuario no es un sastre"})
		case errors.Is(err, domain.ErrNoEmail):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_EMAIL", Message: "el sastre no tiene email registrado"})
		case errors.Is(err, domain.ErrInvalidTransition):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateShipmentStatus godoc
// @Summary      Actualizar estado de envío y posición del mensajero
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Param        body  body  dto.ShipmentStatusRequest  true  "status, courierGPS?"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/shipments/{orderId}/status [put]
func (h *AdminHandler) UpdateShipmentStatus(c *fiber.Ctx) error {
	var in dto.ShipmentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.orderUC.UpdateShipmentStatus(c.Params("orderId"), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// ShipmentTracking godoc
// @Summary      Coordinación de entrega de un pedido (vista admin)
// @Tags         admin
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Success      200   {object}  dto.TailorTrackingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/shipments/{orderId}/tracking [get]
func (h *AdminHandler) ShipmentTracking(c *fiber.Ctx) error {
	out, err := h.orderUC.ShipmentTracking(c.Params("orderId"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}
