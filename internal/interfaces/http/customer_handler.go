package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/application/order"
)

// CustomerHandler rutas del cliente: crear pedidos, historial, tracking y
// devoluciones.
type CustomerHandler struct {
	orderUC *order.UseCase
}

// NewCustomerHandler construye el handler de cliente.
func NewCustomerHandler(orderUC *order.UseCase) *CustomerHandler {
	return &CustomerHandler{orderUC: orderUC}
}

// PlaceOrder godoc
// @Summary      Crear un pedido contra un servicio del catálogo
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "service_id, deliveryOption?"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customer/orders [post]
func (h *CustomerHandler) PlaceOrder(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.orderUC.Place(GetPrincipalID(c), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOrders godoc
// @Summary      Historial de pedidos del cliente
// @Tags         customer
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200   {array}  dto.OrderResponse
// @Router       /api/customer/orders [get]
func (h *CustomerHandler) ListOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.orderUC.ListForCustomer(GetPrincipalID(c), page)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// Tracking godoc
// @Summary      Proyección de tracking del cliente
// @Tags         customer
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Success      200   {object}  dto.CustomerTrackingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customer/orders/{orderId}/tracking [get]
func (h *CustomerHandler) Tracking(c *fiber.Ctx) error {
	out, err := h.orderUC.TrackingForCustomer(c.Params("orderId"), GetPrincipalID(c))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// InitiateReturn godoc
// @Summary      Iniciar una devolución
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Param        body  body  dto.ReturnRequest  true  "reason?, photos?"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customer/orders/{orderId}/return [post]
func (h *CustomerHandler) InitiateReturn(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.orderUC.InitiateReturn(c.Params("orderId"), GetPrincipalID(c), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}
