package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/application/order"
)

// LogisticsHandler coordinación de entregas propuesta por el cliente.
type LogisticsHandler struct {
	orderUC *order.UseCase
}

// NewLogisticsHandler construye el handler de logística.
func NewLogisticsHandler(orderUC *order.UseCase) *LogisticsHandler {
	return &LogisticsHandler{orderUC: orderUC}
}

// ScheduleDelivery godoc
// @Summary      Proponer fecha y hora de entrega
// @Tags         logistics
// @Accept       json
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Param        body  body  dto.ScheduleDeliveryRequest  true  "preferredDateTime"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/logistics/orders/{orderId}/schedule [post]
func (h *LogisticsHandler) ScheduleDelivery(c *fiber.Ctx) error {
	var in dto.ScheduleDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.orderUC.ScheduleDelivery(c.Params("orderId"), GetPrincipalID(c), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}
