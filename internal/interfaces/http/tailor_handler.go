package http

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/application/order"
	"github.com/tu-usuario/sastre-api/internal/application/ports"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
)

// TailorHandler rutas del sastre sobre sus pedidos.
type TailorHandler struct {
	orderUC *order.UseCase
	media   ports.MediaStorage
}

// NewTailorHandler construye el handler de sastre.
func NewTailorHandler(orderUC *order.UseCase, media ports.MediaStorage) *TailorHandler {
	return &TailorHandler{orderUC: orderUC, media: media}
}

// ListOrders godoc
// @Summary      Pedidos del sastre autenticado
// @Tags         tailor
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200   {array}  dto.OrderResponse
// @Router       /api/tailor/orders [get]
func (h *TailorHandler) ListOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.orderUC.ListForTailor(GetPrincipalID(c), page)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// GetOrder godoc
// @Summary      Detalle de un pedido propio
// @Tags         tailor
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tailor/orders/{orderId} [get]
func (h *TailorHandler) GetOrder(c *fiber.Ctx) error {
	out, err := h.orderUC.GetForTailor(c.Params("orderId"), GetPrincipalID(c))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Fijar estado del ciclo de vida
// @Tags         tailor
// @Accept       json
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "status, version?"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tailor/orders/{orderId}/status [put]
func (h *TailorHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.orderUC.UpdateStatus(c.Params("orderId"), GetPrincipalID(c), in.Status, in.Version)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// BatchOrders godoc
// @Summary      Acción por lotes sobre pedidos propios (deprecado)
// @Tags         tailor
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchOrdersRequest  true  "orderIds, action"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tailor/orders/batch [post]
func (h *TailorHandler) BatchOrders(c *fiber.Ctx) error {
	var in dto.BatchOrdersRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	n, err := h.orderUC.BatchProcess(GetPrincipalID(c), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(fiber.Map{"processed": n})
}

// MarkRush godoc
// @Summary      Marcar pedido como urgente (idempotente)
// @Tags         tailor
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tailor/orders/{orderId}/rush [post]
func (h *TailorHandler) MarkRush(c *fiber.Ctx) error {
	out, err := h.orderUC.MarkRush(c.Params("orderId"), GetPrincipalID(c))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// uploadPhotos sube cada archivo del form y devuelve sus URLs junto a los
// headers originales, en el orden recibido.
func (h *TailorHandler) uploadPhotos(c *fiber.Ctx, prefix, orderID string, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("abrir archivo %s: %w", fh.Filename, err)
		}
		key := fmt.Sprintf("%s/%s/%d_%s", prefix, orderID, time.Now().UnixNano(), filepath.Base(fh.Filename))
		url, err := h.media.Upload(c.Context(), key, fh.Header.Get("Content-Type"), f, fh.Size)
		f.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// UploadQCPhotos godoc
// @Summary      Anexar fotos de control de calidad
// @Tags         tailor
// @Accept       multipart/form-data
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Param        photos  formData  file  true  "fotos"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tailor/orders/{orderId}/qc-photos [post]
func (h *TailorHandler) UploadQCPhotos(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "multipart requerido"})
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "al menos una foto en el campo photos"})
	}
	orderID := c.Params("orderId")
	urls, err := h.uploadPhotos(c, "qc", orderID, files)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MEDIA_UPLOAD", Message: err.Error()})
	}
	now := time.Now()
	checkpoints := make([]entity.QCCheckpoint, 0, len(files))
	for i, fh := range files {
		checkpoints = append(checkpoints, entity.QCCheckpoint{
			PhotoURL: urls[i],
			Metadata: entity.QCMetadata{
				Filename:   filepath.Base(fh.Filename),
				Mimetype:   fh.Header.Get("Content-Type"),
				Size:       fh.Size,
				UploadedAt: now,
			},
		})
	}
	out, err := h.orderUC.AddQCCheckpoints(orderID, GetPrincipalID(c), checkpoints)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// UploadProgressPhotos godoc
// @Summary      Anexar fotos de avance (visibles para el cliente)
// @Tags         tailor
// @Accept       multipart/form-data
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Param        photos  formData  file  true  "fotos"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tailor/orders/{orderId}/progress-photos [post]
func (h *TailorHandler) UploadProgressPhotos(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "multipart requerido"})
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "al menos una foto en el campo photos"})
	}
	orderID := c.Params("orderId")
	urls, err := h.uploadPhotos(c, "progress", orderID, files)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MEDIA_UPLOAD", Message: err.Error()})
	}
	now := time.Now()
	photos := make([]entity.ProgressPhoto, 0, len(files))
	for i, fh := range files {
		photos = append(photos, entity.ProgressPhoto{
			URL:        urls[i],
			Mimetype:   fh.Header.Get("Content-Type"),
			Size:       fh.Size,
			UploadedAt: now,
		})
	}
	out, err := h.orderUC.AddProgressPhotos(orderID, GetPrincipalID(c), photos)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// SetPartialDeliveries godoc
// @Summary      Reemplazar la lista de entregas parciales
// @Tags         tailor
// @Accept       json
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Param        body  body  dto.PartialDeliveriesRequest  true  "lista completa"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tailor/orders/{orderId}/partial-deliveries [put]
func (h *TailorHandler) SetPartialDeliveries(c *fiber.Ctx) error {
	var in dto.PartialDeliveriesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.orderUC.SetPartialDeliveries(c.Params("orderId"), GetPrincipalID(c), in.PartialDeliveries)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// Tracking godoc
// @Summary      Proyección de tracking del sastre
// @Tags         tailor
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Success      200   {object}  dto.TailorTrackingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tailor/orders/{orderId}/tracking [get]
func (h *TailorHandler) Tracking(c *fiber.Ctx) error {
	out, err := h.orderUC.TrackingForTailor(c.Params("orderId"), GetPrincipalID(c))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}
