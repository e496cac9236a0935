package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
)

// PlaceOrderRequest cuerpo de POST /customer/orders. El precio NO viene del
// cliente: se resuelve del servicio y se congela en el pedido.
type PlaceOrderRequest struct {
	ServiceID       string `json:"service_id"`
	DeliveryOption  string `json:"deliveryOption"`
	AdditionalNotes string `json:"additionalNotes"`
	Classification  string `json:"classification"`
}

// UpdateOrderStatusRequest cuerpo de PUT /tailor/orders/:orderId/status.
// Version > 0 activa compare-and-swap; en cero se conserva last-write-wins.
type UpdateOrderStatusRequest struct {
	Status  string `json:"status"`
	Version int64  `json:"version"`
}

// Acciones del endpoint batch heredado.
const (
	BatchActionStart    = "start"
	BatchActionPause    = "pause"
	BatchActionComplete = "complete"
)

// BatchOrdersRequest cuerpo de POST /tailor/orders/batch (deprecado).
type BatchOrdersRequest struct {
	OrderIDs []string `json:"orderIds"`
	Action   string   `json:"action"`
}

// PartialDeliveriesRequest reemplazo COMPLETO de la lista de entregas
// parciales; quien llama debe reenviar el conjunto entero.
type PartialDeliveriesRequest struct {
	PartialDeliveries []entity.PartialDelivery `json:"partialDeliveries"`
}

// ScheduleDeliveryRequest agenda de entrega propuesta por el cliente.
type ScheduleDeliveryRequest struct {
	PreferredDateTime time.Time `json:"preferredDateTime"`
}

// ReturnRequest inicio de devolución por parte del cliente.
type ReturnRequest struct {
	Reason string   `json:"reason"`
	Photos []string `json:"photos"`
}

// OrderResponse proyección completa del pedido (vistas de dueño).
type OrderResponse struct {
	ID                    string                       `json:"id"`
	CustomerID            string                       `json:"customerId"`
	TailorID              string                       `json:"tailorId"`
	ServiceID             string                       `json:"serviceId"`
	DeliveryOption        string                       `json:"deliveryOption"`
	Price                 decimal.Decimal              `json:"price"`
	AdditionalNotes       string                       `json:"additionalNotes,omitempty"`
	LifecycleStatus       entity.LifecycleStatus       `json:"lifecycleStatus"`
	RushOrder             bool                         `json:"rushOrder"`
	RushPricingMultiplier float64                      `json:"rushPricingMultiplier"`
	QCCheckpoints         []entity.QCCheckpoint        `json:"qcCheckpoints,omitempty"`
	PartialDeliveries     []entity.PartialDelivery     `json:"partialDeliveries,omitempty"`
	DeliveryCoordination  *entity.DeliveryCoordination `json:"deliveryCoordination,omitempty"`
	ProgressPhotos        []entity.ProgressPhoto       `json:"progressPhotos,omitempty"`
	ReturnLogistics       *entity.ReturnLogistics      `json:"returnLogistics,omitempty"`
	Classification        string                       `json:"classification,omitempty"`
	Version               int64                        `json:"version"`
	CreatedAt             time.Time                    `json:"createdAt"`
	UpdatedAt             time.Time                    `json:"updatedAt"`
}

// TailorTrackingResponse proyección de tracking para el sastre: estado +
// coordinación de entrega, nunca el pedido completo.
type TailorTrackingResponse struct {
	LifecycleStatus      entity.LifecycleStatus       `json:"lifecycleStatus"`
	DeliveryCoordination *entity.DeliveryCoordination `json:"deliveryCoordination"`
}

// CustomerTrackingResponse proyección de tracking para el cliente: estado +
// fotos de avance.
type CustomerTrackingResponse struct {
	LifecycleStatus entity.LifecycleStatus `json:"lifecycleStatus"`
	ProgressPhotos  []entity.ProgressPhoto `json:"photos"`
}

// ToOrderResponse mapea la entidad Order a su proyección de dueño.
func ToOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:                    o.ID,
		CustomerID:            o.CustomerID,
		TailorID:              o.TailorID,
		ServiceID:             o.ServiceID,
		DeliveryOption:        o.DeliveryOption,
		Price:                 o.Price,
		AdditionalNotes:       o.AdditionalNotes,
		LifecycleStatus:       o.LifecycleStatus,
		RushOrder:             o.RushOrder,
		RushPricingMultiplier: o.RushPricingMultiplier,
		QCCheckpoints:         o.QCCheckpoints,
		PartialDeliveries:     o.PartialDeliveries,
		DeliveryCoordination:  o.DeliveryCoordination,
		ProgressPhotos:        o.ProgressPhotos,
		ReturnLogistics:       o.ReturnLogistics,
		Classification:        o.Classification,
		Version:               o.Version,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

// ToOrderResponses mapea un listado.
func ToOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderResponse(o))
	}
	return out
}
