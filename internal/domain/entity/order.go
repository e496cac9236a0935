package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados canónicos del ciclo de vida de un pedido.
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusQCCheck    = "qc_check"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"

	// OrderStatusPaused solo lo escribe el endpoint batch heredado; no forma
	// parte de la máquina canónica y no valida contra IsValidOrderStatus.
	OrderStatusPaused = "paused"
)

// RushMultiplier multiplicador fijo de pedidos urgentes. No es configurable
// por pedido; marcar rush dos veces deja el multiplicador en este valor.
const RushMultiplier = 1.5

var orderStatuses = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusInProgress: true,
	OrderStatusQCCheck:    true,
	OrderStatusCompleted:  true,
	OrderStatusCancelled:  true,
}

// IsValidOrderStatus verifica que el estado destino sea uno de los cinco
// literales permitidos.
func IsValidOrderStatus(s string) bool { return orderStatuses[s] }

// allowedTransitions tabla estricta de transiciones. Solo se aplica con
// ORDERS_STRICT_TRANSITIONS=true; el comportamiento por defecto es permisivo
// (cualquier estado a cualquier estado), igual que el sistema original.
var allowedTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusQCCheck, OrderStatusCancelled},
	OrderStatusQCCheck:    {OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// CanTransition consulta la tabla estricta.
func CanTransition(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// LifecycleStatus estado actual más el mapa de timestamps por estado.
// El mapa es append-only por nombre de estado: volver a un estado ya visitado
// sobreescribe SU timestamp y deja intactos los demás.
type LifecycleStatus struct {
	Current    string               `json:"current"`
	Timestamps map[string]time.Time `json:"timestamps"`
}

// Apply fija el estado actual y registra el timestamp del estado destino.
func (l *LifecycleStatus) Apply(status string, at time.Time) {
	if l.Timestamps == nil {
		l.Timestamps = make(map[string]time.Time)
	}
	l.Current = status
	l.Timestamps[status] = at
}

// QCMetadata metadatos del archivo de un checkpoint de control de calidad.
type QCMetadata struct {
	Filename   string    `json:"filename"`
	Mimetype   string    `json:"mimetype"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// QCCheckpoint foto de control de calidad. Orden de inserción, sin dedup.
type QCCheckpoint struct {
	PhotoURL string     `json:"photoUrl"`
	Metadata QCMetadata `json:"metadata"`
}

// PartialDelivery entrega parcial de un ítem del pedido.
type PartialDelivery struct {
	ItemID            string    `json:"itemId"`
	QuantityDelivered int       `json:"quantityDelivered"`
	DeliveryDate      time.Time `json:"deliveryDate"`
	Notes             string    `json:"notes"`
}

// CourierGPS última posición reportada del mensajero.
type CourierGPS struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DeliveryCoordination sub-documento de coordinación de entrega.
type DeliveryCoordination struct {
	ScheduledDateTime *time.Time  `json:"scheduledDateTime,omitempty"`
	Confirmed         bool        `json:"confirmed"`
	Status            string      `json:"status,omitempty"`
	CourierGPS        *CourierGPS `json:"courierGPS,omitempty"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// ProgressPhoto foto de avance visible en el tracking del cliente.
type ProgressPhoto struct {
	URL        string    `json:"url"`
	Mimetype   string    `json:"mimetype"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ReturnLogistics datos de devolución (campos de extensión heredados).
type ReturnLogistics struct {
	Initiated   bool      `json:"initiated"`
	Reason      string    `json:"reason"`
	Photos      []string  `json:"photos"`
	Status      string    `json:"status"`
	InitiatedAt time.Time `json:"initiatedAt"`
}

// Order entidad central. Creada por un cliente contra un Service (precio
// resuelto y congelado en ese momento); mutada solo por el sastre dueño, el
// cliente dueño (lectura/tracking) o un admin (estado de envío). Nunca se
// borra: termina en completed o cancelled.
type Order struct {
	ID              string
	CustomerID      string
	TailorID        string
	ServiceID       string
	DeliveryOption  string // regular, express, preference
	Price           decimal.Decimal
	AdditionalNotes string

	LifecycleStatus       LifecycleStatus
	RushOrder             bool
	RushPricingMultiplier float64 // 1.0 por defecto, RushMultiplier al marcar rush
	QCCheckpoints         []QCCheckpoint
	PartialDeliveries     []PartialDelivery
	DeliveryCoordination  *DeliveryCoordination
	ProgressPhotos        []ProgressPhoto
	ReturnLogistics       *ReturnLogistics

	// Classification es dato de extensión del shape heredado (ready-made,
	// alteration, custom); el núcleo no lo interpreta.
	Classification string

	// Version habilita compare-and-swap opcional en las actualizaciones.
	// Los llamadores que no la envían conservan last-write-wins.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
