package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/application/ports"
	"github.com/tu-usuario/sastre-api/internal/domain"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
	"github.com/tu-usuario/sastre-api/internal/domain/repository"
	"github.com/tu-usuario/sastre-api/pkg/logger"
)

// Config flags del motor de pedidos.
type Config struct {
	// StrictTransitions activa la tabla de transiciones. Apagado replica el
	// comportamiento histórico: cualquier estado válido puede fijarse desde
	// cualquier otro.
	StrictTransitions bool
}

// UseCase motor del ciclo de vida de pedidos. Todas las operaciones de sastre
// cargan el pedido con lookup compuesto (orderId, tailorId): el mismo 404
// cubre "no existe" y "no es tuyo", sin filtrar existencia a terceros.
type UseCase struct {
	orderRepo   repository.OrderRepository
	serviceRepo repository.ServiceRepository
	notifier    ports.Notifier
	cfg         Config
	log         *logger.Logger
}

// NewUseCase construye el motor de pedidos.
func NewUseCase(orderRepo repository.OrderRepository, serviceRepo repository.ServiceRepository,
	notifier ports.Notifier, cfg Config, log *logger.Logger) *UseCase {
	return &UseCase{orderRepo: orderRepo, serviceRepo: serviceRepo, notifier: notifier, cfg: cfg, log: log}
}

// Place crea un pedido contra un servicio del catálogo. El precio se resuelve
// aquí (base, o express/preference si la opción lo pide y el servicio la
// tiene) y queda CONGELADO: cambios posteriores del servicio no afectan
// pedidos existentes.
func (uc *UseCase) Place(customerID string, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if in.ServiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.DeliveryOption {
	case "", entity.DeliveryRegular, entity.DeliveryExpress, entity.DeliveryPreference:
	default:
		return nil, fmt.Errorf("%w: deliveryOption %q", domain.ErrInvalidInput, in.DeliveryOption)
	}
	svc, err := uc.serviceRepo.GetByID(in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}

	opt := in.DeliveryOption
	if opt == "" {
		opt = entity.DeliveryRegular
	}
	now := time.Now()
	o := &entity.Order{
		ID:                    uuid.New().String(),
		CustomerID:            customerID,
		TailorID:              svc.TailorID,
		ServiceID:             svc.ID,
		DeliveryOption:        opt,
		Price:                 svc.ResolvePrice(opt),
		AdditionalNotes:       in.AdditionalNotes,
		Classification:        in.Classification,
		RushPricingMultiplier: 1.0,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	o.LifecycleStatus.Apply(entity.OrderStatusPending, now)

	if err := uc.orderRepo.Create(o); err != nil {
		return nil, err
	}

	uc.notifier.EnqueuePush(o.TailorID, "Nuevo pedido recibido: "+o.ID)
	return dto.ToOrderResponse(o), nil
}

// ListForTailor pedidos del sastre autenticado.
func (uc *UseCase) ListForTailor(tailorID string, page dto.PageRequest) ([]*dto.OrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByTailor(tailorID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponses(orders), nil
}

// GetForTailor detalle de un pedido propio.
func (uc *UseCase) GetForTailor(orderID, tailorID string) (*dto.OrderResponse, error) {
	o, err := uc.loadOwned(orderID, tailorID)
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(o), nil
}

// ListForCustomer historial de pedidos del cliente.
func (uc *UseCase) ListForCustomer(customerID string, page dto.PageRequest) ([]*dto.OrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByCustomer(customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponses(orders), nil
}

// UpdateStatus fija el estado del ciclo de vida. El destino debe ser uno de
// los cinco literales; el timestamp del destino se registra y los de estados
// anteriores quedan intactos (historial append-only por nombre, last-write-
// wins por nombre). Version > 0 activa compare-and-swap; en cero se conserva
// el last-write-wins histórico.
func (uc *UseCase) UpdateStatus(orderID, tailorID, status string, version int64) (*dto.OrderResponse, error) {
	if !entity.IsValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	o, err := uc.loadOwned(orderID, tailorID)
	if err != nil {
		return nil, err
	}
	if uc.cfg.StrictTransitions && !entity.CanTransition(o.LifecycleStatus.Current, status) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, o.LifecycleStatus.Current, status)
	}

	o.LifecycleStatus.Apply(status, time.Now())

	if err := uc.persist(o, version); err != nil {
		return nil, err
	}

	uc.notifier.EnqueuePush(o.CustomerID, "Tu pedido "+o.ID+" pasó a "+status)
	return dto.ToOrderResponse(o), nil
}

// BatchProcess aplica una acción a varios pedidos propios.
//
// Deprecated: endpoint heredado. 'pause' escribe el estado legacy "paused",
// que no pertenece a la máquina canónica; no usar en integraciones nuevas.
func (uc *UseCase) BatchProcess(tailorID string, in dto.BatchOrdersRequest) (int, error) {
	if len(in.OrderIDs) == 0 {
		return 0, fmt.Errorf("%w: orderIds requerido", domain.ErrInvalidInput)
	}
	switch in.Action {
	case dto.BatchActionStart, dto.BatchActionPause, dto.BatchActionComplete:
	default:
		return 0, fmt.Errorf("%w: acción %q", domain.ErrInvalidInput, in.Action)
	}
	orders, err := uc.orderRepo.ListByIDsAndTailor(in.OrderIDs, tailorID)
	if err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, domain.ErrNotFound
	}
	now := time.Now()
	for _, o := range orders {
		switch in.Action {
		case dto.BatchActionStart:
			o.LifecycleStatus.Current = entity.OrderStatusInProgress
		case dto.BatchActionPause:
			o.LifecycleStatus.Current = entity.OrderStatusPaused
		case dto.BatchActionComplete:
			o.LifecycleStatus.Apply(entity.OrderStatusCompleted, now)
		}
		o.UpdatedAt = now
		if err := uc.orderRepo.Update(o); err != nil {
			return 0, err
		}
	}
	return len(orders), nil
}

// MarkRush marca el pedido como urgente con el multiplicador fijo 1.5.
// Idempotente: marcar dos veces no compone el multiplicador.
func (uc *UseCase) MarkRush(orderID, tailorID string) (*dto.OrderResponse, error) {
	o, err := uc.loadOwned(orderID, tailorID)
	if err != nil {
		return nil, err
	}
	o.RushOrder = true
	o.RushPricingMultiplier = entity.RushMultiplier
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(o), nil
}

// AddQCCheckpoints anexa checkpoints de control de calidad en orden de
// inserción, sin dedup. Las URLs vienen del colaborador de media; aquí solo
// se registra el resultado.
func (uc *UseCase) AddQCCheckpoints(orderID, tailorID string, checkpoints []entity.QCCheckpoint) (*dto.OrderResponse, error) {
	if len(checkpoints) == 0 {
		return nil, fmt.Errorf("%w: sin fotos de QC", domain.ErrInvalidInput)
	}
	o, err := uc.loadOwned(orderID, tailorID)
	if err != nil {
		return nil, err
	}
	o.QCCheckpoints = append(o.QCCheckpoints, checkpoints...)
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(o), nil
}

// AddProgressPhotos anexa fotos de avance (visibles en el tracking del
// cliente).
func (uc *UseCase) AddProgressPhotos(orderID, tailorID string, photos []entity.ProgressPhoto) (*dto.OrderResponse, error) {
	if len(photos) == 0 {
		return nil, fmt.Errorf("%w: sin fotos de avance", domain.ErrInvalidInput)
	}
	o, err := uc.loadOwned(orderID, tailorID)
	if err != nil {
		return nil, err
	}
	o.ProgressPhotos = append(o.ProgressPhotos, photos...)
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(o), nil
}

// SetPartialDeliveries REEMPLAZA la lista completa de entregas parciales; no
// es merge ni append, el caller reenvía el conjunto entero.
func (uc *UseCase) SetPartialDeliveries(orderID, tailorID string, deliveries []entity.PartialDelivery) (*dto.OrderResponse, error) {
	if deliveries == nil {
		return nil, fmt.Errorf("%w: partialDeliveries debe ser un arreglo", domain.ErrInvalidInput)
	}
	o, err := uc.loadOwned(orderID, tailorID)
	if err != nil {
		return nil, err
	}
	o.PartialDeliveries = deliveries
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(o), nil
}

// TrackingForTailor proyección de tracking del sastre: estado + coordinación
// de entrega. Nunca el pedido completo.
func (uc *UseCase) TrackingForTailor(orderID, tailorID string) (*dto.TailorTrackingResponse, error) {
	o, err := uc.loadOwned(orderID, tailorID)
	if err != nil {
		return nil, err
	}
	return &dto.TailorTrackingResponse{
		LifecycleStatus:      o.LifecycleStatus,
		DeliveryCoordination: o.DeliveryCoordination,
	}, nil
}

// TrackingForCustomer proyección de tracking del cliente: estado + fotos de
// avance. Mismo 404 uniforme si el pedido no existe o no es suyo.
func (uc *UseCase) TrackingForCustomer(orderID, customerID string) (*dto.CustomerTrackingResponse, error) {
	o, err := uc.orderRepo.GetByIDAndCustomer(orderID, customerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	photos := o.ProgressPhotos
	if photos == nil {
		photos = []entity.ProgressPhoto{}
	}
	return &dto.CustomerTrackingResponse{
		LifecycleStatus: o.LifecycleStatus,
		ProgressPhotos:  photos,
	}, nil
}

// loadOwned lookup compuesto existencia+propiedad para el sastre.
func (uc *UseCase) loadOwned(orderID, tailorID string) (*entity.Order, error) {
	o, err := uc.orderRepo.GetByIDAndTailor(orderID, tailorID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// persist escribe el pedido con o sin compare-and-swap según version.
func (uc *UseCase) persist(o *entity.Order, version int64) error {
	o.UpdatedAt = time.Now()
	if version > 0 {
		ok, err := uc.orderRepo.UpdateWithVersion(o, version)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrVersionConflict
		}
		return nil
	}
	return uc.orderRepo.Update(o)
}
