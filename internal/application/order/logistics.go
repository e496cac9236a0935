package order

import (
	"fmt"
	"time"

	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/domain"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
)

// ScheduleDelivery el cliente propone fecha y hora de entrega. Escribe el
// sub-documento de coordinación sin confirmar; la confirmación la hace el
// sastre fuera de este endpoint.
func (uc *UseCase) ScheduleDelivery(orderID, customerID string, in dto.ScheduleDeliveryRequest) (*dto.OrderResponse, error) {
	if in.PreferredDateTime.IsZero() {
		return nil, fmt.Errorf("%w: preferredDateTime requerido", domain.ErrInvalidInput)
	}
	o, err := uc.orderRepo.GetByIDAndCustomer(orderID, customerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	when := in.PreferredDateTime
	if o.DeliveryCoordination == nil {
		o.DeliveryCoordination = &entity.DeliveryCoordination{}
	}
	o.DeliveryCoordination.ScheduledDateTime = &when
	o.DeliveryCoordination.Confirmed = false
	o.DeliveryCoordination.UpdatedAt = now
	o.UpdatedAt = now
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}
	uc.notifier.EnqueuePush(o.TailorID, "El cliente propuso entrega del pedido "+o.ID)
	return dto.ToOrderResponse(o), nil
}

// UpdateShipmentStatus operación de admin: fija el estado del envío y la
// última posición GPS del mensajero. No toca el ciclo de vida del pedido.
func (uc *UseCase) UpdateShipmentStatus(orderID string, in dto.ShipmentStatusRequest) (*dto.OrderResponse, error) {
	if in.Status == "" {
		return nil, fmt.Errorf("%w: status requerido", domain.ErrInvalidInput)
	}
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if o.DeliveryCoordination == nil {
		o.DeliveryCoordination = &entity.DeliveryCoordination{}
	}
	o.DeliveryCoordination.Status = in.Status
	if in.CourierGPS != nil {
		o.DeliveryCoordination.CourierGPS = in.CourierGPS
	}
	o.DeliveryCoordination.UpdatedAt = now
	o.UpdatedAt = now
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}
	uc.notifier.EnqueuePush(o.CustomerID, "Envío del pedido "+o.ID+": "+in.Status)
	return dto.ToOrderResponse(o), nil
}

// ShipmentTracking lectura de admin de la coordinación de entrega.
func (uc *UseCase) ShipmentTracking(orderID string) (*dto.TailorTrackingResponse, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.TailorTrackingResponse{
		LifecycleStatus:      o.LifecycleStatus,
		DeliveryCoordination: o.DeliveryCoordination,
	}, nil
}

// InitiateReturn el cliente inicia una devolución. Solo registra los datos;
// el flujo posterior (aprobación, recogida) queda fuera del núcleo.
func (uc *UseCase) InitiateReturn(orderID, customerID string, in dto.ReturnRequest) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByIDAndCustomer(orderID, customerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.ReturnLogistics != nil && o.ReturnLogistics.Initiated {
		return nil, fmt.Errorf("%w: devolución ya iniciada", domain.ErrConflict)
	}
	reason := in.Reason
	if reason == "" {
		reason = "No reason provided"
	}
	now := time.Now()
	o.ReturnLogistics = &entity.ReturnLogistics{
		Initiated:   true,
		Reason:      reason,
		Photos:      in.Photos,
		Status:      "requested",
		InitiatedAt: now,
	}
	o.UpdatedAt = now
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}
	uc.notifier.EnqueuePush(o.TailorID, "Devolución solicitada para el pedido "+o.ID)
	return dto.ToOrderResponse(o), nil
}
