package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Opciones de entrega de un pedido.
const (
	DeliveryRegular    = "regular"
	DeliveryExpress    = "express"
	DeliveryPreference = "preference"
)

// Service es una entrada del catálogo de un sastre. El núcleo de pedidos solo
// la LEE para resolver el precio en la creación; el CRUD del catálogo vive en
// otro servicio.
type Service struct {
	ID              string
	TailorID        string
	ServiceName     string
	BasePrice       decimal.Decimal
	ExpressPrice    *decimal.Decimal // nil = sin tarifa express
	PreferencePrice *decimal.Decimal // nil = sin tarifa de preferencia
	Status          string           // active, inactive
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ResolvePrice calcula el precio según la opción de entrega. El valor devuelto
// se congela en el pedido: cambios posteriores del servicio no lo afectan.
func (s *Service) ResolvePrice(deliveryOption string) decimal.Decimal {
	switch deliveryOption {
	case DeliveryExpress:
		if s.ExpressPrice != nil {
			return *s.ExpressPrice
		}
	case DeliveryPreference:
		if s.PreferencePrice != nil {
			return *s.PreferencePrice
		}
	}
	return s.BasePrice
}
