package repository

import "github.com/tu-usuario/sastre-api/internal/domain/entity"

// ServiceRepository acceso de solo lectura al catálogo de servicios.
// El CRUD del catálogo pertenece a otro servicio; el núcleo de pedidos solo
// necesita leer para resolver precios.
type ServiceRepository interface {
	GetByID(id string) (*entity.Service, error)
}
