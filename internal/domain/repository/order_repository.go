package repository

import "github.com/tu-usuario/sastre-api/internal/domain/entity"

// OrderRepository puerto de persistencia para Order.
//
// Los lookups con actor (GetByIDAndTailor, GetByIDAndCustomer) combinan
// existencia y propiedad en una sola consulta: devuelven (nil, nil) tanto si
// el pedido no existe como si pertenece a otro actor, para que el handler
// responda el mismo 404 sin filtrar existencia.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	GetByIDAndTailor(id, tailorID string) (*entity.Order, error)
	GetByIDAndCustomer(id, customerID string) (*entity.Order, error)
	ListByTailor(tailorID string, limit, offset int) ([]*entity.Order, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Order, error)
	ListByIDsAndTailor(ids []string, tailorID string) ([]*entity.Order, error)
	// Update persiste el documento completo con last-write-wins e incrementa
	// Version.
	Update(order *entity.Order) error
	// UpdateWithVersion hace compare-and-swap contra expectedVersion.
	// Devuelve false (sin error) si la versión ya no coincide.
	UpdateWithVersion(order *entity.Order, expectedVersion int64) (bool, error)
}
