package repository

import "github.com/tu-usuario/sastre-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para Customer. Colección paralela
// a users: el email es único aquí dentro, no globalmente entre ambas.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	GetByContactNumber(contactNumber string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	UpdateRefreshToken(id, token string) error
}
