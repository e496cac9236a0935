package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
	"github.com/tu-usuario/sastre-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo lectura del catálogo de servicios. Solo lectura: el CRUD del
// catálogo pertenece a otro servicio.
type ServiceRepo struct {
	pool *pgxpool.Pool
}

// NewServiceRepository construye el adaptador de lectura del catálogo.
func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{pool: pool}
}

// GetByID obtiene un servicio por ID. Las tarifas express/preference son
// NULL cuando el sastre no las ofrece.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	query := `
		SELECT id, tailor_id, service_name, base_price, express_price, preference_price,
			status, created_at, updated_at
		FROM services WHERE id = $1`
	var s entity.Service
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.TailorID, &s.ServiceName, &s.BasePrice, &s.ExpressPrice, &s.PreferencePrice,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service by id: %w", err)
	}
	return &s, nil
}
