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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Los sub-documentos del pedido (ciclo de vida, QC, entregas parciales,
// coordinación, fotos, devolución) viven en columnas JSONB; la propiedad se
// resuelve en el WHERE para que el caso de uso no distinga "no existe" de
// "no es tuyo".
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `
	id, customer_id, tailor_id, service_id, delivery_option, price, additional_notes,
	lifecycle_status, rush_order, rush_multiplier, qc_checkpoints, partial_deliveries,
	delivery_coordination, progress_photos, return_logistics, classification, version,
	created_at, updated_at`

// Create persiste un pedido nuevo con version 1.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, 1, $17, $18)`
	_, err := r.pool.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.TailorID, order.ServiceID, order.DeliveryOption,
		order.Price, order.AdditionalNotes, order.LifecycleStatus, order.RushOrder,
		order.RushPricingMultiplier, order.QCCheckpoints, order.PartialDeliveries,
		order.DeliveryCoordination, order.ProgressPhotos, order.ReturnLogistics,
		order.Classification, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	order.Version = 1
	return nil
}

// GetByID obtiene un pedido por ID sin filtro de propiedad (operaciones admin).
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.findOne(`SELECT`+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetByIDAndTailor lookup compuesto existencia+propiedad para el sastre.
func (r *OrderRepo) GetByIDAndTailor(id, tailorID string) (*entity.Order, error) {
	return r.findOne(`SELECT`+orderColumns+` FROM orders WHERE id = $1 AND tailor_id = $2`, id, tailorID)
}

// GetByIDAndCustomer lookup compuesto existencia+propiedad para el cliente.
func (r *OrderRepo) GetByIDAndCustomer(id, customerID string) (*entity.Order, error) {
	return r.findOne(`SELECT`+orderColumns+` FROM orders WHERE id = $1 AND customer_id = $2`, id, customerID)
}

// ListByTailor pedidos de un sastre, más recientes primero.
func (r *OrderRepo) ListByTailor(tailorID string, limit, offset int) ([]*entity.Order, error) {
	return r.findMany(
		`SELECT`+orderColumns+` FROM orders WHERE tailor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		tailorID, limit, offset)
}

// ListByCustomer pedidos de un cliente, más recientes primero.
func (r *OrderRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Order, error) {
	return r.findMany(
		`SELECT`+orderColumns+` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		customerID, limit, offset)
}

// ListByIDsAndTailor pedidos del lote que existen Y pertenecen al sastre; los
// IDs ajenos o inexistentes simplemente no vienen.
func (r *OrderRepo) ListByIDsAndTailor(ids []string, tailorID string) ([]*entity.Order, error) {
	return r.findMany(
		`SELECT`+orderColumns+` FROM orders WHERE id = ANY($1) AND tailor_id = $2`,
		ids, tailorID)
}

func (r *OrderRepo) findOne(query string, args ...any) (*entity.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) findMany(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.TailorID, &o.ServiceID, &o.DeliveryOption, &o.Price,
		&o.AdditionalNotes, &o.LifecycleStatus, &o.RushOrder, &o.RushPricingMultiplier,
		&o.QCCheckpoints, &o.PartialDeliveries, &o.DeliveryCoordination, &o.ProgressPhotos,
		&o.ReturnLogistics, &o.Classification, &o.Version, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

const orderUpdateSet = `
	delivery_option = $2, price = $3, additional_notes = $4, lifecycle_status = $5,
	rush_order = $6, rush_multiplier = $7, qc_checkpoints = $8, partial_deliveries = $9,
	delivery_coordination = $10, progress_photos = $11, return_logistics = $12,
	classification = $13, updated_at = $14, version = version + 1`

func orderUpdateArgs(o *entity.Order) []any {
	return []any{
		o.ID, o.DeliveryOption, o.Price, o.AdditionalNotes, o.LifecycleStatus,
		o.RushOrder, o.RushPricingMultiplier, o.QCCheckpoints, o.PartialDeliveries,
		o.DeliveryCoordination, o.ProgressPhotos, o.ReturnLogistics,
		o.Classification, o.UpdatedAt,
	}
}

// Update persiste el documento completo con last-write-wins. La versión se
// incrementa en la base y se refleja en la entidad.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `UPDATE orders SET` + orderUpdateSet + ` WHERE id = $1 RETURNING version`
	err := r.pool.QueryRow(context.Background(), query, orderUpdateArgs(order)...).Scan(&order.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("update order: fila inexistente %s", order.ID)
		}
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// UpdateWithVersion compare-and-swap contra expectedVersion. Devuelve false
// sin error si otro escritor ganó la carrera.
func (r *OrderRepo) UpdateWithVersion(order *entity.Order, expectedVersion int64) (bool, error) {
	query := `UPDATE orders SET` + orderUpdateSet + ` WHERE id = $1 AND version = $15 RETURNING version`
	args := append(orderUpdateArgs(order), expectedVersion)
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(&order.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("update order (cas): %w", err)
	}
	return true, nil
}
