package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/sastre-api/internal/domain"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
	"github.com/tu-usuario/sastre-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
// Tabla paralela a users: el email es único dentro de customers, no entre
// ambas tablas.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

const customerColumns = `
	c.id, c.email, c.password_hash, c.role_id, c.name, c.contact_number, c.status,
	c.measurements, c.longitude, c.latitude, c.refresh_token, c.created_at, c.updated_at,
	r.id, r.name, r.active`

const customerFrom = ` FROM customers c LEFT JOIN roles r ON r.role_id = c.role_id`

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, email, password_hash, role_id, name, contact_number,
			status, measurements, longitude, latitude, refresh_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.Email, customer.Password, customer.RoleIDNum, customer.Name,
		customer.ContactNumber, customer.Status, customer.Measurements,
		customer.Location.Longitude, customer.Location.Latitude, customer.RefreshToken,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.findOne(`SELECT`+customerColumns+customerFrom+` WHERE c.id = $1`, id)
}

// GetByEmail obtiene un cliente por email.
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	return r.findOne(`SELECT`+customerColumns+customerFrom+` WHERE c.email = $1 LIMIT 1`, email)
}

// GetByContactNumber obtiene un cliente por número de contacto.
func (r *CustomerRepo) GetByContactNumber(contactNumber string) (*entity.Customer, error) {
	return r.findOne(`SELECT`+customerColumns+customerFrom+` WHERE c.contact_number = $1 LIMIT 1`, contactNumber)
}

func (r *CustomerRepo) findOne(query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	var roleID, roleName *string
	var roleActive *bool
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Email, &c.Password, &c.RoleIDNum, &c.Name, &c.ContactNumber, &c.Status,
		&c.Measurements, &c.Location.Longitude, &c.Location.Latitude, &c.RefreshToken,
		&c.CreatedAt, &c.UpdatedAt,
		&roleID, &roleName, &roleActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if roleName != nil {
		c.Role = &entity.Role{ID: *roleID, RoleID: c.RoleIDNum, Name: *roleName, Active: roleActive != nil && *roleActive}
	}
	return &c, nil
}

// Update persiste el documento completo del cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET email = $2, password_hash = $3, name = $4, contact_number = $5,
			status = $6, measurements = $7, longitude = $8, latitude = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.Email, customer.Password, customer.Name, customer.ContactNumber,
		customer.Status, customer.Measurements, customer.Location.Longitude,
		customer.Location.Latitude, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// UpdateRefreshToken sobreescribe el refresh token almacenado (vacío = revocar).
func (r *CustomerRepo) UpdateRefreshToken(id, token string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE customers SET refresh_token = $2, updated_at = now() WHERE id = $1`, id, token)
	if err != nil {
		return fmt.Errorf("update customer refresh token: %w", err)
	}
	return nil
}
