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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// El rol se resuelve siempre con LEFT JOIN al registro; tailor_info vive en
// una columna JSONB.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `
	u.id, u.email, u.password_hash, u.role_id, u.owner_name, u.business_name,
	u.phone_number, u.country, u.city, u.status, u.tailor_info, u.refresh_token,
	u.created_at, u.updated_at,
	r.id, r.name, r.active`

const userFrom = ` FROM users u LEFT JOIN roles r ON r.role_id = u.role_id`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, role_id, owner_name, business_name,
			phone_number, country, city, status, tailor_info, refresh_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.Password, user.RoleIDNum, user.OwnerName, user.BusinessName,
		user.PhoneNumber, user.Country, user.City, user.Status, user.TailorInfo, user.RefreshToken,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.findOne(`SELECT`+userColumns+userFrom+` WHERE u.id = $1`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.findOne(`SELECT`+userColumns+userFrom+` WHERE u.email = $1 LIMIT 1`, email)
}

// GetByPhone obtiene un usuario por número de teléfono.
func (r *UserRepo) GetByPhone(phone string) (*entity.User, error) {
	return r.findOne(`SELECT`+userColumns+userFrom+` WHERE u.phone_number = $1 LIMIT 1`, phone)
}

func (r *UserRepo) findOne(query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var roleID, roleName *string
	var roleActive *bool
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.RoleIDNum, &u.OwnerName, &u.BusinessName,
		&u.PhoneNumber, &u.Country, &u.City, &u.Status, &u.TailorInfo, &u.RefreshToken,
		&u.CreatedAt, &u.UpdatedAt,
		&roleID, &roleName, &roleActive,
	)
	if err != nil {
		return nil, err
	}
	if roleName != nil {
		u.Role = &entity.Role{ID: *roleID, RoleID: u.RoleIDNum, Name: *roleName, Active: roleActive != nil && *roleActive}
	}
	return &u, nil
}

// Update persiste el documento completo del usuario (excepto el refresh token,
// que tiene su propia operación).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, role_id = $4, owner_name = $5,
			business_name = $6, phone_number = $7, country = $8, city = $9, status = $10,
			tailor_info = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.Password, user.RoleIDNum, user.OwnerName,
		user.BusinessName, user.PhoneNumber, user.Country, user.City, user.Status,
		user.TailorInfo, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdateRefreshToken sobreescribe el refresh token almacenado (vacío = revocar).
func (r *UserRepo) UpdateRefreshToken(id, token string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET refresh_token = $2, updated_at = now() WHERE id = $1`, id, token)
	if err != nil {
		return fmt.Errorf("update user refresh token: %w", err)
	}
	return nil
}
