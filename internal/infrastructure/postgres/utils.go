package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation código SQLSTATE de violación de constraint único.
const uniqueViolation = "23505"

// isUniqueViolation detecta el choque contra un índice único: roles.role_id,
// users.email o customers.email. Los repos lo traducen al sentinel de dominio
// que corresponda (ErrDuplicate, ErrEmailAlreadyExists). El fallback por texto
// cubre errores ya envueltos sin la cadena *pgconn.PgError.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return strings.Contains(err.Error(), uniqueViolation)
}
