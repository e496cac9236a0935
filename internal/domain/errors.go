package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("User does not exist")
	ErrEmailNotFound      = errors.New("email no registrado")
	ErrPhoneNotFound      = errors.New("teléfono no registrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Auth / sesión
	ErrTokenReused = errors.New("refresh token expirado o ya usado")

	// Verificación de sastres
	ErrInvalidTransition = errors.New("transición de estado inválida")
	ErrNotATailor        = errors.New("el usuario no tiene rol de sastre")
	ErrNoEmail           = errors.New("el usuario no tiene email registrado")

	// Ciclo de vida de pedidos
	ErrInvalidStatus   = errors.New("estado de pedido inválido")
	ErrVersionConflict = errors.New("el pedido fue modificado por otra operación")
)
