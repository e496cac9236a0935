package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
	"github.com/tu-usuario/sastre-api/pkg/jwt"
)

// Locals keys del principal autenticado en Fiber.
const (
	LocalPrincipal     = "principal"
	LocalPrincipalKind = "principal_kind" // user | customer
)

// Nombres de las cookies de sesión.
const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)

// PrincipalResolver carga el principal autenticado por ID (users primero,
// luego customers). Lo implementa el caso de uso de auth.
type PrincipalResolver interface {
	ResolveByID(id string) (entity.Principal, string, error)
}

// extractToken cookie primero, header Bearer después. Los clientes web usan
// la cookie httpOnly; los móviles el header.
func extractToken(c *fiber.Ctx) string {
	if tok := c.Cookies(CookieAccessToken); tok != "" {
		return tok
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthMiddleware autentica la petición y deja el principal en c.Locals.
// La asimetría de códigos es contrato: sin token 401, token que no parsea 403,
// token válido cuyo principal ya no existe 401.
func AuthMiddleware(jwtSecret string, resolver PrincipalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token de acceso requerido"})
		}
		userID, _, err := jwt.ParseAccess(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		principal, kind, err := resolver.ResolveByID(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if principal == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "User does not exist"})
		}
		c.Locals(LocalPrincipal, principal)
		c.Locals(LocalPrincipalKind, kind)
		return c.Next()
	}
}

// OptionalAuthMiddleware como AuthMiddleware pero sin rechazar: si no hay
// token o no resuelve, la petición sigue anónima. Lo usa /auth/register para
// la rama de alta por admin.
func OptionalAuthMiddleware(jwtSecret string, resolver PrincipalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Next()
		}
		userID, _, err := jwt.ParseAccess(jwtSecret, tokenString)
		if err != nil {
			return c.Next()
		}
		principal, kind, err := resolver.ResolveByID(userID)
		if err != nil || principal == nil {
			return c.Next()
		}
		c.Locals(LocalPrincipal, principal)
		c.Locals(LocalPrincipalKind, kind)
		return c.Next()
	}
}

// requireRole guard por NOMBRE de rol. El mensaje usa el nombre capitalizado
// del rol requerido, contrato con los clientes existentes.
func requireRole(roleName, displayName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil || p.RoleName() != roleName {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: displayName + " access required"})
		}
		return c.Next()
	}
}

// AdminOnly exige rol admin.
func AdminOnly() fiber.Handler { return requireRole(entity.RoleAdmin, "Admin") }

// TailorOnly exige rol tailor.
func TailorOnly() fiber.Handler { return requireRole(entity.RoleTailor, "Tailor") }

// CustomerOnly exige rol customer.
func CustomerOnly() fiber.Handler { return requireRole(entity.RoleCustomer, "Customer") }

// GetPrincipal devuelve el principal del contexto (después del middleware).
func GetPrincipal(c *fiber.Ctx) entity.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return nil
	}
	p, _ := v.(entity.Principal)
	return p
}

// GetPrincipalID devuelve el ID del principal autenticado.
func GetPrincipalID(c *fiber.Ctx) string {
	if p := GetPrincipal(c); p != nil {
		return p.PrincipalID()
	}
	return ""
}

// GetPrincipalKind devuelve la colección de origen (user o customer).
func GetPrincipalKind(c *fiber.Ctx) string {
	v := c.Locals(LocalPrincipalKind)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
