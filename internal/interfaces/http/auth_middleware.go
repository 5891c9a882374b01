package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-api/internal/application/auth"
	"github.com/jhoicas/billing-api/internal/application/dto"
)

// LocalIdentity key de la identidad resuelta en c.Locals.
const LocalIdentity = "identity"

// AuthMiddleware extrae el Bearer Token, lo resuelve con el IdentityResolver
// y deja la Identity en c.Locals. El middleware no sabe de JWT: el formato del
// token es asunto del resolver.
func AuthMiddleware(resolver auth.IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		identity, err := resolver.Authenticate(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalIdentity, identity)
		return c.Next()
	}
}

// GetIdentity devuelve la Identity del contexto (después del middleware de auth).
// Devuelve la identidad cero si la ruta no pasó por el middleware.
func GetIdentity(c *fiber.Ctx) auth.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return auth.Identity{}
	}
	id, _ := v.(auth.Identity)
	return id
}
