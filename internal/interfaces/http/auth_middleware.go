package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mvdigital/negocioweb-api/internal/application/auth"
	"github.com/mvdigital/negocioweb-api/internal/application/dto"
)

// LocalCapability clave de Locals para la capability de la sesión.
const LocalCapability = "capability"

// EditMiddleware exige un Bearer Token con scope de edición y deja la
// capability resultante en c.Locals. Los casos de uso vuelven a verificar la
// capability: el middleware solo corta temprano con un 401 legible.
func EditMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
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
		capability, err := authUC.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if !capability.CanEdit() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el token no habilita edición"})
		}
		c.Locals(LocalCapability, capability)
		return c.Next()
	}
}

// GetCapability devuelve la capability de la sesión (después del middleware
// de edición). Sin middleware devuelve una capability de solo lectura.
func GetCapability(c *fiber.Ctx) auth.Capability {
	v := c.Locals(LocalCapability)
	if v == nil {
		return auth.ReadOnly()
	}
	capability, ok := v.(auth.Capability)
	if !ok {
		return auth.ReadOnly()
	}
	return capability
}
