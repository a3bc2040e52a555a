package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvdigital/negocioweb-api/internal/application/auth"
	"github.com/mvdigital/negocioweb-api/internal/application/dto"
)

// AuthHandler maneja las peticiones HTTP de sesión de administración.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	expMinutes int
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, expMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, expMinutes: expMinutes}
}

// Login godoc
// @Summary      Iniciar sesión de administración
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credencial"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	token, err := h.uc.Login(in.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, ExpiresIn: h.expMinutes})
}

// Logout godoc
// @Summary      Cerrar sesión (descarta el token en el cliente)
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Sesión stateless: no hay nada que invalidar en el servidor.
	return c.SendStatus(fiber.StatusNoContent)
}
