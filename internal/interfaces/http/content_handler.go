package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvdigital/negocioweb-api/internal/application/dto"
	"github.com/mvdigital/negocioweb-api/internal/application/usecase"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
)

// ContentHandler maneja las peticiones HTTP del contenido editable.
type ContentHandler struct {
	uc *usecase.ContentUseCase
}

// NewContentHandler construye el handler.
func NewContentHandler(uc *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener el contenido de una variante
// @Tags         content
// @Produce      json
// @Param        business  path  string  true  "barbershop | automotive"
// @Success      200  {object}  entity.ContentRecord
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/content/{business} [get]
func (h *ContentHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(entity.BusinessType(c.Params("business")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aplicar un parche tipado al contenido de una variante
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        business  path  string  true  "barbershop | automotive"
// @Param        body  body  dto.UpdateContentRequest  true  "Parche por sección"
// @Success      200   {object}  entity.ContentRecord
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/content/{business} [patch]
func (h *ContentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCapability(c), entity.BusinessType(c.Params("business")), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
