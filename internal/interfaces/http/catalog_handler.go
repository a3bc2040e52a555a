package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvdigital/negocioweb-api/internal/application/dto"
	"github.com/mvdigital/negocioweb-api/internal/application/usecase"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
)

// CatalogHandler maneja las peticiones HTTP del catálogo de servicios.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar el catálogo de servicios de una variante
// @Tags         catalog
// @Produce      json
// @Param        business  path  string  true  "barbershop | automotive"
// @Success      200  {object}  dto.CatalogListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/content/{business}/services [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(entity.BusinessType(c.Params("business")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear una entrada del catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        business  path  string  true  "barbershop | automotive"
// @Param        body  body  dto.CreateCatalogEntryRequest  true  "Datos de la entrada"
// @Success      201   {object}  dto.CatalogEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/content/{business}/services [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(GetCapability(c), entity.BusinessType(c.Params("business")), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar una entrada del catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        business  path  string  true  "barbershop | automotive"
// @Param        id    path  string  true  "ID de la entrada"
// @Param        body  body  dto.UpdateCatalogEntryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CatalogEntryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/content/{business}/services/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCatalogEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCapability(c), entity.BusinessType(c.Params("business")), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una entrada del catálogo
// @Tags         catalog
// @Security     Bearer
// @Param        business  path  string  true  "barbershop | automotive"
// @Param        id  path  string  true  "ID de la entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/content/{business}/services/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetCapability(c), entity.BusinessType(c.Params("business")), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
