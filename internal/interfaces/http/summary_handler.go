package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mvdigital/negocioweb-api/internal/application/dto"
	"github.com/mvdigital/negocioweb-api/internal/application/usecase"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
)

// monthLayout formato del query param opcional de mes de referencia.
const monthLayout = "2006-01"

// SummaryHandler maneja las peticiones HTTP del resumen financiero.
type SummaryHandler struct {
	uc *usecase.SummaryUseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Get godoc
// @Summary      Resumen financiero de un negocio
// @Description  Totales históricos y cifras del mes de referencia (por defecto, el mes actual).
// @Tags         summary
// @Produce      json
// @Param        business  query  string  true   "barbershop | automotive"
// @Param        month     query  string  false  "Mes de referencia YYYY-MM"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary [get]
func (h *SummaryHandler) Get(c *fiber.Ctx) error {
	ref := time.Now()
	if month := c.Query("month"); month != "" {
		parsed, err := time.Parse(monthLayout, month)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe tener formato YYYY-MM"})
		}
		ref = parsed
	}
	out, err := h.uc.Summarize(entity.BusinessType(c.Query("business")), ref)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
