package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-ti/internal/application/analytics"
	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
)

// DashboardHandler expone los reportes del dashboard.
type DashboardHandler struct {
	flujoCaja *analytics.FlujoCajaUseCase
}

func NewDashboardHandler(flujoCaja *analytics.FlujoCajaUseCase) *DashboardHandler {
	return &DashboardHandler{flujoCaja: flujoCaja}
}

// FlujoCaja GET /api/dashboard/flujo-caja?periodo=mes|trimestre|año
func (h *DashboardHandler) FlujoCaja(c *fiber.Ctx) error {
	periodo := c.Query("periodo", analytics.PeriodoMes)
	resp, err := h.flujoCaja.GetFlujoCaja(c.Context(), periodo)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
