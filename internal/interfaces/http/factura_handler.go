package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-ti/internal/application/billing"
	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
)

// FacturaHandler maneja las peticiones HTTP de facturas. Todo cambio de
// estado pasa por el endpoint /estado y la máquina de estados; el PATCH
// genérico solo toca notas y referencia.
type FacturaHandler struct {
	uc     *billing.FacturaUseCase
	enviar *billing.EnviarUseCase
	pdf    *billing.PDFUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *billing.FacturaUseCase, enviar *billing.EnviarUseCase, pdf *billing.PDFUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc, enviar: enviar, pdf: pdf}
}

// GetByID GET /api/facturas/:id
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	fact, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fact)
}

// List GET /api/facturas?limit=20&offset=0
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// CambiarEstado PATCH /api/facturas/:id/estado
// Una transición ilegal responde 400 con el detalle de las permitidas.
func (h *FacturaHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fact, err := h.uc.CambiarEstado(c.Params("id"), in.Estado)
	if err != nil {
		var tErr *finanzas.ErrTransicionInvalida
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		case errors.As(err, &tErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TRANSICION_INVALIDA", Message: tErr.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fact)
}

// Patch PATCH /api/facturas/:id (solo notas y referencia externa)
func (h *FacturaHandler) Patch(c *fiber.Ctx) error {
	var in dto.PatchFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fact, err := h.uc.Patch(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fact)
}

// RevisarVencidas POST /api/facturas/revisar-vencidas
// Barrido explícito para un cron externo: mueve a vencida las pendientes
// cuyo plazo ya pasó.
func (h *FacturaHandler) RevisarVencidas(c *fiber.Ctx) error {
	resp, err := h.uc.MarcarVencidas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// Enviar POST /api/facturas/:id/enviar
func (h *FacturaHandler) Enviar(c *fiber.Ctx) error {
	resp, err := h.enviar.EnviarFactura(c.Context(), c.Params("id"))
	if err != nil {
		var tErr *finanzas.ErrTransicionInvalida
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		case errors.As(err, &tErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TRANSICION_INVALIDA", Message: tErr.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EMAIL_FAILED", Message: err.Error()})
	}
	return c.JSON(resp)
}

// PDF GET /api/facturas/:id/pdf
func (h *FacturaHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.FacturaPDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
