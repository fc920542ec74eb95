package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-ti/internal/application/billing"
	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
)

// CotizacionHandler maneja las peticiones HTTP de cotizaciones, incluida la
// conversión a factura y el despacho por correo.
type CotizacionHandler struct {
	uc        *billing.CotizacionUseCase
	convertir *billing.ConvertirUseCase
	enviar    *billing.EnviarUseCase
	pdf       *billing.PDFUseCase
}

// NewCotizacionHandler construye el handler.
func NewCotizacionHandler(
	uc *billing.CotizacionUseCase,
	convertir *billing.ConvertirUseCase,
	enviar *billing.EnviarUseCase,
	pdf *billing.PDFUseCase,
) *CotizacionHandler {
	return &CotizacionHandler{uc: uc, convertir: convertir, enviar: enviar, pdf: pdf}
}

// Create POST /api/cotizaciones
func (h *CotizacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCotizacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cot, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el cliente indicado no existe"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una cotización con ese número"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cot)
}

// GetByID GET /api/cotizaciones/:id
func (h *CotizacionHandler) GetByID(c *fiber.Ctx) error {
	cot, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cot)
}

// List GET /api/cotizaciones?limit=20&offset=0
func (h *CotizacionHandler) List(c *fiber.Ctx) error {
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

// Update PUT /api/cotizaciones/:id
func (h *CotizacionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCotizacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cot, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cot)
}

// Delete DELETE /api/cotizaciones/:id
func (h *CotizacionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Convertir POST /api/cotizaciones/:id/convertir
func (h *CotizacionHandler) Convertir(c *fiber.Ctx) error {
	resp, err := h.convertir.Convertir(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		case errors.Is(err, domain.ErrYaFacturada):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "YA_FACTURADA", Message: "la cotización ya fue convertida en factura"})
		case errors.Is(err, domain.ErrNoAprobada):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_APROBADA", Message: err.Error()})
		case errors.Is(err, domain.ErrSinCliente):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SIN_CLIENTE", Message: "la cotización no tiene un cliente registrado; conviértala después de asociar el prospecto a un cliente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Enviar POST /api/cotizaciones/:id/enviar
func (h *CotizacionHandler) Enviar(c *fiber.Ctx) error {
	resp, err := h.enviar.EnviarCotizacion(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EMAIL_FAILED", Message: err.Error()})
	}
	return c.JSON(resp)
}

// PDF GET /api/cotizaciones/:id/pdf
func (h *CotizacionHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.CotizacionPDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
