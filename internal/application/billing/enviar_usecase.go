package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

// EnviarUseCase despacha cotizaciones y facturas por email: genera el PDF,
// lo adjunta y, si el envío fue exitoso, avanza el estado del documento.
// Para facturas la transición a enviada se valida contra la máquina de
// estados ANTES de llamar al proveedor: si la transición es ilegal la
// petición falla sin enviar nada.
type EnviarUseCase struct {
	cotRepo     repository.CotizacionRepository
	factRepo    repository.FacturaRepository
	clienteRepo repository.ClienteRepository
	generator   PDFGenerator
	sender      EmailSender
}

// NewEnviarUseCase construye el caso de uso.
func NewEnviarUseCase(
	cotRepo repository.CotizacionRepository,
	factRepo repository.FacturaRepository,
	clienteRepo repository.ClienteRepository,
	generator PDFGenerator,
	sender EmailSender,
) *EnviarUseCase {
	return &EnviarUseCase{
		cotRepo:     cotRepo,
		factRepo:    factRepo,
		clienteRepo: clienteRepo,
		generator:   generator,
		sender:      sender,
	}
}

// EnviarCotizacion genera el PDF de la cotización y lo envía al cliente o
// prospecto. Si la cotización estaba en borrador, queda en enviada.
func (uc *EnviarUseCase) EnviarCotizacion(ctx context.Context, id string) (*dto.EnviarResponse, error) {
	cot, err := uc.cotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNotFound
	}

	receptor, err := uc.receptorCotizacion(cot)
	if err != nil {
		return nil, err
	}

	pdf, err := uc.generator.CotizacionPDF(ctx, cot, receptor)
	if err != nil {
		return nil, fmt.Errorf("enviar cotización: generar PDF: %w", err)
	}

	asunto := fmt.Sprintf("Cotización %s", cot.Numero)
	html := htmlDocumento("cotización", cot.Numero, receptor.Nombre, cot.Total.StringFixed(0), cot.Moneda)
	emailID, err := uc.sender.SendDocumento(ctx, receptor.Email, asunto, html,
		fmt.Sprintf("Cotizacion-%s.pdf", cot.Numero), pdf)
	if err != nil {
		return nil, fmt.Errorf("enviar cotización: %w", err)
	}

	if cot.Estado == entity.CotizacionBorrador {
		if err := uc.cotRepo.UpdateEstado(cot.ID, entity.CotizacionEnviada); err != nil {
			return nil, err
		}
	}
	return &dto.EnviarResponse{EmailID: emailID}, nil
}

// EnviarFactura genera el PDF de la factura y lo envía al cliente.
// Requiere que borrador→enviada sea legal según la máquina de estados.
func (uc *EnviarUseCase) EnviarFactura(ctx context.Context, id string) (*dto.EnviarResponse, error) {
	fact, err := uc.factRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fact == nil {
		return nil, domain.ErrNotFound
	}
	if err := finanzas.Transicionar(fact.Estado, finanzas.FacturaEnviada); err != nil {
		return nil, err
	}

	cliente, err := uc.clienteRepo.GetByID(fact.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, fact.ClienteID)
	}
	if cliente.Email == "" {
		return nil, fmt.Errorf("%w: el cliente no tiene email", domain.ErrInvalidInput)
	}
	receptor := ReceptorPDF{Nombre: cliente.RazonSocial, RUT: cliente.RUT, Email: cliente.Email}

	pdf, err := uc.generator.FacturaPDF(ctx, fact, receptor)
	if err != nil {
		return nil, fmt.Errorf("enviar factura: generar PDF: %w", err)
	}

	asunto := fmt.Sprintf("Factura %s", fact.Numero)
	html := htmlDocumento("factura", fact.Numero, receptor.Nombre, fact.Total.StringFixed(0), fact.Moneda)
	emailID, err := uc.sender.SendDocumento(ctx, receptor.Email, asunto, html,
		fmt.Sprintf("Factura-%s.pdf", fact.Numero), pdf)
	if err != nil {
		return nil, fmt.Errorf("enviar factura: %w", err)
	}

	if err := uc.factRepo.UpdateEstado(fact.ID, finanzas.FacturaEnviada); err != nil {
		return nil, err
	}
	return &dto.EnviarResponse{EmailID: emailID}, nil
}

// receptorCotizacion resuelve el destinatario: cliente registrado o prospecto.
func (uc *EnviarUseCase) receptorCotizacion(cot *entity.Cotizacion) (ReceptorPDF, error) {
	if cot.ClienteID != "" {
		cliente, err := uc.clienteRepo.GetByID(cot.ClienteID)
		if err != nil {
			return ReceptorPDF{}, err
		}
		if cliente == nil {
			return ReceptorPDF{}, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, cot.ClienteID)
		}
		if cliente.Email == "" {
			return ReceptorPDF{}, fmt.Errorf("%w: el cliente no tiene email", domain.ErrInvalidInput)
		}
		return ReceptorPDF{Nombre: cliente.RazonSocial, RUT: cliente.RUT, Email: cliente.Email}, nil
	}
	if cot.ProspectoEmail == "" {
		return ReceptorPDF{}, fmt.Errorf("%w: la cotización no tiene destinatario", domain.ErrInvalidInput)
	}
	return ReceptorPDF{Nombre: cot.ProspectoNombre, Email: cot.ProspectoEmail}, nil
}

// htmlDocumento arma el cuerpo HTML del correo.
func htmlDocumento(tipo, numero, nombre, total, moneda string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Hola %s,</h2>
    <p>Adjunto encontrarás la %s <strong>%s</strong>.</p>
    <p>Total del documento: <strong>$%s %s</strong></p>
    <p>Cualquier consulta, responde directamente a este correo.</p>
    <p style="color: #888; font-size: 12px;">Este es un correo automático del sistema de gestión.</p>
  </div>
</body>
</html>`, nombre, tipo, numero, total, moneda)
}
