package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

// PDFUseCase descarga de la representación PDF de cotizaciones y facturas.
type PDFUseCase struct {
	cotRepo     repository.CotizacionRepository
	factRepo    repository.FacturaRepository
	clienteRepo repository.ClienteRepository
	generator   PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	cotRepo repository.CotizacionRepository,
	factRepo repository.FacturaRepository,
	clienteRepo repository.ClienteRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{cotRepo: cotRepo, factRepo: factRepo, clienteRepo: clienteRepo, generator: generator}
}

// CotizacionPDF genera el PDF de una cotización.
// Retorna los bytes y el nombre de archivo Cotizacion-<numero>.pdf.
func (uc *PDFUseCase) CotizacionPDF(ctx context.Context, id string) ([]byte, string, error) {
	cot, err := uc.cotRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cotización: %w", err)
	}
	if cot == nil {
		return nil, "", domain.ErrNotFound
	}

	receptor := ReceptorPDF{Nombre: cot.ProspectoNombre, Email: cot.ProspectoEmail}
	if cot.ClienteID != "" {
		cliente, err := uc.clienteRepo.GetByID(cot.ClienteID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
		}
		if cliente != nil {
			receptor = ReceptorPDF{Nombre: cliente.RazonSocial, RUT: cliente.RUT, Email: cliente.Email}
		}
	}

	pdf, err := uc.generator.CotizacionPDF(ctx, cot, receptor)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("Cotizacion-%s.pdf", cot.Numero), nil
}

// FacturaPDF genera el PDF de una factura.
// Retorna los bytes y el nombre de archivo Factura-<numero>.pdf.
func (uc *PDFUseCase) FacturaPDF(ctx context.Context, id string) ([]byte, string, error) {
	fact, err := uc.factRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if fact == nil {
		return nil, "", domain.ErrNotFound
	}

	cliente, err := uc.clienteRepo.GetByID(fact.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	receptor := ReceptorPDF{}
	if cliente != nil {
		receptor = ReceptorPDF{Nombre: cliente.RazonSocial, RUT: cliente.RUT, Email: cliente.Email}
	}

	pdf, err := uc.generator.FacturaPDF(ctx, fact, receptor)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("Factura-%s.pdf", fact.Numero), nil
}
