package billing

import (
	"context"

	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

// ConversionTxRunner ejecuta la conversión cotización→factura dentro de una
// transacción: folio + insert de factura e items + marca de la cotización
// se confirman o revierten juntos.
type ConversionTxRunner interface {
	RunConversion(ctx context.Context, fn func(
		cotRepo repository.CotizacionRepository,
		factRepo repository.FacturaRepository,
		folioRepo repository.FolioRepository,
	) error) error
}

// ReceptorPDF identifica al destinatario impreso en el documento
// (cliente registrado o prospecto).
type ReceptorPDF struct {
	Nombre string
	RUT    string
	Email  string
}

// PDFGenerator genera la representación PDF de los documentos.
type PDFGenerator interface {
	CotizacionPDF(ctx context.Context, cot *entity.Cotizacion, receptor ReceptorPDF) ([]byte, error)
	FacturaPDF(ctx context.Context, fact *entity.Factura, receptor ReceptorPDF) ([]byte, error)
}

// EmailSender despacha un documento por correo con el PDF adjunto.
// Devuelve el id del email asignado por el proveedor.
type EmailSender interface {
	SendDocumento(ctx context.Context, para, asunto, html, nombreAdjunto string, pdf []byte) (string, error)
}
