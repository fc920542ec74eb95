package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización.
const (
	CotizacionBorrador  = "borrador"
	CotizacionEnviada   = "enviada"
	CotizacionAprobada  = "aprobada"
	CotizacionRechazada = "rechazada"
	CotizacionFacturada = "facturada" // convertida en factura; no admite una segunda conversión
)

// Cotizacion representa un documento de cotización (pre-venta).
// Pertenece a un Cliente registrado o a un prospecto (nombre + email):
// exactamente uno de los dos debe estar presente.
type Cotizacion struct {
	ID              string
	Numero          string
	ClienteID       string // vacío si es prospecto
	ProspectoNombre string
	ProspectoEmail  string
	FechaEmision    time.Time
	FechaValidez    time.Time
	Moneda          string
	Estado          string
	AplicaIVA       bool
	Notas           string
	Subtotal        decimal.Decimal
	Impuesto        decimal.Decimal
	Total           decimal.Decimal
	FacturaID       string // backlink a la factura creada en la conversión
	Items           []ItemLinea
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EstadoCotizacionValido indica si el estado pertenece al conjunto permitido.
func EstadoCotizacionValido(s string) bool {
	switch s {
	case CotizacionBorrador, CotizacionEnviada, CotizacionAprobada, CotizacionRechazada, CotizacionFacturada:
		return true
	}
	return false
}
