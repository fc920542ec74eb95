package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura representa un documento de cobro emitido a un cliente registrado.
// Numero tiene el formato FAC-<año>-<secuencia de 4 dígitos> y se genera con
// un folio atómico por año (tabla folios).
type Factura struct {
	ID               string
	Numero           string
	ClienteID        string
	CotizacionID     string // vacío si la factura se creó sin cotización
	FechaEmision     time.Time
	FechaVencimiento time.Time
	Moneda           string
	Estado           string // constantes Factura* del paquete finanzas
	AplicaIVA        bool   // copiado de la cotización en la conversión
	Notas            string
	ReferenciaExt    string // número de referencia externo (OC del cliente, etc.)
	Subtotal         decimal.Decimal
	Impuesto         decimal.Decimal
	Total            decimal.Decimal
	Items            []ItemLinea
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
