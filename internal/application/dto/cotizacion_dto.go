package dto

import "github.com/shopspring/decimal"

// ItemLineaRequest línea de detalle en cotizaciones y facturas.
type ItemLineaRequest struct {
	Descripcion string          `json:"descripcion"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	PrecioUnit  decimal.Decimal `json:"precio_unit"`
}

// CreateCotizacionRequest body para POST /api/cotizaciones.
// ClienteID o el par ProspectoNombre+ProspectoEmail: exactamente uno de los dos.
type CreateCotizacionRequest struct {
	Numero          string             `json:"numero"`
	ClienteID       string             `json:"cliente_id,omitempty"`
	ProspectoNombre string             `json:"prospecto_nombre,omitempty"`
	ProspectoEmail  string             `json:"prospecto_email,omitempty"`
	FechaEmision    string             `json:"fecha_emision,omitempty"` // YYYY-MM-DD, default hoy
	FechaValidez    string             `json:"fecha_validez,omitempty"` // YYYY-MM-DD
	Moneda          string             `json:"moneda,omitempty"`        // default CLP
	AplicaIVA       bool               `json:"aplica_iva"`
	Notas           string             `json:"notas,omitempty"`
	Items           []ItemLineaRequest `json:"items"`
}

// UpdateCotizacionRequest body para PUT /api/cotizaciones/:id.
// Con Items presentes es un reemplazo completo (recalcula totales);
// con solo Estado es un cambio parcial de estado. Los punteros distinguen
// "no tocar el campo" (ausente) de "dejarlo vacío" (string vacío explícito).
type UpdateCotizacionRequest struct {
	Estado       string             `json:"estado,omitempty"`
	FechaValidez string             `json:"fecha_validez,omitempty"`
	Moneda       *string            `json:"moneda,omitempty"`
	AplicaIVA    *bool              `json:"aplica_iva,omitempty"`
	Notas        *string            `json:"notas,omitempty"`
	Items        []ItemLineaRequest `json:"items,omitempty"`
}

// ItemLineaResponse línea de detalle en respuestas.
type ItemLineaResponse struct {
	ID          string          `json:"id"`
	Descripcion string          `json:"descripcion"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	PrecioUnit  decimal.Decimal `json:"precio_unit"`
	Total       decimal.Decimal `json:"total"`
}

// CotizacionResponse cotización con detalle y totales calculados.
type CotizacionResponse struct {
	ID              string              `json:"id"`
	Numero          string              `json:"numero"`
	ClienteID       string              `json:"cliente_id,omitempty"`
	ProspectoNombre string              `json:"prospecto_nombre,omitempty"`
	ProspectoEmail  string              `json:"prospecto_email,omitempty"`
	FechaEmision    string              `json:"fecha_emision"`
	FechaValidez    string              `json:"fecha_validez,omitempty"`
	Moneda          string              `json:"moneda"`
	Estado          string              `json:"estado"`
	AplicaIVA       bool                `json:"aplica_iva"`
	Notas           string              `json:"notas,omitempty"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Impuesto        decimal.Decimal     `json:"impuesto"`
	Total           decimal.Decimal     `json:"total"`
	FacturaID       string              `json:"factura_id,omitempty"`
	Items           []ItemLineaResponse `json:"items"`
}

// ConvertirResponse resultado de POST /api/cotizaciones/:id/convertir.
type ConvertirResponse struct {
	FacturaID string `json:"factura_id"`
	Numero    string `json:"numero"`
}

// EnviarResponse resultado del envío por email (id del proveedor).
type EnviarResponse struct {
	EmailID string `json:"email_id"`
}
