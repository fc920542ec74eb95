package dto

import "github.com/shopspring/decimal"

// FacturaResponse factura con detalle para respuestas.
type FacturaResponse struct {
	ID               string              `json:"id"`
	Numero           string              `json:"numero"`
	ClienteID        string              `json:"cliente_id"`
	CotizacionID     string              `json:"cotizacion_id,omitempty"`
	FechaEmision     string              `json:"fecha_emision"`
	FechaVencimiento string              `json:"fecha_vencimiento"`
	Moneda           string              `json:"moneda"`
	Estado           string              `json:"estado"`
	AplicaIVA        bool                `json:"aplica_iva"`
	Notas            string              `json:"notas,omitempty"`
	ReferenciaExt    string              `json:"referencia_ext,omitempty"`
	Subtotal         decimal.Decimal     `json:"subtotal"`
	Impuesto         decimal.Decimal     `json:"impuesto"`
	Total            decimal.Decimal     `json:"total"`
	Items            []ItemLineaResponse `json:"items"`
}

// CambiarEstadoRequest body para PATCH /api/facturas/:id/estado.
type CambiarEstadoRequest struct {
	Estado string `json:"estado"`
}

// PatchFacturaRequest body para PATCH /api/facturas/:id.
// Solo notas y referencia externa; el estado se cambia únicamente por
// /facturas/:id/estado (máquina de estados).
type PatchFacturaRequest struct {
	Notas         *string `json:"notas,omitempty"`
	ReferenciaExt *string `json:"referencia_ext,omitempty"`
}

// VencidasResponse resultado del barrido de facturas vencidas.
type VencidasResponse struct {
	Revisadas int      `json:"revisadas"`
	Vencidas  []string `json:"vencidas"` // ids movidos a estado vencida
}
