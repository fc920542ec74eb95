package dto

import "github.com/shopspring/decimal"

// CreatePagoRequest body para POST /api/pagos.
type CreatePagoRequest struct {
	FacturaID string          `json:"factura_id"`
	Monto     decimal.Decimal `json:"monto"`
	Fecha     string          `json:"fecha,omitempty"` // YYYY-MM-DD, default hoy
	Metodo    string          `json:"metodo,omitempty"`
	Notas     string          `json:"notas,omitempty"`
}

// PagoResponse pago en respuestas.
type PagoResponse struct {
	ID        string          `json:"id"`
	FacturaID string          `json:"factura_id"`
	Monto     decimal.Decimal `json:"monto"`
	Fecha     string          `json:"fecha"`
	Metodo    string          `json:"metodo,omitempty"`
	Notas     string          `json:"notas,omitempty"`
}
