package dto

import "github.com/shopspring/decimal"

// CreateGastoRequest body para POST /api/gastos.
type CreateGastoRequest struct {
	Categoria   string          `json:"categoria"`
	Descripcion string          `json:"descripcion,omitempty"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha,omitempty"` // YYYY-MM-DD, default hoy
}

// GastoResponse gasto en respuestas.
type GastoResponse struct {
	ID          string          `json:"id"`
	Categoria   string          `json:"categoria"`
	Descripcion string          `json:"descripcion,omitempty"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"`
}
