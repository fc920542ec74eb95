package dto

import "github.com/shopspring/decimal"

// ServicioRequest body para POST/PUT de servicios del catálogo.
type ServicioRequest struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	PrecioBase  decimal.Decimal `json:"precio_base"`
	Activo      *bool           `json:"activo,omitempty"`
}

// ServicioResponse servicio en respuestas.
type ServicioResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	PrecioBase  decimal.Decimal `json:"precio_base"`
	Activo      bool            `json:"activo"`
}
