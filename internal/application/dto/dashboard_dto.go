package dto

import "github.com/shopspring/decimal"

// FlujoCajaDTO respuesta de GET /api/dashboard/flujo-caja.
type FlujoCajaDTO struct {
	Periodo   string          `json:"periodo"` // mes | trimestre | año
	Desde     string          `json:"desde"`   // YYYY-MM-DD
	Hasta     string          `json:"hasta"`
	Ingresos  decimal.Decimal `json:"ingresos"`
	Gastos    decimal.Decimal `json:"gastos"`
	Saldo     decimal.Decimal `json:"saldo"`
	Facturado decimal.Decimal `json:"facturado"`
	Pendiente decimal.Decimal `json:"pendiente"`
	Vencido   decimal.Decimal `json:"vencido"`
}
