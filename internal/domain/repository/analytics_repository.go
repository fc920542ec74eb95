package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FlujoCajaResult agregados financieros de un período (solo lectura).
type FlujoCajaResult struct {
	Ingresos  decimal.Decimal // pagos recibidos en el período
	Gastos    decimal.Decimal // egresos del período
	Facturado decimal.Decimal // total de facturas emitidas (no anuladas) en el período
	Pendiente decimal.Decimal // facturas enviadas/pendientes a la fecha
	Vencido   decimal.Decimal // facturas vencidas a la fecha
}

// AnalyticsRepository consultas de agregación para el dashboard.
type AnalyticsRepository interface {
	GetFlujoCaja(ctx context.Context, desde, hasta time.Time) (FlujoCajaResult, error)
}
