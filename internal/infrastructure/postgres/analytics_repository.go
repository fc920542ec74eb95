package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de flujo de caja.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetFlujoCaja agrega en una sola pasada los montos del período:
// ingresos (pagos) y gastos por fecha dentro de la ventana; facturado del
// período sin contar anuladas; pendiente y vencido son fotos al día de hoy,
// no dependen de la ventana.
func (r *AnalyticsRepo) GetFlujoCaja(ctx context.Context, desde, hasta time.Time) (repository.FlujoCajaResult, error) {
	const query = `
	SELECT
	    COALESCE((SELECT SUM(monto) FROM pagos  WHERE fecha BETWEEN $1 AND $2), 0)            AS ingresos,
	    COALESCE((SELECT SUM(monto) FROM gastos WHERE fecha BETWEEN $1 AND $2), 0)            AS gastos,
	    COALESCE((SELECT SUM(total) FROM facturas
	              WHERE fecha_emision BETWEEN $1 AND $2 AND estado <> $5), 0)                 AS facturado,
	    COALESCE((SELECT SUM(total) FROM facturas WHERE estado IN ($3, $4)), 0)               AS pendiente,
	    COALESCE((SELECT SUM(total) FROM facturas WHERE estado = $6), 0)                      AS vencido`

	var res repository.FlujoCajaResult
	err := r.pool.QueryRow(ctx, query, desde, hasta,
		finanzas.FacturaEnviada, finanzas.FacturaPendiente,
		finanzas.FacturaAnulada, finanzas.FacturaVencida,
	).Scan(&res.Ingresos, &res.Gastos, &res.Facturado, &res.Pendiente, &res.Vencido)
	if err != nil {
		return repository.FlujoCajaResult{}, fmt.Errorf("analytics.GetFlujoCaja: %w", err)
	}
	return res, nil
}
