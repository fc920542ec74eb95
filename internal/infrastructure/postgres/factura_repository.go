package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository. La columna cotizacion_id
// tiene constraint único: la segunda conversión de la misma cotización choca
// ahí aunque dos requests pasen la validación de estado a la vez.
type FacturaRepo struct {
	q Querier
}

func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

// Create inserta la cabecera y sus líneas.
func (r *FacturaRepo) Create(factura *entity.Factura) error {
	query := `
		INSERT INTO facturas (id, numero, cliente_id, cotizacion_id, fecha_emision, fecha_vencimiento,
			moneda, estado, aplica_iva, notas, referencia_ext, subtotal, impuesto, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		factura.ID, factura.Numero, factura.ClienteID, nullIfEmpty(factura.CotizacionID),
		factura.FechaEmision, factura.FechaVencimiento, factura.Moneda, factura.Estado,
		factura.AplicaIVA, nullIfEmpty(factura.Notas), nullIfEmpty(factura.ReferenciaExt),
		factura.Subtotal, factura.Impuesto, factura.Total,
		factura.CreatedAt, factura.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	for i, it := range factura.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO factura_items (id, factura_id, posicion, descripcion, cantidad, precio_unit, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, factura.ID, i, it.Descripcion, it.Cantidad, it.PrecioUnit, it.Total,
		)
		if err != nil {
			return fmt.Errorf("insert item factura: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la factura con sus líneas.
func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	query := selectFactura + ` WHERE id = $1`
	var f entity.Factura
	var cotizacionID, notas, referenciaExt *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Numero, &f.ClienteID, &cotizacionID, &f.FechaEmision, &f.FechaVencimiento,
		&f.Moneda, &f.Estado, &f.AplicaIVA, &notas, &referenciaExt,
		&f.Subtotal, &f.Impuesto, &f.Total, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	f.CotizacionID = orEmpty(cotizacionID)
	f.Notas = orEmpty(notas)
	f.ReferenciaExt = orEmpty(referenciaExt)

	items, err := r.loadItems(f.ID)
	if err != nil {
		return nil, err
	}
	f.Items = items
	return &f, nil
}

const selectFactura = `
	SELECT id, numero, cliente_id, cotizacion_id, fecha_emision, fecha_vencimiento,
	       moneda, estado, aplica_iva, notas, referencia_ext, subtotal, impuesto, total, created_at, updated_at
	FROM facturas`

// List lista facturas (solo cabeceras) con paginación.
func (r *FacturaRepo) List(limit, offset int) ([]*entity.Factura, error) {
	query := selectFactura + ` ORDER BY numero DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	return scanFacturas(rows)
}

// UpdateEstado cambia solo el estado. La validación de transición es del
// caso de uso; este método no decide.
func (r *FacturaRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE facturas SET estado = $2, updated_at = now() WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado factura: %w", err)
	}
	return nil
}

// UpdateDatos actualiza notas y referencia externa; nunca el estado.
func (r *FacturaRepo) UpdateDatos(id, notas, referenciaExt string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE facturas SET notas = $2, referencia_ext = $3, updated_at = now() WHERE id = $1`,
		id, nullIfEmpty(notas), nullIfEmpty(referenciaExt))
	if err != nil {
		return fmt.Errorf("update datos factura: %w", err)
	}
	return nil
}

// ListPendientesVencidas facturas pendientes con vencimiento anterior a la fecha dada.
func (r *FacturaRepo) ListPendientesVencidas(antesDe time.Time) ([]*entity.Factura, error) {
	query := selectFactura + ` WHERE estado = $1 AND fecha_vencimiento < $2 ORDER BY fecha_vencimiento`
	rows, err := r.q.Query(context.Background(), query, finanzas.FacturaPendiente, antesDe)
	if err != nil {
		return nil, fmt.Errorf("list facturas vencidas: %w", err)
	}
	return scanFacturas(rows)
}

func scanFacturas(rows pgx.Rows) ([]*entity.Factura, error) {
	defer rows.Close()
	var list []*entity.Factura
	for rows.Next() {
		var f entity.Factura
		var cotizacionID, notas, referenciaExt *string
		if err := rows.Scan(&f.ID, &f.Numero, &f.ClienteID, &cotizacionID,
			&f.FechaEmision, &f.FechaVencimiento, &f.Moneda, &f.Estado, &f.AplicaIVA, &notas, &referenciaExt,
			&f.Subtotal, &f.Impuesto, &f.Total, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		f.CotizacionID = orEmpty(cotizacionID)
		f.Notas = orEmpty(notas)
		f.ReferenciaExt = orEmpty(referenciaExt)
		list = append(list, &f)
	}
	return list, rows.Err()
}

func (r *FacturaRepo) loadItems(facturaID string) ([]entity.ItemLinea, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, descripcion, cantidad, precio_unit, total
		FROM factura_items WHERE factura_id = $1 ORDER BY posicion`, facturaID)
	if err != nil {
		return nil, fmt.Errorf("load items factura: %w", err)
	}
	defer rows.Close()
	var items []entity.ItemLinea
	for rows.Next() {
		var it entity.ItemLinea
		if err := rows.Scan(&it.ID, &it.Descripcion, &it.Cantidad, &it.PrecioUnit, &it.Total); err != nil {
			return nil, fmt.Errorf("scan item factura: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
