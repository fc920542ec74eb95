package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

var _ repository.CotizacionRepository = (*CotizacionRepo)(nil)

// CotizacionRepo implementación de CotizacionRepository. Las líneas viven en
// cotizacion_items y pertenecen al documento (delete en cascada).
type CotizacionRepo struct {
	q Querier
}

func NewCotizacionRepository(q Querier) *CotizacionRepo {
	return &CotizacionRepo{q: q}
}

// Create inserta la cabecera y sus líneas.
func (r *CotizacionRepo) Create(cot *entity.Cotizacion) error {
	query := `
		INSERT INTO cotizaciones (id, numero, cliente_id, prospecto_nombre, prospecto_email,
			fecha_emision, fecha_validez, moneda, estado, aplica_iva, notas,
			subtotal, impuesto, total, factura_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		cot.ID, cot.Numero, nullIfEmpty(cot.ClienteID),
		nullIfEmpty(cot.ProspectoNombre), nullIfEmpty(cot.ProspectoEmail),
		cot.FechaEmision, cot.FechaValidez, cot.Moneda, cot.Estado, cot.AplicaIVA,
		nullIfEmpty(cot.Notas), cot.Subtotal, cot.Impuesto, cot.Total,
		nullIfEmpty(cot.FacturaID), cot.CreatedAt, cot.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cotizacion: %w", err)
	}
	return r.insertItems(cot.ID, cot.Items)
}

// GetByID obtiene la cotización con sus líneas.
func (r *CotizacionRepo) GetByID(id string) (*entity.Cotizacion, error) {
	query := `
		SELECT id, numero, cliente_id, prospecto_nombre, prospecto_email,
		       fecha_emision, fecha_validez, moneda, estado, aplica_iva, notas,
		       subtotal, impuesto, total, factura_id, created_at, updated_at
		FROM cotizaciones WHERE id = $1`
	var c entity.Cotizacion
	var clienteID, prospectoNombre, prospectoEmail, notas, facturaID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Numero, &clienteID, &prospectoNombre, &prospectoEmail,
		&c.FechaEmision, &c.FechaValidez, &c.Moneda, &c.Estado, &c.AplicaIVA, &notas,
		&c.Subtotal, &c.Impuesto, &c.Total, &facturaID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cotizacion: %w", err)
	}
	c.ClienteID = orEmpty(clienteID)
	c.ProspectoNombre = orEmpty(prospectoNombre)
	c.ProspectoEmail = orEmpty(prospectoEmail)
	c.Notas = orEmpty(notas)
	c.FacturaID = orEmpty(facturaID)

	items, err := r.loadItems(c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return &c, nil
}

// List lista cotizaciones (solo cabeceras) con paginación.
func (r *CotizacionRepo) List(limit, offset int) ([]*entity.Cotizacion, error) {
	query := `
		SELECT id, numero, cliente_id, prospecto_nombre, prospecto_email,
		       fecha_emision, fecha_validez, moneda, estado, aplica_iva, notas,
		       subtotal, impuesto, total, factura_id, created_at, updated_at
		FROM cotizaciones ORDER BY fecha_emision DESC, numero DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cotizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cotizacion
	for rows.Next() {
		var c entity.Cotizacion
		var clienteID, prospectoNombre, prospectoEmail, notas, facturaID *string
		if err := rows.Scan(&c.ID, &c.Numero, &clienteID, &prospectoNombre, &prospectoEmail,
			&c.FechaEmision, &c.FechaValidez, &c.Moneda, &c.Estado, &c.AplicaIVA, &notas,
			&c.Subtotal, &c.Impuesto, &c.Total, &facturaID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cotizacion: %w", err)
		}
		c.ClienteID = orEmpty(clienteID)
		c.ProspectoNombre = orEmpty(prospectoNombre)
		c.ProspectoEmail = orEmpty(prospectoEmail)
		c.Notas = orEmpty(notas)
		c.FacturaID = orEmpty(facturaID)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera (las líneas van por ReplaceItems).
func (r *CotizacionRepo) Update(cot *entity.Cotizacion) error {
	query := `
		UPDATE cotizaciones
		SET numero = $2, cliente_id = $3, prospecto_nombre = $4, prospecto_email = $5,
		    fecha_emision = $6, fecha_validez = $7, moneda = $8, estado = $9,
		    aplica_iva = $10, notas = $11, subtotal = $12, impuesto = $13, total = $14,
		    updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cot.ID, cot.Numero, nullIfEmpty(cot.ClienteID),
		nullIfEmpty(cot.ProspectoNombre), nullIfEmpty(cot.ProspectoEmail),
		cot.FechaEmision, cot.FechaValidez, cot.Moneda, cot.Estado,
		cot.AplicaIVA, nullIfEmpty(cot.Notas), cot.Subtotal, cot.Impuesto, cot.Total,
		cot.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cotizacion: %w", err)
	}
	return nil
}

// UpdateEstado cambia solo el estado.
func (r *CotizacionRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cotizaciones SET estado = $2, updated_at = now() WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado cotizacion: %w", err)
	}
	return nil
}

// MarcarFacturada fija estado=facturada y el backlink a la factura creada.
func (r *CotizacionRepo) MarcarFacturada(id, facturaID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cotizaciones SET estado = $2, factura_id = $3, updated_at = now() WHERE id = $1`,
		id, entity.CotizacionFacturada, facturaID)
	if err != nil {
		return fmt.Errorf("marcar facturada: %w", err)
	}
	return nil
}

// ReplaceItems borra y recrea las líneas de la cotización.
func (r *CotizacionRepo) ReplaceItems(cotizacionID string, items []entity.ItemLinea) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cotizacion_items WHERE cotizacion_id = $1`, cotizacionID)
	if err != nil {
		return fmt.Errorf("delete items cotizacion: %w", err)
	}
	return r.insertItems(cotizacionID, items)
}

// Delete elimina la cotización (las líneas caen en cascada).
func (r *CotizacionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cotizaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cotizacion: %w", err)
	}
	return nil
}

func (r *CotizacionRepo) insertItems(cotizacionID string, items []entity.ItemLinea) error {
	for i, it := range items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO cotizacion_items (id, cotizacion_id, posicion, descripcion, cantidad, precio_unit, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, cotizacionID, i, it.Descripcion, it.Cantidad, it.PrecioUnit, it.Total,
		)
		if err != nil {
			return fmt.Errorf("insert item cotizacion: %w", err)
		}
	}
	return nil
}

func (r *CotizacionRepo) loadItems(cotizacionID string) ([]entity.ItemLinea, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, descripcion, cantidad, precio_unit, total
		FROM cotizacion_items WHERE cotizacion_id = $1 ORDER BY posicion`, cotizacionID)
	if err != nil {
		return nil, fmt.Errorf("load items cotizacion: %w", err)
	}
	defer rows.Close()
	var items []entity.ItemLinea
	for rows.Next() {
		var it entity.ItemLinea
		if err := rows.Scan(&it.ID, &it.Descripcion, &it.Cantidad, &it.PrecioUnit, &it.Total); err != nil {
			return nil, fmt.Errorf("scan item cotizacion: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
