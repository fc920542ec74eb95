package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo implementación de PagoRepository.
type PagoRepo struct {
	q Querier
}

func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

func (r *PagoRepo) Create(pago *entity.Pago) error {
	query := `
		INSERT INTO pagos (id, factura_id, monto, fecha, metodo, notas, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		pago.ID, pago.FacturaID, pago.Monto, pago.Fecha,
		nullIfEmpty(pago.Metodo), nullIfEmpty(pago.Notas), pago.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

func (r *PagoRepo) GetByID(id string) (*entity.Pago, error) {
	query := `
		SELECT id, factura_id, monto, fecha, metodo, notas, created_at
		FROM pagos WHERE id = $1`
	var p entity.Pago
	var metodo, notas *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.FacturaID, &p.Monto, &p.Fecha, &metodo, &notas, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago: %w", err)
	}
	p.Metodo = orEmpty(metodo)
	p.Notas = orEmpty(notas)
	return &p, nil
}

func (r *PagoRepo) ListByFactura(facturaID string) ([]*entity.Pago, error) {
	query := `
		SELECT id, factura_id, monto, fecha, metodo, notas, created_at
		FROM pagos WHERE factura_id = $1 ORDER BY fecha`
	rows, err := r.q.Query(context.Background(), query, facturaID)
	if err != nil {
		return nil, fmt.Errorf("list pagos por factura: %w", err)
	}
	return scanPagos(rows)
}

func (r *PagoRepo) List(limit, offset int) ([]*entity.Pago, error) {
	query := `
		SELECT id, factura_id, monto, fecha, metodo, notas, created_at
		FROM pagos ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	return scanPagos(rows)
}

func (r *PagoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pagos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pago: %w", err)
	}
	return nil
}

func scanPagos(rows pgx.Rows) ([]*entity.Pago, error) {
	defer rows.Close()
	var list []*entity.Pago
	for rows.Next() {
		var p entity.Pago
		var metodo, notas *string
		if err := rows.Scan(&p.ID, &p.FacturaID, &p.Monto, &p.Fecha, &metodo, &notas, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		p.Metodo = orEmpty(metodo)
		p.Notas = orEmpty(notas)
		list = append(list, &p)
	}
	return list, rows.Err()
}
