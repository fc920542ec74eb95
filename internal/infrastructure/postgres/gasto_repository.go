package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación de GastoRepository.
type GastoRepo struct {
	q Querier
}

func NewGastoRepository(q Querier) *GastoRepo {
	return &GastoRepo{q: q}
}

func (r *GastoRepo) Create(gasto *entity.Gasto) error {
	query := `
		INSERT INTO gastos (id, categoria, descripcion, monto, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		gasto.ID, gasto.Categoria, nullIfEmpty(gasto.Descripcion),
		gasto.Monto, gasto.Fecha, gasto.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

func (r *GastoRepo) GetByID(id string) (*entity.Gasto, error) {
	query := `
		SELECT id, categoria, descripcion, monto, fecha, created_at
		FROM gastos WHERE id = $1`
	var g entity.Gasto
	var descripcion *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Categoria, &descripcion, &g.Monto, &g.Fecha, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto: %w", err)
	}
	g.Descripcion = orEmpty(descripcion)
	return &g, nil
}

func (r *GastoRepo) List(limit, offset int) ([]*entity.Gasto, error) {
	query := `
		SELECT id, categoria, descripcion, monto, fecha, created_at
		FROM gastos ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Gasto
	for rows.Next() {
		var g entity.Gasto
		var descripcion *string
		if err := rows.Scan(&g.ID, &g.Categoria, &descripcion, &g.Monto, &g.Fecha, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		g.Descripcion = orEmpty(descripcion)
		list = append(list, &g)
	}
	return list, rows.Err()
}

func (r *GastoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM gastos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gasto: %w", err)
	}
	return nil
}
