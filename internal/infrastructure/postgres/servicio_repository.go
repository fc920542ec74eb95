package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

var _ repository.ServicioRepository = (*ServicioRepo)(nil)

// ServicioRepo implementación de ServicioRepository.
type ServicioRepo struct {
	q Querier
}

func NewServicioRepository(q Querier) *ServicioRepo {
	return &ServicioRepo{q: q}
}

func (r *ServicioRepo) Create(servicio *entity.Servicio) error {
	query := `
		INSERT INTO servicios (id, nombre, descripcion, precio_base, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		servicio.ID, servicio.Nombre, nullIfEmpty(servicio.Descripcion),
		servicio.PrecioBase, servicio.Activo, servicio.CreatedAt, servicio.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert servicio: %w", err)
	}
	return nil
}

func (r *ServicioRepo) GetByID(id string) (*entity.Servicio, error) {
	query := `
		SELECT id, nombre, descripcion, precio_base, activo, created_at, updated_at
		FROM servicios WHERE id = $1`
	var s entity.Servicio
	var descripcion *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Nombre, &descripcion, &s.PrecioBase, &s.Activo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servicio: %w", err)
	}
	s.Descripcion = orEmpty(descripcion)
	return &s, nil
}

func (r *ServicioRepo) List(limit, offset int) ([]*entity.Servicio, error) {
	query := `
		SELECT id, nombre, descripcion, precio_base, activo, created_at, updated_at
		FROM servicios ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list servicios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Servicio
	for rows.Next() {
		var s entity.Servicio
		var descripcion *string
		if err := rows.Scan(&s.ID, &s.Nombre, &descripcion, &s.PrecioBase, &s.Activo, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan servicio: %w", err)
		}
		s.Descripcion = orEmpty(descripcion)
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *ServicioRepo) Update(servicio *entity.Servicio) error {
	query := `
		UPDATE servicios SET nombre = $2, descripcion = $3, precio_base = $4, activo = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		servicio.ID, servicio.Nombre, nullIfEmpty(servicio.Descripcion),
		servicio.PrecioBase, servicio.Activo, servicio.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update servicio: %w", err)
	}
	return nil
}

func (r *ServicioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM servicios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete servicio: %w", err)
	}
	return nil
}
