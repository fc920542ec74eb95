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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente. El RUT tiene constraint único.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, rut, razon_social, estado, contacto, email, telefono, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.RUT, cliente.RazonSocial, cliente.Estado,
		nullIfEmpty(cliente.Contacto), nullIfEmpty(cliente.Email),
		nullIfEmpty(cliente.Telefono), nullIfEmpty(cliente.Direccion),
		cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByRUT obtiene un cliente por RUT.
func (r *ClienteRepo) GetByRUT(rut string) (*entity.Cliente, error) {
	return r.getOne(`WHERE rut = $1`, rut)
}

func (r *ClienteRepo) getOne(where string, arg any) (*entity.Cliente, error) {
	query := `
		SELECT id, rut, razon_social, estado, contacto, email, telefono, direccion, created_at, updated_at
		FROM clientes ` + where
	var c entity.Cliente
	var contacto, email, telefono, direccion *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.RUT, &c.RazonSocial, &c.Estado,
		&contacto, &email, &telefono, &direccion,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	c.Contacto = orEmpty(contacto)
	c.Email = orEmpty(email)
	c.Telefono = orEmpty(telefono)
	c.Direccion = orEmpty(direccion)
	return &c, nil
}

// List lista clientes con paginación, ordenados por razón social.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, rut, razon_social, estado, contacto, email, telefono, direccion, created_at, updated_at
		FROM clientes ORDER BY razon_social LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		var contacto, email, telefono, direccion *string
		if err := rows.Scan(&c.ID, &c.RUT, &c.RazonSocial, &c.Estado,
			&contacto, &email, &telefono, &direccion, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		c.Contacto = orEmpty(contacto)
		c.Email = orEmpty(email)
		c.Telefono = orEmpty(telefono)
		c.Direccion = orEmpty(direccion)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET rut = $2, razon_social = $3, estado = $4, contacto = $5, email = $6,
		    telefono = $7, direccion = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.RUT, cliente.RazonSocial, cliente.Estado,
		nullIfEmpty(cliente.Contacto), nullIfEmpty(cliente.Email),
		nullIfEmpty(cliente.Telefono), nullIfEmpty(cliente.Direccion),
		cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
