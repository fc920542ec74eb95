package repository

import "github.com/tu-usuario/gestion-ti/internal/domain/entity"

// ClienteRepository persistencia de clientes.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByRUT(rut string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
