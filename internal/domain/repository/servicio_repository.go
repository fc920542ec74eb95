package repository

import "github.com/tu-usuario/gestion-ti/internal/domain/entity"

// ServicioRepository persistencia del catálogo de servicios.
type ServicioRepository interface {
	Create(servicio *entity.Servicio) error
	GetByID(id string) (*entity.Servicio, error)
	List(limit, offset int) ([]*entity.Servicio, error)
	Update(servicio *entity.Servicio) error
	Delete(id string) error
}
