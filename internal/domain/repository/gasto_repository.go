package repository

import "github.com/tu-usuario/gestion-ti/internal/domain/entity"

// GastoRepository persistencia de gastos.
type GastoRepository interface {
	Create(gasto *entity.Gasto) error
	GetByID(id string) (*entity.Gasto, error)
	List(limit, offset int) ([]*entity.Gasto, error)
	Delete(id string) error
}
