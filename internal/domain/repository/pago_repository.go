package repository

import "github.com/tu-usuario/gestion-ti/internal/domain/entity"

// PagoRepository persistencia de pagos.
type PagoRepository interface {
	Create(pago *entity.Pago) error
	GetByID(id string) (*entity.Pago, error)
	ListByFactura(facturaID string) ([]*entity.Pago, error)
	List(limit, offset int) ([]*entity.Pago, error)
	Delete(id string) error
}
