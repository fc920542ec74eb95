package repository

import "github.com/tu-usuario/gestion-ti/internal/domain/entity"

// CotizacionRepository persistencia de cotizaciones y sus líneas.
// Los items pertenecen a la cotización: el update completo los borra y recrea.
type CotizacionRepository interface {
	Create(cot *entity.Cotizacion) error
	GetByID(id string) (*entity.Cotizacion, error)
	List(limit, offset int) ([]*entity.Cotizacion, error)
	Update(cot *entity.Cotizacion) error
	UpdateEstado(id, estado string) error
	// MarcarFacturada fija estado=facturada y el backlink a la factura creada.
	MarcarFacturada(id, facturaID string) error
	ReplaceItems(cotizacionID string, items []entity.ItemLinea) error
	Delete(id string) error
}
