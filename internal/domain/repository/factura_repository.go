package repository

import (
	"time"

	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
)

// FacturaRepository persistencia de facturas y sus líneas.
type FacturaRepository interface {
	Create(factura *entity.Factura) error
	GetByID(id string) (*entity.Factura, error)
	List(limit, offset int) ([]*entity.Factura, error)
	UpdateEstado(id, estado string) error
	// UpdateDatos actualiza solo notas y referencia externa; el estado nunca
	// se toca por esta vía (todo cambio de estado pasa por la máquina de estados).
	UpdateDatos(id, notas, referenciaExt string) error
	// ListPendientesVencidas devuelve facturas en estado pendiente cuya fecha
	// de vencimiento es anterior a la fecha dada (para el barrido de vencidas).
	ListPendientesVencidas(antesDe time.Time) ([]*entity.Factura, error)
}
