package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Servicio es una entrada del catálogo de servicios TI (soporte, desarrollo,
// hosting...). Sirve de plantilla para las líneas de cotización.
type Servicio struct {
	ID          string
	Nombre      string
	Descripcion string
	PrecioBase  decimal.Decimal
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
