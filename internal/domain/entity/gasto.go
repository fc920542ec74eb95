package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto registra un egreso de la empresa (arriendo, licencias, sueldos...).
type Gasto struct {
	ID          string
	Categoria   string
	Descripcion string
	Monto       decimal.Decimal
	Fecha       time.Time
	CreatedAt   time.Time
}
