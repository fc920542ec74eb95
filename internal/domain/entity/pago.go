package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pago registra un abono sobre una factura. Alimenta el flujo de caja pero no
// mueve el estado de la factura automáticamente.
type Pago struct {
	ID        string
	FacturaID string
	Monto     decimal.Decimal
	Fecha     time.Time
	Metodo    string // transferencia, efectivo, tarjeta...
	Notas     string
	CreatedAt time.Time
}
