package entity

import "github.com/shopspring/decimal"

// ItemLinea es la línea de detalle compartida por cotizaciones y facturas.
// Pertenece en exclusiva a su documento padre; nunca se comparte entre
// documentos (la conversión duplica por valor).
type ItemLinea struct {
	ID          string
	Descripcion string
	Cantidad    decimal.Decimal
	PrecioUnit  decimal.Decimal
	Total       decimal.Decimal // cantidad × precio unitario
}
