// Package finanzas contiene la lógica financiera pura del negocio:
// cálculo de totales e IVA de cotizaciones/facturas y la máquina de estados
// del ciclo de vida de la factura. No tiene dependencias de infraestructura.
package finanzas

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-ti/internal/domain"
)

// TasaIVA es el IVA chileno (19%).
var TasaIVA = decimal.NewFromFloat(0.19)

// LineaCalculo es el par cantidad/precio de una línea de documento.
type LineaCalculo struct {
	Cantidad   decimal.Decimal
	PrecioUnit decimal.Decimal
}

// Totales es el resultado del cálculo monetario de un documento.
type Totales struct {
	Lineas   []decimal.Decimal // total por línea, en el mismo orden del input
	Subtotal decimal.Decimal
	Impuesto decimal.Decimal
	Total    decimal.Decimal
}

// CalcularTotales deriva los montos de un documento a partir de sus líneas.
//
//	totalLinea = cantidad × precioUnit
//	subtotal   = Σ totalLinea
//	impuesto   = round(subtotal × 0.19) si aplicaIVA, si no 0
//	total      = subtotal + impuesto
//
// El redondeo del impuesto es a la unidad monetaria entera (pesos, sin
// centavos), mitad hacia arriba (Round half away from zero de shopspring).
// Cantidades o precios negativos retornan ErrInvalidInput.
func CalcularTotales(lineas []LineaCalculo, aplicaIVA bool) (Totales, error) {
	t := Totales{
		Lineas:   make([]decimal.Decimal, 0, len(lineas)),
		Subtotal: decimal.Zero,
		Impuesto: decimal.Zero,
		Total:    decimal.Zero,
	}
	for i, l := range lineas {
		if l.Cantidad.IsNegative() || l.PrecioUnit.IsNegative() {
			return Totales{}, fmt.Errorf("%w: línea %d con cantidad o precio negativo", domain.ErrInvalidInput, i+1)
		}
		totalLinea := l.Cantidad.Mul(l.PrecioUnit)
		t.Lineas = append(t.Lineas, totalLinea)
		t.Subtotal = t.Subtotal.Add(totalLinea)
	}
	if aplicaIVA {
		t.Impuesto = t.Subtotal.Mul(TasaIVA).Round(0)
	}
	t.Total = t.Subtotal.Add(t.Impuesto)
	return t, nil
}
