package finanzas_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
)

func linea(cantidad, precio int64) finanzas.LineaCalculo {
	return finanzas.LineaCalculo{
		Cantidad:   decimal.NewFromInt(cantidad),
		PrecioUnit: decimal.NewFromInt(precio),
	}
}

// Escenario de referencia: [{2, 1000}, {1, 500}] con IVA →
// subtotal 2500, impuesto 475, total 2975.
func TestCalcularTotales_EscenarioConIVA(t *testing.T) {
	tot, err := finanzas.CalcularTotales([]finanzas.LineaCalculo{
		linea(2, 1000),
		linea(1, 500),
	}, true)
	require.NoError(t, err)

	assert.True(t, tot.Subtotal.Equal(decimal.NewFromInt(2500)), "subtotal debe ser 2500, fue %s", tot.Subtotal)
	assert.True(t, tot.Impuesto.Equal(decimal.NewFromInt(475)), "impuesto debe ser 475, fue %s", tot.Impuesto)
	assert.True(t, tot.Total.Equal(decimal.NewFromInt(2975)), "total debe ser 2975, fue %s", tot.Total)
}

// Mismas líneas sin IVA → impuesto 0, total igual al subtotal.
func TestCalcularTotales_EscenarioSinIVA(t *testing.T) {
	tot, err := finanzas.CalcularTotales([]finanzas.LineaCalculo{
		linea(2, 1000),
		linea(1, 500),
	}, false)
	require.NoError(t, err)

	assert.True(t, tot.Subtotal.Equal(decimal.NewFromInt(2500)))
	assert.True(t, tot.Impuesto.IsZero(), "sin IVA el impuesto debe ser 0")
	assert.True(t, tot.Total.Equal(decimal.NewFromInt(2500)))
}

// El subtotal es la suma aritmética de las líneas, independiente del orden.
func TestCalcularTotales_IndependienteDelOrden(t *testing.T) {
	lineas := []finanzas.LineaCalculo{linea(3, 7000), linea(1, 999), linea(10, 150)}
	invertidas := []finanzas.LineaCalculo{lineas[2], lineas[1], lineas[0]}

	a, err := finanzas.CalcularTotales(lineas, true)
	require.NoError(t, err)
	b, err := finanzas.CalcularTotales(invertidas, true)
	require.NoError(t, err)

	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.Impuesto.Equal(b.Impuesto))
	assert.True(t, a.Total.Equal(b.Total))
}

// El total por línea es cantidad × precio en el mismo orden del input.
func TestCalcularTotales_TotalesPorLinea(t *testing.T) {
	tot, err := finanzas.CalcularTotales([]finanzas.LineaCalculo{
		linea(2, 1000),
		linea(1, 500),
	}, false)
	require.NoError(t, err)

	require.Len(t, tot.Lineas, 2)
	assert.True(t, tot.Lineas[0].Equal(decimal.NewFromInt(2000)))
	assert.True(t, tot.Lineas[1].Equal(decimal.NewFromInt(500)))
}

// El redondeo del IVA es a peso entero, mitad hacia arriba.
// subtotal 13 → 13 × 0.19 = 2.47 → 2; subtotal 50 → 9.5 → 10.
func TestCalcularTotales_RedondeoIVA(t *testing.T) {
	casos := []struct {
		nombre   string
		subtotal int64
		impuesto int64
	}{
		{"redondeo hacia abajo", 13, 2},    // 2.47
		{"mitad exacta sube", 50, 10},      // 9.50
		{"redondeo hacia arriba", 40, 8},   // 7.60
		{"subtotal cero", 0, 0},
		{"monto grande", 1_000_000, 190_000},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			tot, err := finanzas.CalcularTotales([]finanzas.LineaCalculo{linea(1, c.subtotal)}, true)
			require.NoError(t, err)
			assert.True(t, tot.Impuesto.Equal(decimal.NewFromInt(c.impuesto)),
				"subtotal %d debe producir impuesto %d, fue %s", c.subtotal, c.impuesto, tot.Impuesto)
		})
	}
}

// Lista vacía → todo cero, sin error.
func TestCalcularTotales_SinLineas(t *testing.T) {
	tot, err := finanzas.CalcularTotales(nil, true)
	require.NoError(t, err)
	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.Impuesto.IsZero())
	assert.True(t, tot.Total.IsZero())
}

// Cantidades o precios negativos se rechazan con ErrInvalidInput.
func TestCalcularTotales_RechazaNegativos(t *testing.T) {
	_, err := finanzas.CalcularTotales([]finanzas.LineaCalculo{linea(-1, 1000)}, true)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = finanzas.CalcularTotales([]finanzas.LineaCalculo{linea(1, -1000)}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
