package finanzas_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
)

// Transiciones legales según la tabla del ciclo de vida.
func TestTransicionar_Permitidas(t *testing.T) {
	casos := []struct{ desde, hacia string }{
		{finanzas.FacturaBorrador, finanzas.FacturaEnviada},
		{finanzas.FacturaBorrador, finanzas.FacturaAnulada},
		{finanzas.FacturaEnviada, finanzas.FacturaPendiente},
		{finanzas.FacturaEnviada, finanzas.FacturaAnulada},
		{finanzas.FacturaPendiente, finanzas.FacturaPagada},
		{finanzas.FacturaPendiente, finanzas.FacturaVencida},
		{finanzas.FacturaPendiente, finanzas.FacturaAnulada},
		{finanzas.FacturaVencida, finanzas.FacturaPagada},
		{finanzas.FacturaVencida, finanzas.FacturaAnulada},
	}
	for _, c := range casos {
		assert.NoError(t, finanzas.Transicionar(c.desde, c.hacia),
			"%s → %s debe estar permitida", c.desde, c.hacia)
	}
}

// borrador → pendiente no está en el conjunto permitido.
func TestTransicionar_BorradorAPendienteFalla(t *testing.T) {
	err := finanzas.Transicionar(finanzas.FacturaBorrador, finanzas.FacturaPendiente)
	require.Error(t, err)

	var tErr *finanzas.ErrTransicionInvalida
	require.True(t, errors.As(err, &tErr), "el error debe ser ErrTransicionInvalida")
	assert.Equal(t, finanzas.FacturaBorrador, tErr.Desde)
	assert.Contains(t, tErr.Permitidas, finanzas.FacturaEnviada,
		"el error debe listar las alternativas permitidas")
	assert.Contains(t, err.Error(), "enviada")
}

// pagada y anulada son terminales: cualquier destino falla.
func TestTransicionar_EstadosTerminales(t *testing.T) {
	destinos := []string{
		finanzas.FacturaBorrador, finanzas.FacturaEnviada, finanzas.FacturaPendiente,
		finanzas.FacturaVencida, finanzas.FacturaPagada, finanzas.FacturaAnulada,
	}
	for _, terminal := range []string{finanzas.FacturaPagada, finanzas.FacturaAnulada} {
		for _, destino := range destinos {
			assert.Error(t, finanzas.Transicionar(terminal, destino),
				"%s es terminal; %s → %s debe fallar", terminal, terminal, destino)
		}
	}
}

// Un estado desconocido como origen también se rechaza.
func TestTransicionar_EstadoDesconocido(t *testing.T) {
	err := finanzas.Transicionar("inexistente", finanzas.FacturaEnviada)
	assert.Error(t, err)
}

func TestEstadoFacturaValido(t *testing.T) {
	assert.True(t, finanzas.EstadoFacturaValido(finanzas.FacturaBorrador))
	assert.True(t, finanzas.EstadoFacturaValido(finanzas.FacturaAnulada))
	assert.False(t, finanzas.EstadoFacturaValido("pagado")) // masculino: no existe
	assert.False(t, finanzas.EstadoFacturaValido(""))
}

func TestTransicionesDesde_DevuelveCopia(t *testing.T) {
	permitidas := finanzas.TransicionesDesde(finanzas.FacturaPendiente)
	require.Len(t, permitidas, 3)

	permitidas[0] = "mutada"
	otraVez := finanzas.TransicionesDesde(finanzas.FacturaPendiente)
	assert.NotContains(t, otraVez, "mutada", "mutar el slice devuelto no debe afectar la tabla")
}
