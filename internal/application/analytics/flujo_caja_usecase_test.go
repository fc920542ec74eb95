package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-ti/internal/application/analytics"
	"github.com/tu-usuario/gestion-ti/internal/domain"
)

func TestVentanaPeriodo_Mes(t *testing.T) {
	now := time.Date(2026, time.August, 29, 15, 30, 0, 0, time.UTC)
	desde, hasta, err := analytics.VentanaPeriodo(analytics.PeriodoMes, now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), desde)
	assert.Equal(t, now, hasta)
}

func TestVentanaPeriodo_Trimestre(t *testing.T) {
	casos := []struct {
		mes    time.Month
		inicio time.Month
	}{
		{time.January, time.January},
		{time.March, time.January},
		{time.April, time.April},
		{time.August, time.July},
		{time.December, time.October},
	}
	for _, c := range casos {
		now := time.Date(2026, c.mes, 15, 0, 0, 0, 0, time.UTC)
		desde, _, err := analytics.VentanaPeriodo(analytics.PeriodoTrimestre, now)
		require.NoError(t, err)
		assert.Equal(t, c.inicio, desde.Month(),
			"el trimestre de %s debe partir en %s", c.mes, c.inicio)
		assert.Equal(t, 1, desde.Day())
	}
}

func TestVentanaPeriodo_Anio(t *testing.T) {
	now := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)
	desde, _, err := analytics.VentanaPeriodo(analytics.PeriodoAnio, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), desde)
}

func TestVentanaPeriodo_Desconocido(t *testing.T) {
	_, _, err := analytics.VentanaPeriodo("semana", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
