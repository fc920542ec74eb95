// Package analytics contiene los casos de uso de reportes del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

// Períodos aceptados por el endpoint de flujo de caja.
const (
	PeriodoMes       = "mes"
	PeriodoTrimestre = "trimestre"
	PeriodoAnio      = "año"
)

// FlujoCajaUseCase resume ingresos, gastos y saldos del período solicitado.
// Solo lectura: delega las agregaciones en AnalyticsRepository.
type FlujoCajaUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewFlujoCajaUseCase construye el caso de uso.
func NewFlujoCajaUseCase(analyticsRepo repository.AnalyticsRepository) *FlujoCajaUseCase {
	return &FlujoCajaUseCase{analyticsRepo: analyticsRepo}
}

// GetFlujoCaja calcula la ventana de fechas del período y agrega los montos.
func (uc *FlujoCajaUseCase) GetFlujoCaja(ctx context.Context, periodo string) (*dto.FlujoCajaDTO, error) {
	desde, hasta, err := VentanaPeriodo(periodo, time.Now())
	if err != nil {
		return nil, err
	}
	res, err := uc.analyticsRepo.GetFlujoCaja(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("flujo de caja: %w", err)
	}
	return &dto.FlujoCajaDTO{
		Periodo:   periodo,
		Desde:     desde.Format("2006-01-02"),
		Hasta:     hasta.Format("2006-01-02"),
		Ingresos:  res.Ingresos,
		Gastos:    res.Gastos,
		Saldo:     res.Ingresos.Sub(res.Gastos),
		Facturado: res.Facturado,
		Pendiente: res.Pendiente,
		Vencido:   res.Vencido,
	}, nil
}

// VentanaPeriodo devuelve [inicio del período calendario, ahora] para
// mes, trimestre o año. Un período desconocido retorna ErrInvalidInput.
func VentanaPeriodo(periodo string, now time.Time) (desde, hasta time.Time, err error) {
	hasta = now
	switch periodo {
	case PeriodoMes:
		desde = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodoTrimestre:
		// Primer mes del trimestre calendario en curso (ene, abr, jul, oct).
		mesInicio := time.Month(((int(now.Month())-1)/3)*3 + 1)
		desde = time.Date(now.Year(), mesInicio, 1, 0, 0, 0, 0, now.Location())
	case PeriodoAnio:
		desde = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: periodo %q (use mes, trimestre o año)", domain.ErrInvalidInput, periodo)
	}
	return desde, hasta, nil
}
