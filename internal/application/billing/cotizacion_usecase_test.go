package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-ti/internal/application/billing"
	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func buildCotizacionUseCase(cot *entity.Cotizacion) (*billing.CotizacionUseCase, *fakeCotRepo) {
	cotRepo := newFakeCotRepo()
	if cot != nil {
		cotRepo.cots[cot.ID] = cot
	}
	return billing.NewCotizacionUseCase(cotRepo, newFakeClienteRepo()), cotRepo
}

func TestUpdateCotizacion_NotasSePuedenVaciar(t *testing.T) {
	cot := cotizacionAprobada()
	cot.Estado = entity.CotizacionBorrador
	cot.Notas = "50% anticipado"
	uc, cotRepo := buildCotizacionUseCase(cot)

	resp, err := uc.Update(cot.ID, dto.UpdateCotizacionRequest{Notas: strPtr("")})
	require.NoError(t, err)

	assert.Empty(t, resp.Notas, "un string vacío explícito limpia las notas")
	assert.Empty(t, cotRepo.cots[cot.ID].Notas)
}

func TestUpdateCotizacion_CamposAusentesNoSeTocan(t *testing.T) {
	cot := cotizacionAprobada()
	cot.Estado = entity.CotizacionBorrador
	cot.Notas = "50% anticipado"
	cot.Moneda = "UF"
	uc, _ := buildCotizacionUseCase(cot)

	resp, err := uc.Update(cot.ID, dto.UpdateCotizacionRequest{Estado: entity.CotizacionEnviada})
	require.NoError(t, err)

	assert.Equal(t, entity.CotizacionEnviada, resp.Estado)
	assert.Equal(t, "50% anticipado", resp.Notas, "notas ausente en el body no se modifica")
	assert.Equal(t, "UF", resp.Moneda, "moneda ausente en el body no se modifica")
}

func TestUpdateCotizacion_MonedaVaciaRechazada(t *testing.T) {
	cot := cotizacionAprobada()
	cot.Estado = entity.CotizacionBorrador
	uc, _ := buildCotizacionUseCase(cot)

	_, err := uc.Update(cot.ID, dto.UpdateCotizacionRequest{Moneda: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
