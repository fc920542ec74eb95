package billing_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-ti/internal/application/billing"
	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
)

// fakeFactStore guarda facturas en memoria y registra los cambios de estado.
type fakeFactStore struct {
	facts map[string]*entity.Factura
}

func newFakeFactStore(facts ...*entity.Factura) *fakeFactStore {
	s := &fakeFactStore{facts: map[string]*entity.Factura{}}
	for _, f := range facts {
		s.facts[f.ID] = f
	}
	return s
}

func (s *fakeFactStore) Create(f *entity.Factura) error { s.facts[f.ID] = f; return nil }
func (s *fakeFactStore) GetByID(id string) (*entity.Factura, error) {
	return s.facts[id], nil
}
func (s *fakeFactStore) List(int, int) ([]*entity.Factura, error) { return nil, nil }
func (s *fakeFactStore) UpdateEstado(id, estado string) error {
	s.facts[id].Estado = estado
	return nil
}
func (s *fakeFactStore) UpdateDatos(id, notas, ref string) error {
	s.facts[id].Notas = notas
	s.facts[id].ReferenciaExt = ref
	return nil
}
func (s *fakeFactStore) ListPendientesVencidas(antesDe time.Time) ([]*entity.Factura, error) {
	var out []*entity.Factura
	for _, f := range s.facts {
		if f.Estado == finanzas.FacturaPendiente && f.FechaVencimiento.Before(antesDe) {
			out = append(out, f)
		}
	}
	return out, nil
}

func facturaEnEstado(id, estado string) *entity.Factura {
	return &entity.Factura{
		ID:        id,
		Numero:    "FAC-2026-0001",
		ClienteID: "cli-1",
		Estado:    estado,
		Moneda:    "CLP",
		Total:     decimal.NewFromInt(2975),
	}
}

func TestCambiarEstado_TransicionLegal(t *testing.T) {
	store := newFakeFactStore(facturaEnEstado("f1", finanzas.FacturaBorrador))
	uc := billing.NewFacturaUseCase(store)

	resp, err := uc.CambiarEstado("f1", finanzas.FacturaEnviada)
	require.NoError(t, err)
	assert.Equal(t, finanzas.FacturaEnviada, resp.Estado)
	assert.Equal(t, finanzas.FacturaEnviada, store.facts["f1"].Estado)
}

func TestCambiarEstado_TransicionIlegal(t *testing.T) {
	store := newFakeFactStore(facturaEnEstado("f1", finanzas.FacturaBorrador))
	uc := billing.NewFacturaUseCase(store)

	_, err := uc.CambiarEstado("f1", finanzas.FacturaPendiente)
	require.Error(t, err)

	var tErr *finanzas.ErrTransicionInvalida
	require.True(t, errors.As(err, &tErr))
	assert.Contains(t, tErr.Permitidas, finanzas.FacturaEnviada,
		"el error debe listar las alternativas permitidas")
	assert.Equal(t, finanzas.FacturaBorrador, store.facts["f1"].Estado,
		"la factura no debe cambiar de estado")
}

func TestCambiarEstado_TerminalNoSale(t *testing.T) {
	for _, terminal := range []string{finanzas.FacturaPagada, finanzas.FacturaAnulada} {
		store := newFakeFactStore(facturaEnEstado("f1", terminal))
		uc := billing.NewFacturaUseCase(store)

		_, err := uc.CambiarEstado("f1", finanzas.FacturaBorrador)
		assert.Error(t, err, "%s es terminal", terminal)
		assert.Equal(t, terminal, store.facts["f1"].Estado)
	}
}

func TestCambiarEstado_EstadoDesconocido(t *testing.T) {
	store := newFakeFactStore(facturaEnEstado("f1", finanzas.FacturaBorrador))
	uc := billing.NewFacturaUseCase(store)

	_, err := uc.CambiarEstado("f1", "archivada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCambiarEstado_NoExiste(t *testing.T) {
	uc := billing.NewFacturaUseCase(newFakeFactStore())
	_, err := uc.CambiarEstado("nada", finanzas.FacturaEnviada)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El PATCH genérico toca notas y referencia pero jamás el estado.
func TestPatch_NoTocaElEstado(t *testing.T) {
	fact := facturaEnEstado("f1", finanzas.FacturaPendiente)
	store := newFakeFactStore(fact)
	uc := billing.NewFacturaUseCase(store)

	notas := "pago comprometido para fin de mes"
	ref := "OC-4411"
	resp, err := uc.Patch("f1", dto.PatchFacturaRequest{Notas: &notas, ReferenciaExt: &ref})
	require.NoError(t, err)

	assert.Equal(t, notas, resp.Notas)
	assert.Equal(t, ref, resp.ReferenciaExt)
	assert.Equal(t, finanzas.FacturaPendiente, store.facts["f1"].Estado)
}

func TestMarcarVencidas_MuevePendientesVencidas(t *testing.T) {
	ayer := time.Now().Add(-24 * time.Hour)
	manana := time.Now().Add(24 * time.Hour)

	vencida := facturaEnEstado("f1", finanzas.FacturaPendiente)
	vencida.FechaVencimiento = ayer
	vigente := facturaEnEstado("f2", finanzas.FacturaPendiente)
	vigente.FechaVencimiento = manana
	borrador := facturaEnEstado("f3", finanzas.FacturaBorrador)
	borrador.FechaVencimiento = ayer

	store := newFakeFactStore(vencida, vigente, borrador)
	uc := billing.NewFacturaUseCase(store)

	resp, err := uc.MarcarVencidas()
	require.NoError(t, err)

	assert.Equal(t, []string{"f1"}, resp.Vencidas)
	assert.Equal(t, finanzas.FacturaVencida, store.facts["f1"].Estado)
	assert.Equal(t, finanzas.FacturaPendiente, store.facts["f2"].Estado, "las vigentes no se tocan")
	assert.Equal(t, finanzas.FacturaBorrador, store.facts["f3"].Estado, "solo pendientes entran al barrido")
}
