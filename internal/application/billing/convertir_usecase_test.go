package billing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-ti/internal/application/billing"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los repositorios que usa la conversión
// ──────────────────────────────────────────────────────────────────────────────

type fakeCotRepo struct {
	cots       map[string]*entity.Cotizacion
	facturadas map[string]string // cotizacionID → facturaID
}

func newFakeCotRepo(cots ...*entity.Cotizacion) *fakeCotRepo {
	r := &fakeCotRepo{cots: map[string]*entity.Cotizacion{}, facturadas: map[string]string{}}
	for _, c := range cots {
		r.cots[c.ID] = c
	}
	return r
}

func (r *fakeCotRepo) Create(c *entity.Cotizacion) error { r.cots[c.ID] = c; return nil }
func (r *fakeCotRepo) GetByID(id string) (*entity.Cotizacion, error) {
	return r.cots[id], nil
}
func (r *fakeCotRepo) List(int, int) ([]*entity.Cotizacion, error) { return nil, nil }
func (r *fakeCotRepo) Update(c *entity.Cotizacion) error           { r.cots[c.ID] = c; return nil }
func (r *fakeCotRepo) UpdateEstado(id, estado string) error {
	if c, ok := r.cots[id]; ok {
		c.Estado = estado
	}
	return nil
}
func (r *fakeCotRepo) MarcarFacturada(id, facturaID string) error {
	r.facturadas[id] = facturaID
	r.cots[id].Estado = entity.CotizacionFacturada
	r.cots[id].FacturaID = facturaID
	return nil
}
func (r *fakeCotRepo) ReplaceItems(string, []entity.ItemLinea) error { return nil }
func (r *fakeCotRepo) Delete(string) error                           { return nil }

type fakeFactRepo struct {
	facts     map[string]*entity.Factura
	creadas   []*entity.Factura
	conCotIDs map[string]bool
}

func newFakeFactRepo(facts ...*entity.Factura) *fakeFactRepo {
	r := &fakeFactRepo{facts: map[string]*entity.Factura{}, conCotIDs: map[string]bool{}}
	for _, f := range facts {
		r.facts[f.ID] = f
	}
	return r
}

func (r *fakeFactRepo) Create(f *entity.Factura) error {
	if r.facts == nil {
		r.facts = map[string]*entity.Factura{}
	}
	if r.conCotIDs == nil {
		r.conCotIDs = map[string]bool{}
	}
	if f.CotizacionID != "" && r.conCotIDs[f.CotizacionID] {
		return domain.ErrDuplicate
	}
	r.conCotIDs[f.CotizacionID] = true
	r.facts[f.ID] = f
	r.creadas = append(r.creadas, f)
	return nil
}
func (r *fakeFactRepo) GetByID(id string) (*entity.Factura, error) {
	return r.facts[id], nil
}
func (r *fakeFactRepo) List(int, int) ([]*entity.Factura, error) { return nil, nil }
func (r *fakeFactRepo) UpdateEstado(id, estado string) error {
	if f, ok := r.facts[id]; ok {
		f.Estado = estado
	}
	return nil
}
func (r *fakeFactRepo) UpdateDatos(string, string, string) error { return nil }
func (r *fakeFactRepo) ListPendientesVencidas(time.Time) ([]*entity.Factura, error) {
	return nil, nil
}

type fakeFolioRepo struct{ seq int }

func (r *fakeFolioRepo) Siguiente(int) (int, error) { r.seq++; return r.seq, nil }

type fakeTxRunner struct {
	cot   *fakeCotRepo
	fact  *fakeFactRepo
	folio *fakeFolioRepo
}

func (r *fakeTxRunner) RunConversion(_ context.Context, fn func(
	repository.CotizacionRepository,
	repository.FacturaRepository,
	repository.FolioRepository,
) error) error {
	return fn(r.cot, r.fact, r.folio)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func cotizacionAprobada() *entity.Cotizacion {
	return &entity.Cotizacion{
		ID:        "cot-1",
		Numero:    "COT-2026-010",
		ClienteID: "cli-1",
		Moneda:    "CLP",
		Estado:    entity.CotizacionAprobada,
		AplicaIVA: true,
		Subtotal:  decimal.NewFromInt(2500),
		Impuesto:  decimal.NewFromInt(475),
		Total:     decimal.NewFromInt(2975),
		Items: []entity.ItemLinea{
			{ID: "it-1", Descripcion: "Soporte mensual", Cantidad: decimal.NewFromInt(2), PrecioUnit: decimal.NewFromInt(1000), Total: decimal.NewFromInt(2000)},
			{ID: "it-2", Descripcion: "Instalación", Cantidad: decimal.NewFromInt(1), PrecioUnit: decimal.NewFromInt(500), Total: decimal.NewFromInt(500)},
		},
	}
}

func buildUseCase(cot *entity.Cotizacion) (*billing.ConvertirUseCase, *fakeCotRepo, *fakeFactRepo) {
	cotRepo := newFakeCotRepo()
	if cot != nil {
		cotRepo.cots[cot.ID] = cot
	}
	factRepo := &fakeFactRepo{}
	tx := &fakeTxRunner{cot: cotRepo, fact: factRepo, folio: &fakeFolioRepo{}}
	return billing.NewConvertirUseCase(cotRepo, tx), cotRepo, factRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestConvertir_CotizacionInexistente(t *testing.T) {
	uc, _, factRepo := buildUseCase(nil)
	_, err := uc.Convertir(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, factRepo.creadas, "no debe crearse ninguna factura")
}

func TestConvertir_NoAprobadaFalla(t *testing.T) {
	cot := cotizacionAprobada()
	cot.Estado = entity.CotizacionBorrador
	uc, _, factRepo := buildUseCase(cot)

	_, err := uc.Convertir(context.Background(), cot.ID)

	assert.ErrorIs(t, err, domain.ErrNoAprobada)
	assert.Empty(t, factRepo.creadas, "una cotización en borrador no debe generar factura")
}

func TestConvertir_SinClienteFalla(t *testing.T) {
	cot := cotizacionAprobada()
	cot.ClienteID = ""
	cot.ProspectoNombre = "Empresa Prospecto"
	cot.ProspectoEmail = "contacto@prospecto.cl"
	uc, _, factRepo := buildUseCase(cot)

	_, err := uc.Convertir(context.Background(), cot.ID)

	assert.ErrorIs(t, err, domain.ErrSinCliente,
		"el error debe distinguir 'sin cliente' de 'no aprobada'")
	assert.Empty(t, factRepo.creadas)
}

func TestConvertir_Exitosa(t *testing.T) {
	cot := cotizacionAprobada()
	uc, cotRepo, factRepo := buildUseCase(cot)

	resp, err := uc.Convertir(context.Background(), cot.ID)
	require.NoError(t, err)

	// Número con formato FAC-<año>-<secuencia 4 dígitos>
	esperado := fmt.Sprintf("FAC-%d-0001", time.Now().Year())
	assert.Equal(t, esperado, resp.Numero)

	require.Len(t, factRepo.creadas, 1, "debe crearse exactamente una factura")
	fact := factRepo.creadas[0]
	assert.Equal(t, resp.FacturaID, fact.ID)
	assert.Equal(t, cot.ClienteID, fact.ClienteID)
	assert.Equal(t, cot.ID, fact.CotizacionID)
	assert.Equal(t, finanzas.FacturaBorrador, fact.Estado)

	// Montos y flag de IVA copiados tal cual, sin recalcular.
	assert.True(t, fact.Subtotal.Equal(cot.Subtotal))
	assert.True(t, fact.Impuesto.Equal(cot.Impuesto))
	assert.True(t, fact.Total.Equal(cot.Total))
	assert.True(t, fact.AplicaIVA)

	// Vencimiento a 30 días de la emisión.
	assert.WithinDuration(t, fact.FechaEmision.Add(30*24*time.Hour), fact.FechaVencimiento, time.Second)

	// La cotización queda facturada con el backlink.
	assert.Equal(t, fact.ID, cotRepo.facturadas[cot.ID])
	assert.Equal(t, entity.CotizacionFacturada, cot.Estado)
	assert.Equal(t, fact.ID, cot.FacturaID)
}

func TestConvertir_ItemsDuplicadosPorValor(t *testing.T) {
	cot := cotizacionAprobada()
	uc, _, factRepo := buildUseCase(cot)

	_, err := uc.Convertir(context.Background(), cot.ID)
	require.NoError(t, err)

	fact := factRepo.creadas[0]
	require.Len(t, fact.Items, len(cot.Items))
	for i, it := range fact.Items {
		original := cot.Items[i]
		assert.NotEqual(t, original.ID, it.ID, "las líneas de la factura deben tener IDs propios")
		assert.Equal(t, original.Descripcion, it.Descripcion)
		assert.True(t, it.Cantidad.Equal(original.Cantidad))
		assert.True(t, it.PrecioUnit.Equal(original.PrecioUnit))
		assert.True(t, it.Total.Equal(original.Total))
	}
}

func TestConvertir_CotizacionExentaProduceFacturaExenta(t *testing.T) {
	cot := cotizacionAprobada()
	cot.AplicaIVA = false
	cot.Impuesto = decimal.Zero
	cot.Total = cot.Subtotal
	uc, _, factRepo := buildUseCase(cot)

	_, err := uc.Convertir(context.Background(), cot.ID)
	require.NoError(t, err)

	fact := factRepo.creadas[0]
	assert.False(t, fact.AplicaIVA, "la exención viaja en el flag, no se infiere del monto")
	assert.True(t, fact.Impuesto.IsZero())
}

func TestConvertir_SegundaConversionFalla(t *testing.T) {
	cot := cotizacionAprobada()
	uc, _, factRepo := buildUseCase(cot)

	_, err := uc.Convertir(context.Background(), cot.ID)
	require.NoError(t, err)

	_, err = uc.Convertir(context.Background(), cot.ID)
	assert.ErrorIs(t, err, domain.ErrYaFacturada,
		"una cotización ya facturada no puede convertirse de nuevo")
	assert.Len(t, factRepo.creadas, 1, "no debe crearse una segunda factura")
}

func TestConvertir_FolioIncrementa(t *testing.T) {
	cotA := cotizacionAprobada()
	cotB := cotizacionAprobada()
	cotB.ID = "cot-2"
	cotB.Numero = "COT-2026-011"

	cotRepo := newFakeCotRepo(cotA, cotB)
	factRepo := &fakeFactRepo{}
	tx := &fakeTxRunner{cot: cotRepo, fact: factRepo, folio: &fakeFolioRepo{}}
	uc := billing.NewConvertirUseCase(cotRepo, tx)

	r1, err := uc.Convertir(context.Background(), cotA.ID)
	require.NoError(t, err)
	r2, err := uc.Convertir(context.Background(), cotB.ID)
	require.NoError(t, err)

	anio := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("FAC-%d-0001", anio), r1.Numero)
	assert.Equal(t, fmt.Sprintf("FAC-%d-0002", anio), r2.Numero)
}
