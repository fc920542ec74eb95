package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-ti/internal/application/billing"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes para los puertos de documentos y correo
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func newFakeClienteRepo(clientes ...*entity.Cliente) *fakeClienteRepo {
	r := &fakeClienteRepo{clientes: map[string]*entity.Cliente{}}
	for _, c := range clientes {
		r.clientes[c.ID] = c
	}
	return r
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error { r.clientes[c.ID] = c; return nil }
func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.clientes[id], nil
}
func (r *fakeClienteRepo) GetByRUT(string) (*entity.Cliente, error) { return nil, nil }
func (r *fakeClienteRepo) List(int, int) ([]*entity.Cliente, error) { return nil, nil }
func (r *fakeClienteRepo) Update(c *entity.Cliente) error           { r.clientes[c.ID] = c; return nil }
func (r *fakeClienteRepo) Delete(string) error                      { return nil }

type fakePDFGen struct {
	generados int
}

func (g *fakePDFGen) CotizacionPDF(context.Context, *entity.Cotizacion, billing.ReceptorPDF) ([]byte, error) {
	g.generados++
	return []byte("%PDF-1.4"), nil
}

func (g *fakePDFGen) FacturaPDF(context.Context, *entity.Factura, billing.ReceptorPDF) ([]byte, error) {
	g.generados++
	return []byte("%PDF-1.4"), nil
}

type envioRegistrado struct {
	para    string
	asunto  string
	adjunto string
}

type fakeSender struct {
	envios []envioRegistrado
	fallo  error
}

func (s *fakeSender) SendDocumento(_ context.Context, para, asunto, _ string, nombreAdjunto string, _ []byte) (string, error) {
	if s.fallo != nil {
		return "", s.fallo
	}
	s.envios = append(s.envios, envioRegistrado{para: para, asunto: asunto, adjunto: nombreAdjunto})
	return "email-001", nil
}

func clienteConEmail() *entity.Cliente {
	return &entity.Cliente{
		ID:          "cli-1",
		RUT:         "76.123.456-7",
		RazonSocial: "Comercial Andina SpA",
		Email:       "finanzas@andina.cl",
		Estado:      entity.ClienteActivo,
	}
}

func buildEnviarUseCase(
	cots []*entity.Cotizacion, facts []*entity.Factura, clientes []*entity.Cliente,
) (*billing.EnviarUseCase, *fakeCotRepo, *fakeFactRepo, *fakePDFGen, *fakeSender) {
	cotRepo := newFakeCotRepo(cots...)
	factRepo := newFakeFactRepo(facts...)
	clienteRepo := newFakeClienteRepo(clientes...)
	gen := &fakePDFGen{}
	sender := &fakeSender{}
	uc := billing.NewEnviarUseCase(cotRepo, factRepo, clienteRepo, gen, sender)
	return uc, cotRepo, factRepo, gen, sender
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestEnviarFactura_PagadaNoSeEnvia(t *testing.T) {
	fact := facturaEnEstado("f1", finanzas.FacturaPagada)
	uc, _, factRepo, gen, sender := buildEnviarUseCase(nil,
		[]*entity.Factura{fact}, []*entity.Cliente{clienteConEmail()})

	_, err := uc.EnviarFactura(context.Background(), "f1")
	require.Error(t, err)

	var tErr *finanzas.ErrTransicionInvalida
	require.True(t, errors.As(err, &tErr), "la transición ilegal corta el flujo")

	// La validación ocurre antes de generar o despachar nada.
	assert.Zero(t, gen.generados, "no debe generarse ningún PDF")
	assert.Empty(t, sender.envios, "no debe salir ningún correo")
	assert.Equal(t, finanzas.FacturaPagada, factRepo.facts["f1"].Estado)
}

func TestEnviarFactura_BorradorSeEnviaYAvanza(t *testing.T) {
	fact := facturaEnEstado("f1", finanzas.FacturaBorrador)
	cliente := clienteConEmail()
	uc, _, factRepo, _, sender := buildEnviarUseCase(nil,
		[]*entity.Factura{fact}, []*entity.Cliente{cliente})

	resp, err := uc.EnviarFactura(context.Background(), "f1")
	require.NoError(t, err)

	assert.Equal(t, "email-001", resp.EmailID)
	require.Len(t, sender.envios, 1)
	assert.Equal(t, cliente.Email, sender.envios[0].para)
	assert.Equal(t, "Factura-FAC-2026-0001.pdf", sender.envios[0].adjunto)
	assert.Equal(t, finanzas.FacturaEnviada, factRepo.facts["f1"].Estado,
		"el envío exitoso avanza el estado")
}

func TestEnviarFactura_FalloDelProveedorNoAvanzaEstado(t *testing.T) {
	fact := facturaEnEstado("f1", finanzas.FacturaBorrador)
	uc, _, factRepo, _, sender := buildEnviarUseCase(nil,
		[]*entity.Factura{fact}, []*entity.Cliente{clienteConEmail()})
	sender.fallo = errors.New("resend: 503")

	_, err := uc.EnviarFactura(context.Background(), "f1")
	require.Error(t, err)
	assert.Equal(t, finanzas.FacturaBorrador, factRepo.facts["f1"].Estado,
		"si el correo falla la factura sigue en borrador")
}

func TestEnviarFactura_ClienteSinEmailFalla(t *testing.T) {
	fact := facturaEnEstado("f1", finanzas.FacturaBorrador)
	cliente := clienteConEmail()
	cliente.Email = ""
	uc, _, _, gen, sender := buildEnviarUseCase(nil,
		[]*entity.Factura{fact}, []*entity.Cliente{cliente})

	_, err := uc.EnviarFactura(context.Background(), "f1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, gen.generados)
	assert.Empty(t, sender.envios)
}

func TestEnviarCotizacion_ProspectoRecibeElCorreo(t *testing.T) {
	cot := cotizacionAprobada()
	cot.Estado = entity.CotizacionBorrador
	cot.ClienteID = ""
	cot.ProspectoNombre = "Minera del Norte"
	cot.ProspectoEmail = "compras@mineranorte.cl"
	uc, cotRepo, _, _, sender := buildEnviarUseCase([]*entity.Cotizacion{cot}, nil, nil)

	resp, err := uc.EnviarCotizacion(context.Background(), cot.ID)
	require.NoError(t, err)

	assert.Equal(t, "email-001", resp.EmailID)
	require.Len(t, sender.envios, 1)
	assert.Equal(t, cot.ProspectoEmail, sender.envios[0].para)
	assert.Equal(t, "Cotizacion-COT-2026-010.pdf", sender.envios[0].adjunto)
	assert.Equal(t, entity.CotizacionEnviada, cotRepo.cots[cot.ID].Estado,
		"el borrador queda en enviada tras el despacho")
}

func TestEnviarCotizacion_ClienteRegistradoRecibeElCorreo(t *testing.T) {
	cot := cotizacionAprobada()
	cliente := clienteConEmail()
	uc, cotRepo, _, _, sender := buildEnviarUseCase(
		[]*entity.Cotizacion{cot}, nil, []*entity.Cliente{cliente})

	_, err := uc.EnviarCotizacion(context.Background(), cot.ID)
	require.NoError(t, err)

	require.Len(t, sender.envios, 1)
	assert.Equal(t, cliente.Email, sender.envios[0].para)
	// Una cotización aprobada no regresa a enviada: el estado no se toca.
	assert.Equal(t, entity.CotizacionAprobada, cotRepo.cots[cot.ID].Estado)
}

func TestEnviarCotizacion_SinDestinatarioFalla(t *testing.T) {
	cot := cotizacionAprobada()
	cot.ClienteID = ""
	uc, _, _, _, sender := buildEnviarUseCase([]*entity.Cotizacion{cot}, nil, nil)

	_, err := uc.EnviarCotizacion(context.Background(), cot.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, sender.envios)
}
