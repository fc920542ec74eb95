package billing

import (
	"fmt"
	"time"

	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

// FacturaUseCase consultas y ciclo de vida de facturas. Todo cambio de estado
// pasa por finanzas.Transicionar; no existe escritura directa del campo.
type FacturaUseCase struct {
	factRepo repository.FacturaRepository
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(factRepo repository.FacturaRepository) *FacturaUseCase {
	return &FacturaUseCase{factRepo: factRepo}
}

// GetByID obtiene una factura con sus líneas.
func (uc *FacturaUseCase) GetByID(id string) (*dto.FacturaResponse, error) {
	fact, err := uc.factRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fact == nil {
		return nil, domain.ErrNotFound
	}
	return toFacturaResponse(fact), nil
}

// List lista facturas paginadas.
func (uc *FacturaUseCase) List(limit, offset int) ([]*dto.FacturaResponse, error) {
	facts, err := uc.factRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FacturaResponse, 0, len(facts))
	for _, f := range facts {
		out = append(out, toFacturaResponse(f))
	}
	return out, nil
}

// CambiarEstado valida la transición contra la tabla del ciclo de vida y la
// aplica. Una transición ilegal retorna ErrTransicionInvalida con las
// alternativas permitidas (el handler la expone como 400).
func (uc *FacturaUseCase) CambiarEstado(id, destino string) (*dto.FacturaResponse, error) {
	if !finanzas.EstadoFacturaValido(destino) {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, destino)
	}
	fact, err := uc.factRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fact == nil {
		return nil, domain.ErrNotFound
	}
	if err := finanzas.Transicionar(fact.Estado, destino); err != nil {
		return nil, err
	}
	if err := uc.factRepo.UpdateEstado(id, destino); err != nil {
		return nil, err
	}
	fact.Estado = destino
	return toFacturaResponse(fact), nil
}

// Patch actualiza notas y/o referencia externa. Deliberadamente no acepta
// estado: ese campo solo se mueve por CambiarEstado.
func (uc *FacturaUseCase) Patch(id string, in dto.PatchFacturaRequest) (*dto.FacturaResponse, error) {
	fact, err := uc.factRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fact == nil {
		return nil, domain.ErrNotFound
	}
	if in.Notas != nil {
		fact.Notas = *in.Notas
	}
	if in.ReferenciaExt != nil {
		fact.ReferenciaExt = *in.ReferenciaExt
	}
	if err := uc.factRepo.UpdateDatos(id, fact.Notas, fact.ReferenciaExt); err != nil {
		return nil, err
	}
	return toFacturaResponse(fact), nil
}

// MarcarVencidas es el barrido explícito de morosidad: mueve a vencida toda
// factura pendiente cuyo vencimiento ya pasó. Pensado para ser invocado por
// un cron externo; nada ocurre automáticamente al pasar la fecha.
func (uc *FacturaUseCase) MarcarVencidas() (*dto.VencidasResponse, error) {
	pendientes, err := uc.factRepo.ListPendientesVencidas(time.Now())
	if err != nil {
		return nil, err
	}
	resp := &dto.VencidasResponse{Revisadas: len(pendientes), Vencidas: []string{}}
	for _, f := range pendientes {
		if err := finanzas.Transicionar(f.Estado, finanzas.FacturaVencida); err != nil {
			continue // el repo solo entrega pendientes, pero la máquina manda
		}
		if err := uc.factRepo.UpdateEstado(f.ID, finanzas.FacturaVencida); err != nil {
			return nil, err
		}
		resp.Vencidas = append(resp.Vencidas, f.ID)
	}
	return resp, nil
}

func toFacturaResponse(f *entity.Factura) *dto.FacturaResponse {
	resp := &dto.FacturaResponse{
		ID:               f.ID,
		Numero:           f.Numero,
		ClienteID:        f.ClienteID,
		CotizacionID:     f.CotizacionID,
		FechaEmision:     f.FechaEmision.Format(fechaLayout),
		FechaVencimiento: f.FechaVencimiento.Format(fechaLayout),
		Moneda:           f.Moneda,
		Estado:           f.Estado,
		AplicaIVA:        f.AplicaIVA,
		Notas:            f.Notas,
		ReferenciaExt:    f.ReferenciaExt,
		Subtotal:         f.Subtotal,
		Impuesto:         f.Impuesto,
		Total:            f.Total,
		Items:            make([]dto.ItemLineaResponse, 0, len(f.Items)),
	}
	for _, it := range f.Items {
		resp.Items = append(resp.Items, dto.ItemLineaResponse{
			ID:          it.ID,
			Descripcion: it.Descripcion,
			Cantidad:    it.Cantidad,
			PrecioUnit:  it.PrecioUnit,
			Total:       it.Total,
		})
	}
	return resp
}
