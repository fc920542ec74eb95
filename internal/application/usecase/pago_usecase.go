package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

const fechaLayout = "2006-01-02"

// PagoUseCase registra abonos sobre facturas existentes. El pago no mueve
// el estado de la factura: marcar pagada es una decisión explícita del
// operador vía el endpoint de estado.
type PagoUseCase struct {
	pagoRepo    repository.PagoRepository
	facturaRepo repository.FacturaRepository
}

func NewPagoUseCase(pagoRepo repository.PagoRepository, facturaRepo repository.FacturaRepository) *PagoUseCase {
	return &PagoUseCase{pagoRepo: pagoRepo, facturaRepo: facturaRepo}
}

func (uc *PagoUseCase) Create(in dto.CreatePagoRequest) (*dto.PagoResponse, error) {
	if in.FacturaID == "" || !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	factura, err := uc.facturaRepo.GetByID(in.FacturaID)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, in.FacturaID)
	}
	fecha := time.Now()
	if in.Fecha != "" {
		fecha, err = time.Parse(fechaLayout, in.Fecha)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Fecha)
		}
	}
	pago := &entity.Pago{
		ID:        uuid.New().String(),
		FacturaID: in.FacturaID,
		Monto:     in.Monto,
		Fecha:     fecha,
		Metodo:    in.Metodo,
		Notas:     in.Notas,
		CreatedAt: time.Now(),
	}
	if err := uc.pagoRepo.Create(pago); err != nil {
		return nil, err
	}
	return toPagoResponse(pago), nil
}

func (uc *PagoUseCase) GetByID(id string) (*dto.PagoResponse, error) {
	pago, err := uc.pagoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pago == nil {
		return nil, domain.ErrNotFound
	}
	return toPagoResponse(pago), nil
}

func (uc *PagoUseCase) List(page dto.PageRequest) ([]*dto.PagoResponse, error) {
	page.DefaultPage()
	pagos, err := uc.pagoRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toPagoResponses(pagos), nil
}

// ListByFactura lista los abonos de una factura.
func (uc *PagoUseCase) ListByFactura(facturaID string) ([]*dto.PagoResponse, error) {
	pagos, err := uc.pagoRepo.ListByFactura(facturaID)
	if err != nil {
		return nil, err
	}
	return toPagoResponses(pagos), nil
}

func (uc *PagoUseCase) Delete(id string) error {
	pago, err := uc.pagoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if pago == nil {
		return domain.ErrNotFound
	}
	return uc.pagoRepo.Delete(id)
}

func toPagoResponses(pagos []*entity.Pago) []*dto.PagoResponse {
	out := make([]*dto.PagoResponse, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, toPagoResponse(p))
	}
	return out
}

func toPagoResponse(p *entity.Pago) *dto.PagoResponse {
	return &dto.PagoResponse{
		ID:        p.ID,
		FacturaID: p.FacturaID,
		Monto:     p.Monto,
		Fecha:     p.Fecha.Format(fechaLayout),
		Metodo:    p.Metodo,
		Notas:     p.Notas,
	}
}
