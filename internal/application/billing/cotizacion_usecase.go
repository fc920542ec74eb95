// Package billing contiene los casos de uso del núcleo financiero:
// cotizaciones, conversión a factura, ciclo de vida de facturas y el
// despacho de documentos (PDF + email).
package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

const fechaLayout = "2006-01-02"

// CotizacionUseCase CRUD de cotizaciones con cálculo de totales.
type CotizacionUseCase struct {
	cotRepo     repository.CotizacionRepository
	clienteRepo repository.ClienteRepository
}

// NewCotizacionUseCase construye el caso de uso.
func NewCotizacionUseCase(cotRepo repository.CotizacionRepository, clienteRepo repository.ClienteRepository) *CotizacionUseCase {
	return &CotizacionUseCase{cotRepo: cotRepo, clienteRepo: clienteRepo}
}

// Create valida el body, calcula totales con finanzas.CalcularTotales y
// persiste la cotización en estado borrador.
func (uc *CotizacionUseCase) Create(in dto.CreateCotizacionRequest) (*dto.CotizacionResponse, error) {
	if in.Numero == "" || len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: numero e items son obligatorios", domain.ErrInvalidInput)
	}
	// Cliente registrado o prospecto: exactamente uno de los dos.
	tieneCliente := in.ClienteID != ""
	tieneProspecto := in.ProspectoNombre != "" && in.ProspectoEmail != ""
	if tieneCliente == tieneProspecto {
		return nil, fmt.Errorf("%w: indicar cliente_id o prospecto (nombre+email), no ambos", domain.ErrInvalidInput)
	}
	if tieneCliente {
		cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.ClienteID)
		}
	}

	lineas, items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	totales, err := finanzas.CalcularTotales(lineas, in.AplicaIVA)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Total = totales.Lineas[i]
	}

	now := time.Now()
	fechaEmision := now
	if in.FechaEmision != "" {
		if fechaEmision, err = time.Parse(fechaLayout, in.FechaEmision); err != nil {
			return nil, fmt.Errorf("%w: fecha_emision inválida", domain.ErrInvalidInput)
		}
	}
	var fechaValidez time.Time
	if in.FechaValidez != "" {
		if fechaValidez, err = time.Parse(fechaLayout, in.FechaValidez); err != nil {
			return nil, fmt.Errorf("%w: fecha_validez inválida", domain.ErrInvalidInput)
		}
	}
	moneda := in.Moneda
	if moneda == "" {
		moneda = "CLP"
	}

	cot := &entity.Cotizacion{
		ID:              uuid.New().String(),
		Numero:          in.Numero,
		ClienteID:       in.ClienteID,
		ProspectoNombre: in.ProspectoNombre,
		ProspectoEmail:  in.ProspectoEmail,
		FechaEmision:    fechaEmision,
		FechaValidez:    fechaValidez,
		Moneda:          moneda,
		Estado:          entity.CotizacionBorrador,
		AplicaIVA:       in.AplicaIVA,
		Notas:           in.Notas,
		Subtotal:        totales.Subtotal,
		Impuesto:        totales.Impuesto,
		Total:           totales.Total,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.cotRepo.Create(cot); err != nil {
		return nil, err
	}
	return toCotizacionResponse(cot), nil
}

// GetByID obtiene una cotización con sus líneas.
func (uc *CotizacionUseCase) GetByID(id string) (*dto.CotizacionResponse, error) {
	cot, err := uc.cotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNotFound
	}
	return toCotizacionResponse(cot), nil
}

// List lista cotizaciones paginadas.
func (uc *CotizacionUseCase) List(limit, offset int) ([]*dto.CotizacionResponse, error) {
	cots, err := uc.cotRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CotizacionResponse, 0, len(cots))
	for _, c := range cots {
		out = append(out, toCotizacionResponse(c))
	}
	return out, nil
}

// Update aplica un PUT sobre la cotización. Con Items presentes es un
// reemplazo completo que recalcula totales y recrea las líneas; sin Items
// es un cambio parcial (estado, validez, notas).
// El estado "facturada" solo lo fija la conversión, nunca este camino.
func (uc *CotizacionUseCase) Update(id string, in dto.UpdateCotizacionRequest) (*dto.CotizacionResponse, error) {
	cot, err := uc.cotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNotFound
	}
	if cot.Estado == entity.CotizacionFacturada {
		return nil, fmt.Errorf("%w: una cotización facturada es de solo lectura", domain.ErrConflict)
	}

	if in.Estado != "" {
		if !entity.EstadoCotizacionValido(in.Estado) {
			return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, in.Estado)
		}
		if in.Estado == entity.CotizacionFacturada {
			return nil, fmt.Errorf("%w: el estado facturada solo lo asigna la conversión", domain.ErrInvalidInput)
		}
		cot.Estado = in.Estado
	}
	if in.FechaValidez != "" {
		fv, err := time.Parse(fechaLayout, in.FechaValidez)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_validez inválida", domain.ErrInvalidInput)
		}
		cot.FechaValidez = fv
	}
	if in.Moneda != nil {
		if *in.Moneda == "" {
			return nil, fmt.Errorf("%w: moneda no puede quedar vacía", domain.ErrInvalidInput)
		}
		cot.Moneda = *in.Moneda
	}
	if in.Notas != nil {
		cot.Notas = *in.Notas
	}
	if in.AplicaIVA != nil {
		cot.AplicaIVA = *in.AplicaIVA
	}

	if len(in.Items) > 0 {
		lineas, items, err := buildItems(in.Items)
		if err != nil {
			return nil, err
		}
		totales, err := finanzas.CalcularTotales(lineas, cot.AplicaIVA)
		if err != nil {
			return nil, err
		}
		for i := range items {
			items[i].Total = totales.Lineas[i]
		}
		cot.Items = items
		cot.Subtotal = totales.Subtotal
		cot.Impuesto = totales.Impuesto
		cot.Total = totales.Total
		if err := uc.cotRepo.ReplaceItems(cot.ID, items); err != nil {
			return nil, err
		}
	} else if in.AplicaIVA != nil {
		// Cambió el flag de IVA sin tocar las líneas: recalcular sobre las existentes.
		lineas := make([]finanzas.LineaCalculo, 0, len(cot.Items))
		for _, it := range cot.Items {
			lineas = append(lineas, finanzas.LineaCalculo{Cantidad: it.Cantidad, PrecioUnit: it.PrecioUnit})
		}
		totales, err := finanzas.CalcularTotales(lineas, cot.AplicaIVA)
		if err != nil {
			return nil, err
		}
		cot.Subtotal = totales.Subtotal
		cot.Impuesto = totales.Impuesto
		cot.Total = totales.Total
	}

	cot.UpdatedAt = time.Now()
	if err := uc.cotRepo.Update(cot); err != nil {
		return nil, err
	}
	return toCotizacionResponse(cot), nil
}

// Delete elimina una cotización no facturada.
func (uc *CotizacionUseCase) Delete(id string) error {
	cot, err := uc.cotRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cot == nil {
		return domain.ErrNotFound
	}
	if cot.Estado == entity.CotizacionFacturada {
		return fmt.Errorf("%w: no se puede eliminar una cotización facturada", domain.ErrConflict)
	}
	return uc.cotRepo.Delete(id)
}

// buildItems convierte los items del request en líneas de cálculo y entidades.
func buildItems(in []dto.ItemLineaRequest) ([]finanzas.LineaCalculo, []entity.ItemLinea, error) {
	lineas := make([]finanzas.LineaCalculo, 0, len(in))
	items := make([]entity.ItemLinea, 0, len(in))
	for i, it := range in {
		if it.Descripcion == "" {
			return nil, nil, fmt.Errorf("%w: línea %d sin descripción", domain.ErrInvalidInput, i+1)
		}
		lineas = append(lineas, finanzas.LineaCalculo{Cantidad: it.Cantidad, PrecioUnit: it.PrecioUnit})
		items = append(items, entity.ItemLinea{
			ID:          uuid.New().String(),
			Descripcion: it.Descripcion,
			Cantidad:    it.Cantidad,
			PrecioUnit:  it.PrecioUnit,
		})
	}
	return lineas, items, nil
}

func toCotizacionResponse(cot *entity.Cotizacion) *dto.CotizacionResponse {
	resp := &dto.CotizacionResponse{
		ID:              cot.ID,
		Numero:          cot.Numero,
		ClienteID:       cot.ClienteID,
		ProspectoNombre: cot.ProspectoNombre,
		ProspectoEmail:  cot.ProspectoEmail,
		FechaEmision:    cot.FechaEmision.Format(fechaLayout),
		Moneda:          cot.Moneda,
		Estado:          cot.Estado,
		AplicaIVA:       cot.AplicaIVA,
		Notas:           cot.Notas,
		Subtotal:        cot.Subtotal,
		Impuesto:        cot.Impuesto,
		Total:           cot.Total,
		FacturaID:       cot.FacturaID,
		Items:           make([]dto.ItemLineaResponse, 0, len(cot.Items)),
	}
	if !cot.FechaValidez.IsZero() {
		resp.FechaValidez = cot.FechaValidez.Format(fechaLayout)
	}
	for _, it := range cot.Items {
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
