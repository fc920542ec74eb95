package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/finanzas"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

// plazoVencimiento es el plazo de pago por defecto de una factura.
const plazoVencimiento = 30 * 24 * time.Hour

// ConvertirUseCase transforma una cotización aprobada en una factura nueva.
//
// Precondiciones: la cotización existe, está en estado aprobada y tiene un
// cliente registrado (los prospectos no se facturan). La conversión es
// one-shot: la cotización queda en estado facturada con el backlink a la
// factura, y un segundo intento retorna ErrYaFacturada.
//
// El número se reserva con un folio atómico por año (FolioRepository), dentro
// de la misma transacción que inserta la factura; dos conversiones
// concurrentes nunca producen el mismo número.
type ConvertirUseCase struct {
	cotRepo  repository.CotizacionRepository
	txRunner ConversionTxRunner
}

// NewConvertirUseCase construye el caso de uso.
func NewConvertirUseCase(cotRepo repository.CotizacionRepository, txRunner ConversionTxRunner) *ConvertirUseCase {
	return &ConvertirUseCase{cotRepo: cotRepo, txRunner: txRunner}
}

// Convertir ejecuta la conversión y devuelve id y número de la factura creada.
func (uc *ConvertirUseCase) Convertir(ctx context.Context, cotizacionID string) (*dto.ConvertirResponse, error) {
	cot, err := uc.cotRepo.GetByID(cotizacionID)
	if err != nil {
		return nil, fmt.Errorf("convertir: obtener cotización: %w", err)
	}
	if cot == nil {
		return nil, domain.ErrNotFound
	}
	if cot.Estado == entity.CotizacionFacturada {
		return nil, domain.ErrYaFacturada
	}
	if cot.Estado != entity.CotizacionAprobada {
		return nil, fmt.Errorf("%w (estado actual: %s)", domain.ErrNoAprobada, cot.Estado)
	}
	if cot.ClienteID == "" {
		return nil, domain.ErrSinCliente
	}

	now := time.Now()
	factura := &entity.Factura{
		ID:               uuid.New().String(),
		ClienteID:        cot.ClienteID,
		CotizacionID:     cot.ID,
		FechaEmision:     now,
		FechaVencimiento: now.Add(plazoVencimiento),
		Moneda:           cot.Moneda,
		Estado:           finanzas.FacturaBorrador,
		AplicaIVA:        cot.AplicaIVA,
		Notas:            cot.Notas,
		// Montos copiados tal cual de la cotización, sin recalcular: la
		// factura refleja lo que el cliente aprobó.
		Subtotal:  cot.Subtotal,
		Impuesto:  cot.Impuesto,
		Total:     cot.Total,
		Items:     duplicarItems(cot.Items),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.RunConversion(ctx, func(
		cotRepo repository.CotizacionRepository,
		factRepo repository.FacturaRepository,
		folioRepo repository.FolioRepository,
	) error {
		seq, err := folioRepo.Siguiente(now.Year())
		if err != nil {
			return fmt.Errorf("reservar folio: %w", err)
		}
		factura.Numero = fmt.Sprintf("FAC-%d-%04d", now.Year(), seq)

		if err := factRepo.Create(factura); err != nil {
			// La restricción única sobre cotizacion_id respalda el one-shot
			// frente a una conversión concurrente de la misma cotización.
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ErrYaFacturada
			}
			return err
		}
		return cotRepo.MarcarFacturada(cot.ID, factura.ID)
	})
	if err != nil {
		return nil, err
	}

	return &dto.ConvertirResponse{FacturaID: factura.ID, Numero: factura.Numero}, nil
}

// duplicarItems copia las líneas por valor con IDs nuevos: los items de la
// factura son independientes de los de la cotización.
func duplicarItems(items []entity.ItemLinea) []entity.ItemLinea {
	out := make([]entity.ItemLinea, 0, len(items))
	for _, it := range items {
		out = append(out, entity.ItemLinea{
			ID:          uuid.New().String(),
			Descripcion: it.Descripcion,
			Cantidad:    it.Cantidad,
			PrecioUnit:  it.PrecioUnit,
			Total:       it.Total,
		})
	}
	return out
}
