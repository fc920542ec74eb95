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

// GastoUseCase registra egresos de la empresa.
type GastoUseCase struct {
	gastoRepo repository.GastoRepository
}

func NewGastoUseCase(gastoRepo repository.GastoRepository) *GastoUseCase {
	return &GastoUseCase{gastoRepo: gastoRepo}
}

func (uc *GastoUseCase) Create(in dto.CreateGastoRequest) (*dto.GastoResponse, error) {
	if in.Categoria == "" || !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	fecha := time.Now()
	if in.Fecha != "" {
		var err error
		fecha, err = time.Parse(fechaLayout, in.Fecha)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Fecha)
		}
	}
	gasto := &entity.Gasto{
		ID:          uuid.New().String(),
		Categoria:   in.Categoria,
		Descripcion: in.Descripcion,
		Monto:       in.Monto,
		Fecha:       fecha,
		CreatedAt:   time.Now(),
	}
	if err := uc.gastoRepo.Create(gasto); err != nil {
		return nil, err
	}
	return toGastoResponse(gasto), nil
}

func (uc *GastoUseCase) GetByID(id string) (*dto.GastoResponse, error) {
	gasto, err := uc.gastoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if gasto == nil {
		return nil, domain.ErrNotFound
	}
	return toGastoResponse(gasto), nil
}

func (uc *GastoUseCase) List(page dto.PageRequest) ([]*dto.GastoResponse, error) {
	page.DefaultPage()
	gastos, err := uc.gastoRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GastoResponse, 0, len(gastos))
	for _, g := range gastos {
		out = append(out, toGastoResponse(g))
	}
	return out, nil
}

func (uc *GastoUseCase) Delete(id string) error {
	gasto, err := uc.gastoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if gasto == nil {
		return domain.ErrNotFound
	}
	return uc.gastoRepo.Delete(id)
}

func toGastoResponse(g *entity.Gasto) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:          g.ID,
		Categoria:   g.Categoria,
		Descripcion: g.Descripcion,
		Monto:       g.Monto,
		Fecha:       g.Fecha.Format(fechaLayout),
	}
}
