package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

// ServicioUseCase CRUD del catálogo de servicios.
type ServicioUseCase struct {
	servicioRepo repository.ServicioRepository
}

func NewServicioUseCase(servicioRepo repository.ServicioRepository) *ServicioUseCase {
	return &ServicioUseCase{servicioRepo: servicioRepo}
}

func (uc *ServicioUseCase) Create(in dto.ServicioRequest) (*dto.ServicioResponse, error) {
	if in.Nombre == "" || in.PrecioBase.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	now := time.Now()
	servicio := &entity.Servicio{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		PrecioBase:  in.PrecioBase,
		Activo:      activo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.servicioRepo.Create(servicio); err != nil {
		return nil, err
	}
	return toServicioResponse(servicio), nil
}

func (uc *ServicioUseCase) GetByID(id string) (*dto.ServicioResponse, error) {
	servicio, err := uc.servicioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, domain.ErrNotFound
	}
	return toServicioResponse(servicio), nil
}

func (uc *ServicioUseCase) List(page dto.PageRequest) ([]*dto.ServicioResponse, error) {
	page.DefaultPage()
	servicios, err := uc.servicioRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServicioResponse, 0, len(servicios))
	for _, s := range servicios {
		out = append(out, toServicioResponse(s))
	}
	return out, nil
}

func (uc *ServicioUseCase) Update(id string, in dto.ServicioRequest) (*dto.ServicioResponse, error) {
	servicio, err := uc.servicioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre == "" || in.PrecioBase.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	servicio.Nombre = in.Nombre
	servicio.Descripcion = in.Descripcion
	servicio.PrecioBase = in.PrecioBase
	if in.Activo != nil {
		servicio.Activo = *in.Activo
	}
	servicio.UpdatedAt = time.Now()

	if err := uc.servicioRepo.Update(servicio); err != nil {
		return nil, err
	}
	return toServicioResponse(servicio), nil
}

func (uc *ServicioUseCase) Delete(id string) error {
	servicio, err := uc.servicioRepo.GetByID(id)
	if err != nil {
		return err
	}
	if servicio == nil {
		return domain.ErrNotFound
	}
	return uc.servicioRepo.Delete(id)
}

func toServicioResponse(s *entity.Servicio) *dto.ServicioResponse {
	return &dto.ServicioResponse{
		ID:          s.ID,
		Nombre:      s.Nombre,
		Descripcion: s.Descripcion,
		PrecioBase:  s.PrecioBase,
		Activo:      s.Activo,
	}
}
