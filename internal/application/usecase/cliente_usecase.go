// Package usecase contiene los casos de uso CRUD de soporte (clientes,
// servicios, pagos, gastos). La lógica financiera vive en application/billing.
package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-ti/internal/application/dto"
	"github.com/tu-usuario/gestion-ti/internal/domain"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

// ClienteUseCase CRUD de clientes. El RUT es único a nivel de negocio.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// Create valida RUT y razón social, chequea duplicados por RUT y persiste.
func (uc *ClienteUseCase) Create(in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if in.RUT == "" || in.RazonSocial == "" {
		return nil, domain.ErrInvalidInput
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.ClienteActivo
	}
	if !entity.EstadoClienteValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	if existente, _ := uc.clienteRepo.GetByRUT(in.RUT); existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:          uuid.New().String(),
		RUT:         in.RUT,
		RazonSocial: in.RazonSocial,
		Estado:      estado,
		Contacto:    in.Contacto,
		Email:       in.Email,
		Telefono:    in.Telefono,
		Direccion:   in.Direccion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.clienteRepo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(cliente), nil
}

func (uc *ClienteUseCase) List(page dto.PageRequest) ([]*dto.ClienteResponse, error) {
	page.DefaultPage()
	clientes, err := uc.clienteRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Update reemplaza los datos del cliente. Si cambia el RUT, valida que el
// nuevo no pertenezca a otro cliente.
func (uc *ClienteUseCase) Update(id string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if in.RUT == "" || in.RazonSocial == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Estado != "" && !entity.EstadoClienteValido(in.Estado) {
		return nil, domain.ErrInvalidInput
	}
	if in.RUT != cliente.RUT {
		if otro, _ := uc.clienteRepo.GetByRUT(in.RUT); otro != nil && otro.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	cliente.RUT = in.RUT
	cliente.RazonSocial = in.RazonSocial
	if in.Estado != "" {
		cliente.Estado = in.Estado
	}
	cliente.Contacto = in.Contacto
	cliente.Email = in.Email
	cliente.Telefono = in.Telefono
	cliente.Direccion = in.Direccion
	cliente.UpdatedAt = time.Now()

	if err := uc.clienteRepo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

func (uc *ClienteUseCase) Delete(id string) error {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	return uc.clienteRepo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:          c.ID,
		RUT:         c.RUT,
		RazonSocial: c.RazonSocial,
		Estado:      c.Estado,
		Contacto:    c.Contacto,
		Email:       c.Email,
		Telefono:    c.Telefono,
		Direccion:   c.Direccion,
	}
}
