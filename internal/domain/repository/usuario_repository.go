package repository

import "github.com/tu-usuario/gestion-ti/internal/domain/entity"

// UsuarioRepository persistencia de usuarios del panel.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}
