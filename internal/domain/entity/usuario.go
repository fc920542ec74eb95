package entity

import "time"

// Roles de usuario.
const (
	RolAdmin    = "admin"
	RolOperador = "operador"
)

// Usuario de la aplicación (panel de administración).
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string // admin | operador
	Estado       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
