package entity

import "time"

// Estados del ciclo de vida de un cliente.
const (
	ClienteActivo    = "activo"
	ClienteInactivo  = "inactivo"
	ClienteProspecto = "prospecto"
)

// Cliente representa un cliente de la empresa de servicios TI.
// El RUT es la llave de negocio (único en la tabla).
type Cliente struct {
	ID          string
	RUT         string
	RazonSocial string
	Estado      string // activo | inactivo | prospecto
	Contacto    string
	Email       string
	Telefono    string
	Direccion   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EstadoClienteValido indica si el estado pertenece al conjunto permitido.
func EstadoClienteValido(s string) bool {
	switch s {
	case ClienteActivo, ClienteInactivo, ClienteProspecto:
		return true
	}
	return false
}
