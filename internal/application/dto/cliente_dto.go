package dto

// ClienteRequest body para POST/PUT de clientes.
type ClienteRequest struct {
	RUT         string `json:"rut"`
	RazonSocial string `json:"razon_social"`
	Estado      string `json:"estado,omitempty"` // activo | inactivo | prospecto
	Contacto    string `json:"contacto,omitempty"`
	Email       string `json:"email,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID          string `json:"id"`
	RUT         string `json:"rut"`
	RazonSocial string `json:"razon_social"`
	Estado      string `json:"estado"`
	Contacto    string `json:"contacto,omitempty"`
	Email       string `json:"email,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
}
