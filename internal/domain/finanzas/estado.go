package finanzas

import (
	"fmt"
	"strings"
)

// Estados del ciclo de vida de una factura.
const (
	FacturaBorrador  = "borrador"
	FacturaEnviada   = "enviada"
	FacturaPendiente = "pendiente"
	FacturaVencida   = "vencida"
	FacturaPagada    = "pagada"
	FacturaAnulada   = "anulada"
)

// transiciones define, por estado actual, los estados destino permitidos.
// pagada y anulada son terminales.
var transiciones = map[string][]string{
	FacturaBorrador:  {FacturaEnviada, FacturaAnulada},
	FacturaEnviada:   {FacturaPendiente, FacturaAnulada},
	FacturaPendiente: {FacturaPagada, FacturaVencida, FacturaAnulada},
	FacturaVencida:   {FacturaPagada, FacturaAnulada},
	FacturaPagada:    {},
	FacturaAnulada:   {},
}

// ErrTransicionInvalida describe un cambio de estado rechazado, con los
// destinos permitidos desde el estado actual para el mensaje al usuario.
type ErrTransicionInvalida struct {
	Desde      string
	Hacia      string
	Permitidas []string
}

func (e *ErrTransicionInvalida) Error() string {
	if len(e.Permitidas) == 0 {
		return fmt.Sprintf("transición inválida: %q es un estado terminal", e.Desde)
	}
	return fmt.Sprintf("transición inválida de %q a %q; permitidas: %s",
		e.Desde, e.Hacia, strings.Join(e.Permitidas, ", "))
}

// EstadoFacturaValido indica si el estado pertenece al conjunto conocido.
func EstadoFacturaValido(s string) bool {
	_, ok := transiciones[s]
	return ok
}

// Transicionar valida el cambio de estado contra la tabla de transiciones.
// Es el único punto de entrada para mover el estado de una factura: el PATCH
// de estado, el envío por email y el barrido de vencidas pasan todos por aquí.
func Transicionar(actual, destino string) error {
	permitidas, ok := transiciones[actual]
	if !ok {
		return &ErrTransicionInvalida{Desde: actual, Hacia: destino}
	}
	for _, p := range permitidas {
		if p == destino {
			return nil
		}
	}
	return &ErrTransicionInvalida{Desde: actual, Hacia: destino, Permitidas: permitidas}
}

// TransicionesDesde devuelve los destinos permitidos desde un estado (copia).
func TransicionesDesde(actual string) []string {
	permitidas := transiciones[actual]
	out := make([]string, len(permitidas))
	copy(out, permitidas)
	return out
}
