package repository

// FolioRepository entrega números de secuencia de factura por año de forma
// atómica. Reemplaza el conteo de filas (count+1) que colisiona bajo
// concurrencia: el UPDATE sobre la fila del año serializa a los convertidores.
type FolioRepository interface {
	// Siguiente reserva y devuelve el próximo consecutivo del año (1, 2, 3...).
	Siguiente(anio int) (int, error)
}
