package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

var _ repository.FolioRepository = (*FolioRepo)(nil)

// FolioRepo secuencia de números de factura por año sobre la tabla folios.
// El upsert con RETURNING reserva el consecutivo en una sola sentencia:
// dos conversiones simultáneas nunca obtienen el mismo número.
type FolioRepo struct {
	q Querier
}

func NewFolioRepository(q Querier) *FolioRepo {
	return &FolioRepo{q: q}
}

// Siguiente reserva y devuelve el próximo consecutivo del año.
func (r *FolioRepo) Siguiente(anio int) (int, error) {
	query := `
		INSERT INTO folios (anio, ultimo) VALUES ($1, 1)
		ON CONFLICT (anio) DO UPDATE SET ultimo = folios.ultimo + 1
		RETURNING ultimo`
	var ultimo int
	if err := r.q.QueryRow(context.Background(), query, anio).Scan(&ultimo); err != nil {
		return 0, fmt.Errorf("siguiente folio %d: %w", anio, err)
	}
	return ultimo, nil
}
