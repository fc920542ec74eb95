package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gestion-ti/internal/application/billing"
	"github.com/tu-usuario/gestion-ti/internal/domain/repository"
)

var _ billing.ConversionTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunConversion inicia una transacción con los repos de la conversión
// cotización→factura y hace Commit o Rollback. Folio, insert de factura e
// items y marca de la cotización quedan en la misma tx.
func (r *TxRunner) RunConversion(ctx context.Context, fn func(
	cotRepo repository.CotizacionRepository,
	factRepo repository.FacturaRepository,
	folioRepo repository.FolioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cotRepo := NewCotizacionRepository(tx)
	factRepo := NewFacturaRepository(tx)
	folioRepo := NewFolioRepository(tx)

	if err := fn(cotRepo, factRepo, folioRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
