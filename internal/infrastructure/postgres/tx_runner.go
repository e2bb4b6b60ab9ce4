package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ccltech/tienda-api/internal/application/inventario"
	"github.com/ccltech/tienda-api/internal/application/pagos"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

var _ inventario.TxRunner = (*TxRunner)(nil)
var _ pagos.TxRunner = (*PagoTxRunner)(nil)

// TxRunner ejecuta callbacks de inventario dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovimientoRepository(tx), NewProductoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// PagoTxRunner ejecuta el cierre de una orden (stock + estado) en transacción.
type PagoTxRunner struct {
	pool *pgxpool.Pool
}

// NewPagoTxRunner construye el runner con el pool.
func NewPagoTxRunner(pool *pgxpool.Pool) *PagoTxRunner {
	return &PagoTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *PagoTxRunner) Run(ctx context.Context, fn func(
	ordenRepo repository.OrdenRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrdenRepository(tx), NewProductoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
