package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const columnasMovimiento = `id, producto_id, tipo, cantidad, usuario_id, motivo, fecha`

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador de persistencia para movimientos.
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un nuevo movimiento.
func (r *MovimientoRepo) Create(m *entity.MovimientoInventario) error {
	query := `
		INSERT INTO movimientos_inventario (` + columnasMovimiento + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoID, m.Tipo, m.Cantidad, m.UsuarioID, m.Motivo, m.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.MovimientoInventario, error) {
	query := `SELECT ` + columnasMovimiento + ` FROM movimientos_inventario WHERE id = $1`
	var m entity.MovimientoInventario
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductoID, &m.Tipo, &m.Cantidad, &m.UsuarioID, &m.Motivo, &m.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// List lista todos los movimientos, el más reciente primero.
func (r *MovimientoRepo) List() ([]*entity.MovimientoInventario, error) {
	query := `SELECT ` + columnasMovimiento + ` FROM movimientos_inventario ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var movs []*entity.MovimientoInventario
	for rows.Next() {
		var m entity.MovimientoInventario
		if err := rows.Scan(&m.ID, &m.ProductoID, &m.Tipo, &m.Cantidad, &m.UsuarioID, &m.Motivo, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		movs = append(movs, &m)
	}
	return movs, rows.Err()
}

// Update solo permite corregir el motivo.
func (r *MovimientoRepo) Update(m *entity.MovimientoInventario) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE movimientos_inventario SET motivo = $2 WHERE id = $1`, m.ID, m.Motivo)
	if err != nil {
		return fmt.Errorf("update movimiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
