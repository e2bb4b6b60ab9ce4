package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

var _ repository.ResenaRepository = (*ResenaRepo)(nil)

const columnasResena = `id, producto_id, usuario_id, nombre_usuario, calificacion, comentario, created_at`

// ResenaRepo implementación del puerto ResenaRepository sobre PostgreSQL.
// El par (producto_id, usuario_id) tiene constraint único.
type ResenaRepo struct {
	q Querier
}

// NewResenaRepository construye el adaptador de persistencia para reseñas.
func NewResenaRepository(q Querier) *ResenaRepo {
	return &ResenaRepo{q: q}
}

// Create persiste una nueva reseña.
func (r *ResenaRepo) Create(res *entity.Resena) error {
	query := `
		INSERT INTO resenas (` + columnasResena + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		res.ID, res.ProductoID, res.UsuarioID, res.NombreUsuario, res.Calificacion, res.Comentario, res.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert resena: %w", err)
	}
	return nil
}

// GetByID obtiene una reseña por ID.
func (r *ResenaRepo) GetByID(id string) (*entity.Resena, error) {
	query := `SELECT ` + columnasResena + ` FROM resenas WHERE id = $1`
	return r.get(query, id)
}

// GetByProductoYUsuario obtiene la reseña de un usuario sobre un producto.
func (r *ResenaRepo) GetByProductoYUsuario(productoID, usuarioID string) (*entity.Resena, error) {
	query := `SELECT ` + columnasResena + ` FROM resenas WHERE producto_id = $1 AND usuario_id = $2`
	return r.get(query, productoID, usuarioID)
}

func (r *ResenaRepo) get(query string, args ...any) (*entity.Resena, error) {
	var res entity.Resena
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&res.ID, &res.ProductoID, &res.UsuarioID, &res.NombreUsuario, &res.Calificacion, &res.Comentario, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resena: %w", err)
	}
	return &res, nil
}

// ListByProducto lista las reseñas de un producto, la más reciente primero.
func (r *ResenaRepo) ListByProducto(productoID string) ([]*entity.Resena, error) {
	query := `SELECT ` + columnasResena + ` FROM resenas WHERE producto_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productoID)
	if err != nil {
		return nil, fmt.Errorf("list resenas: %w", err)
	}
	defer rows.Close()

	var resenas []*entity.Resena
	for rows.Next() {
		var res entity.Resena
		if err := rows.Scan(&res.ID, &res.ProductoID, &res.UsuarioID, &res.NombreUsuario, &res.Calificacion, &res.Comentario, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resena: %w", err)
		}
		resenas = append(resenas, &res)
	}
	return resenas, rows.Err()
}

// Delete borra una reseña.
func (r *ResenaRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM resenas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resena: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Promedio calcula la calificación media del producto (cero si no hay reseñas).
func (r *ResenaRepo) Promedio(productoID string) (decimal.Decimal, error) {
	var promedio decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(AVG(calificacion), 0) FROM resenas WHERE producto_id = $1`, productoID,
	).Scan(&promedio)
	if err != nil {
		return decimal.Zero, fmt.Errorf("promedio resenas: %w", err)
	}
	return promedio, nil
}
