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

var _ repository.SubcategoriaRepository = (*SubcategoriaRepo)(nil)

const columnasSubcategoria = `id, codigo, name, categoria_padre, state, created_at, updated_at`

// SubcategoriaRepo implementación del puerto SubcategoriaRepository sobre
// PostgreSQL. categoria_padre guarda el código de la categoría, no su ID.
type SubcategoriaRepo struct {
	q Querier
}

// NewSubcategoriaRepository construye el adaptador de persistencia para subcategorías.
func NewSubcategoriaRepository(q Querier) *SubcategoriaRepo {
	return &SubcategoriaRepo{q: q}
}

// Create persiste una nueva subcategoría. El código es único.
func (r *SubcategoriaRepo) Create(s *entity.Subcategoria) error {
	query := `
		INSERT INTO subcategorias (` + columnasSubcategoria + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Codigo, s.Name, s.CategoriaPadre, s.State, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategoria: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID.
func (r *SubcategoriaRepo) GetByID(id string) (*entity.Subcategoria, error) {
	query := `SELECT ` + columnasSubcategoria + ` FROM subcategorias WHERE id = $1`
	var s entity.Subcategoria
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Codigo, &s.Name, &s.CategoriaPadre, &s.State, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategoria: %w", err)
	}
	return &s, nil
}

// ListActivas lista las subcategorías activas.
func (r *SubcategoriaRepo) ListActivas() ([]*entity.Subcategoria, error) {
	query := `SELECT ` + columnasSubcategoria + ` FROM subcategorias WHERE state = '1' ORDER BY name ASC`
	return r.listar(query)
}

// ListByCategoriaPadre lista las subcategorías activas de una categoría por el
// código del padre.
func (r *SubcategoriaRepo) ListByCategoriaPadre(codigoPadre string) ([]*entity.Subcategoria, error) {
	query := `SELECT ` + columnasSubcategoria + ` FROM subcategorias WHERE categoria_padre = $1 AND state = '1' ORDER BY name ASC`
	return r.listar(query, codigoPadre)
}

func (r *SubcategoriaRepo) listar(query string, args ...any) ([]*entity.Subcategoria, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategorias: %w", err)
	}
	defer rows.Close()

	var subs []*entity.Subcategoria
	for rows.Next() {
		var s entity.Subcategoria
		if err := rows.Scan(&s.ID, &s.Codigo, &s.Name, &s.CategoriaPadre, &s.State, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategoria: %w", err)
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Update actualiza los campos mutables.
func (r *SubcategoriaRepo) Update(s *entity.Subcategoria) error {
	query := `
		UPDATE subcategorias
		SET name = $2, categoria_padre = $3, state = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, s.ID, s.Name, s.CategoriaPadre, s.State, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update subcategoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Reemplazar borra todas las subcategorías y siembra el conjunto dado.
func (r *SubcategoriaRepo) Reemplazar(subs []*entity.Subcategoria) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM subcategorias`); err != nil {
		return fmt.Errorf("limpiar subcategorias: %w", err)
	}
	for _, s := range subs {
		if err := r.Create(s); err != nil {
			return err
		}
	}
	return nil
}
