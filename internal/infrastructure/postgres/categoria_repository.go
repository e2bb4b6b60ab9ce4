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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

const columnasCategoria = `id, codigo, name, description, img, esquema, state, created_at, updated_at`

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
// El esquema dinámico de atributos se guarda tal cual en una columna JSONB.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una nueva categoría. El código es único.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (` + columnasCategoria + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Codigo, c.Name, c.Description, c.Img, c.Esquema, c.State, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	return r.getPor("id", id)
}

// GetByCodigo obtiene una categoría por su código único.
func (r *CategoriaRepo) GetByCodigo(codigo string) (*entity.Categoria, error) {
	return r.getPor("codigo", codigo)
}

func (r *CategoriaRepo) getPor(columna, valor string) (*entity.Categoria, error) {
	query := fmt.Sprintf(`SELECT %s FROM categorias WHERE %s = $1`, columnasCategoria, columna)
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), query, valor).Scan(
		&c.ID, &c.Codigo, &c.Name, &c.Description, &c.Img, &c.Esquema, &c.State, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// List lista todas las categorías ordenadas por nombre.
func (r *CategoriaRepo) List() ([]*entity.Categoria, error) {
	query := `SELECT ` + columnasCategoria + ` FROM categorias ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var categorias []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Codigo, &c.Name, &c.Description, &c.Img, &c.Esquema, &c.State, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		categorias = append(categorias, &c)
	}
	return categorias, rows.Err()
}

// Update actualiza los campos mutables (el código no cambia).
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	query := `
		UPDATE categorias
		SET name = $2, description = $3, img = $4, esquema = $5, state = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Description, c.Img, c.Esquema, c.State, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
