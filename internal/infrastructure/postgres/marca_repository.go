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

var _ repository.MarcaRepository = (*MarcaRepo)(nil)

const columnasMarca = `id, nombre, logo, slug, state, created_at, updated_at`

// MarcaRepo implementación del puerto MarcaRepository sobre PostgreSQL.
type MarcaRepo struct {
	q Querier
}

// NewMarcaRepository construye el adaptador de persistencia para marcas.
func NewMarcaRepository(q Querier) *MarcaRepo {
	return &MarcaRepo{q: q}
}

// Create persiste una nueva marca. El nombre es único.
func (r *MarcaRepo) Create(m *entity.Marca) error {
	query := `
		INSERT INTO marcas (` + columnasMarca + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Nombre, m.Logo, m.Slug, m.State, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert marca: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID.
func (r *MarcaRepo) GetByID(id string) (*entity.Marca, error) {
	return r.getPor("id", id)
}

// GetBySlug obtiene una marca por su slug.
func (r *MarcaRepo) GetBySlug(slug string) (*entity.Marca, error) {
	return r.getPor("slug", slug)
}

// GetByNombre obtiene una marca por su nombre exacto.
func (r *MarcaRepo) GetByNombre(nombre string) (*entity.Marca, error) {
	return r.getPor("nombre", nombre)
}

func (r *MarcaRepo) getPor(columna, valor string) (*entity.Marca, error) {
	query := fmt.Sprintf(`SELECT %s FROM marcas WHERE %s = $1`, columnasMarca, columna)
	var m entity.Marca
	err := r.q.QueryRow(context.Background(), query, valor).Scan(
		&m.ID, &m.Nombre, &m.Logo, &m.Slug, &m.State, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get marca: %w", err)
	}
	return &m, nil
}

// ListActivas lista las marcas activas.
func (r *MarcaRepo) ListActivas() ([]*entity.Marca, error) {
	return r.listar(`SELECT ` + columnasMarca + ` FROM marcas WHERE state = '1' ORDER BY nombre ASC`)
}

// ListTodas lista todas las marcas, activas o no.
func (r *MarcaRepo) ListTodas() ([]*entity.Marca, error) {
	return r.listar(`SELECT ` + columnasMarca + ` FROM marcas ORDER BY nombre ASC`)
}

func (r *MarcaRepo) listar(query string) ([]*entity.Marca, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list marcas: %w", err)
	}
	defer rows.Close()

	var marcas []*entity.Marca
	for rows.Next() {
		var m entity.Marca
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Logo, &m.Slug, &m.State, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		marcas = append(marcas, &m)
	}
	return marcas, rows.Err()
}

// Update actualiza los campos mutables.
func (r *MarcaRepo) Update(m *entity.Marca) error {
	query := `
		UPDATE marcas
		SET nombre = $2, logo = $3, slug = $4, state = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, m.ID, m.Nombre, m.Logo, m.Slug, m.State, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update marca: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
