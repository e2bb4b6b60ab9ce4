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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const columnasUsuario = `id, name, email, password_hash, role, estado, created_at, updated_at`

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
// Los favoritos viven en la tabla puente usuario_favoritos.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario. El email es único.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + columnasUsuario + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Estado, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, con sus favoritos cargados.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE id = $1`
	return r.get(query, id)
}

// FindByEmail obtiene un usuario por email.
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE email = $1`
	return r.get(query, email)
}

func (r *UsuarioRepo) get(query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Estado, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	favoritos, err := r.ListFavoritos(u.ID)
	if err != nil {
		return nil, err
	}
	u.Favoritos = favoritos
	return &u, nil
}

// Update actualiza los campos mutables.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET name = $2, email = $3, password_hash = $4, role = $5, estado = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Estado, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// AgregarFavorito marca un producto como favorito; repetirlo no es error.
func (r *UsuarioRepo) AgregarFavorito(usuarioID, productoID string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO usuario_favoritos (usuario_id, producto_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		usuarioID, productoID,
	)
	if err != nil {
		return fmt.Errorf("agregar favorito: %w", err)
	}
	return nil
}

// QuitarFavorito desmarca un producto favorito; si no estaba, no pasa nada.
func (r *UsuarioRepo) QuitarFavorito(usuarioID, productoID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM usuario_favoritos WHERE usuario_id = $1 AND producto_id = $2`,
		usuarioID, productoID,
	)
	if err != nil {
		return fmt.Errorf("quitar favorito: %w", err)
	}
	return nil
}

// ListFavoritos devuelve los IDs de productos favoritos del usuario.
func (r *UsuarioRepo) ListFavoritos(usuarioID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT producto_id FROM usuario_favoritos WHERE usuario_id = $1 ORDER BY producto_id`, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list favoritos: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorito: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
