package repository

import "github.com/ccltech/tienda-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
	AgregarFavorito(usuarioID, productoID string) error
	QuitarFavorito(usuarioID, productoID string) error
	ListFavoritos(usuarioID string) ([]string, error)
}
