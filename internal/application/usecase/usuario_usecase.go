package usecase

import (
	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

// UsuarioUseCase perfil y favoritos del usuario autenticado.
type UsuarioUseCase struct {
	usuarioRepo  repository.UsuarioRepository
	productoRepo repository.ProductoRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(usuarioRepo repository.UsuarioRepository, productoRepo repository.ProductoRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo, productoRepo: productoRepo}
}

// GetByID obtiene el perfil del usuario.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUsuarioResponse(usuario), nil
}

// AgregarFavorito agrega un producto a los favoritos del usuario.
func (uc *UsuarioUseCase) AgregarFavorito(usuarioID, productoID string) error {
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.usuarioRepo.AgregarFavorito(usuarioID, productoID)
}

// QuitarFavorito quita un producto de los favoritos del usuario.
func (uc *UsuarioUseCase) QuitarFavorito(usuarioID, productoID string) error {
	return uc.usuarioRepo.QuitarFavorito(usuarioID, productoID)
}

// ListFavoritos devuelve los productos favoritos del usuario. Los IDs que ya
// no existen se omiten en silencio.
func (uc *UsuarioUseCase) ListFavoritos(usuarioID string) (*dto.FavoritosResponse, error) {
	ids, err := uc.usuarioRepo.ListFavoritos(usuarioID)
	if err != nil {
		return nil, err
	}
	resp := &dto.FavoritosResponse{Favoritos: []dto.ProductoResponse{}}
	if len(ids) == 0 {
		return resp, nil
	}
	productos, err := uc.productoRepo.GetVarios(ids)
	if err != nil {
		return nil, err
	}
	for _, p := range productos {
		resp.Favoritos = append(resp.Favoritos, *toProductoResponse(p))
	}
	return resp, nil
}

// ToUsuarioResponse mapea la entidad a su DTO sin exponer el hash.
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
	}
}
