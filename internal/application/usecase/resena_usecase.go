package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

// ResenaUseCase casos de uso de reseñas. Cada escritura recalcula el promedio
// de calificación del producto (un decimal).
type ResenaUseCase struct {
	resenaRepo   repository.ResenaRepository
	productoRepo repository.ProductoRepository
	usuarioRepo  repository.UsuarioRepository
}

// NewResenaUseCase construye el caso de uso.
func NewResenaUseCase(
	resenaRepo repository.ResenaRepository,
	productoRepo repository.ProductoRepository,
	usuarioRepo repository.UsuarioRepository,
) *ResenaUseCase {
	return &ResenaUseCase{
		resenaRepo:   resenaRepo,
		productoRepo: productoRepo,
		usuarioRepo:  usuarioRepo,
	}
}

// Create crea una reseña. Un usuario solo puede reseñar cada producto una vez.
func (uc *ResenaUseCase) Create(usuarioID string, in dto.CreateResenaRequest) (*dto.ResenaResponse, error) {
	if in.Calificacion < 1 || in.Calificacion > 5 || in.Comentario == "" {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	usuario, err := uc.usuarioRepo.GetByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	existing, _ := uc.resenaRepo.GetByProductoYUsuario(in.ProductoID, usuarioID)
	if existing != nil {
		return nil, domain.ErrConflict
	}
	resena := &entity.Resena{
		ID:            uuid.New().String(),
		ProductoID:    in.ProductoID,
		UsuarioID:     usuarioID,
		NombreUsuario: usuario.Name,
		Calificacion:  in.Calificacion,
		Comentario:    in.Comentario,
		CreatedAt:     time.Now(),
	}
	if err := uc.resenaRepo.Create(resena); err != nil {
		return nil, err
	}
	if err := uc.recalcularPromedio(producto); err != nil {
		return nil, err
	}
	return toResenaResponse(resena), nil
}

// ListByProducto lista las reseñas de un producto junto con su promedio vigente.
func (uc *ResenaUseCase) ListByProducto(productoID string) (*dto.ResenasProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	resenas, err := uc.resenaRepo.ListByProducto(productoID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ResenaResponse, 0, len(resenas))
	for _, r := range resenas {
		items = append(items, *toResenaResponse(r))
	}
	return &dto.ResenasProductoResponse{
		Promedio: producto.PromedioCalificacion,
		Resenas:  items,
	}, nil
}

// Delete elimina una reseña propia y recalcula el promedio del producto.
func (uc *ResenaUseCase) Delete(usuarioID, resenaID string) error {
	resena, err := uc.resenaRepo.GetByID(resenaID)
	if err != nil {
		return err
	}
	if resena == nil {
		return domain.ErrNotFound
	}
	if resena.UsuarioID != usuarioID {
		return domain.ErrForbidden
	}
	if err := uc.resenaRepo.Delete(resenaID); err != nil {
		return err
	}
	producto, err := uc.productoRepo.GetByID(resena.ProductoID)
	if err != nil {
		return err
	}
	if producto == nil {
		return nil
	}
	return uc.recalcularPromedio(producto)
}

// recalcularPromedio persiste el promedio del producto redondeado a un decimal.
func (uc *ResenaUseCase) recalcularPromedio(producto *entity.Producto) error {
	promedio, err := uc.resenaRepo.Promedio(producto.ID)
	if err != nil {
		return err
	}
	producto.PromedioCalificacion = promedio.Round(1)
	producto.UpdatedAt = time.Now()
	return uc.productoRepo.Update(producto)
}

func toResenaResponse(r *entity.Resena) *dto.ResenaResponse {
	if r == nil {
		return nil
	}
	return &dto.ResenaResponse{
		ID:            r.ID,
		ProductoID:    r.ProductoID,
		UsuarioID:     r.UsuarioID,
		NombreUsuario: r.NombreUsuario,
		Calificacion:  r.Calificacion,
		Comentario:    r.Comentario,
		CreatedAt:     r.CreatedAt,
	}
}
