package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/catalogo"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso de categorías y su endpoint de especificaciones.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría. El código debe estar en el registro estático o
// venir acompañado de un esquema dinámico parseable; códigos duplicados fallan.
func (uc *CategoriaUseCase) Create(in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Codigo == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !catalogo.EsCodigoConocido(in.Codigo) {
		if len(in.Esquema) == 0 {
			return nil, domain.ErrInvalidInput
		}
		if _, err := catalogo.SchemaDesdeJSON(in.Esquema); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	existing, _ := uc.repo.GetByCodigo(in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:          uuid.New().String(),
		Codigo:      in.Codigo,
		Name:        in.Name,
		Description: in.Description,
		Img:         in.Img,
		Esquema:     in.Esquema,
		State:       entity.EstadoActivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoriaUseCase) GetByID(id string) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoriaResponse(categoria), nil
}

// List lista todas las categorías.
func (uc *CategoriaUseCase) List() ([]dto.CategoriaResponse, error) {
	categorias, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

// Update actualiza name/description/img/esquema. El código es inmutable.
func (uc *CategoriaUseCase) Update(id string, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		categoria.Name = *in.Name
	}
	if in.Description != nil {
		categoria.Description = *in.Description
	}
	if in.Img != nil {
		categoria.Img = *in.Img
	}
	if len(in.Esquema) > 0 {
		if _, err := catalogo.SchemaDesdeJSON(in.Esquema); err != nil {
			return nil, domain.ErrInvalidInput
		}
		categoria.Esquema = in.Esquema
	}
	categoria.UpdatedAt = time.Now()
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// ToggleState alterna el estado activo/desactivado (soft delete).
func (uc *CategoriaUseCase) ToggleState(id string) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	if categoria.State == entity.EstadoActivo {
		categoria.State = entity.EstadoDesactivado
	} else {
		categoria.State = entity.EstadoActivo
	}
	categoria.UpdatedAt = time.Now()
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Especificaciones devuelve los descriptores de campos de la categoría: primero
// el registro estático por código, luego el esquema dinámico guardado; sin
// esquema la lista queda vacía, no es un error.
func (uc *CategoriaUseCase) Especificaciones(codigo string) (*dto.EspecificacionesResponse, error) {
	categoria, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	schema := catalogo.Resolver(categoria.Codigo)
	if schema == nil && len(categoria.Esquema) > 0 {
		schema, err = catalogo.SchemaDesdeJSON(categoria.Esquema)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	return &dto.EspecificacionesResponse{Campos: catalogo.DescribirCampos(schema)}, nil
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:          c.ID,
		Codigo:      c.Codigo,
		Name:        c.Name,
		Description: c.Description,
		Img:         c.Img,
		Esquema:     c.Esquema,
		State:       c.State,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
