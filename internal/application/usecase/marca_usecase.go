package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
	"github.com/ccltech/tienda-api/pkg/slug"
)

// MarcaUseCase casos de uso de marcas, incluida la regeneración batch de slugs.
type MarcaUseCase struct {
	repo repository.MarcaRepository
}

// NewMarcaUseCase construye el caso de uso.
func NewMarcaUseCase(repo repository.MarcaRepository) *MarcaUseCase {
	return &MarcaUseCase{repo: repo}
}

// Create crea una marca con nombre único; el slug se deriva del nombre.
func (uc *MarcaUseCase) Create(in dto.CreateMarcaRequest) (*dto.MarcaResponse, error) {
	if in.Nombre == "" || in.Logo == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByNombre(in.Nombre)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	marca := &entity.Marca{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Logo:      in.Logo,
		Slug:      slug.De(in.Nombre),
		State:     entity.EstadoActivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(marca); err != nil {
		return nil, err
	}
	return toMarcaResponse(marca), nil
}

// GetByIDOSlug acepta un UUID o un slug como identificador.
func (uc *MarcaUseCase) GetByIDOSlug(idOSlug string) (*dto.MarcaResponse, error) {
	var marca *entity.Marca
	var err error
	if _, uuidErr := uuid.Parse(idOSlug); uuidErr == nil {
		marca, err = uc.repo.GetByID(idOSlug)
	} else {
		marca, err = uc.repo.GetBySlug(idOSlug)
	}
	if err != nil {
		return nil, err
	}
	if marca == nil {
		return nil, domain.ErrNotFound
	}
	return toMarcaResponse(marca), nil
}

// ListActivas lista las marcas activas.
func (uc *MarcaUseCase) ListActivas() ([]dto.MarcaResponse, error) {
	marcas, err := uc.repo.ListActivas()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MarcaResponse, 0, len(marcas))
	for _, m := range marcas {
		items = append(items, *toMarcaResponse(m))
	}
	return items, nil
}

// Update actualiza nombre y/o logo. Cambiar el nombre regenera el slug.
func (uc *MarcaUseCase) Update(id string, in dto.UpdateMarcaRequest) (*dto.MarcaResponse, error) {
	marca, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if marca == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil && *in.Nombre != marca.Nombre {
		existing, _ := uc.repo.GetByNombre(*in.Nombre)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		marca.Nombre = *in.Nombre
		marca.Slug = slug.De(*in.Nombre)
	}
	if in.Logo != nil {
		marca.Logo = *in.Logo
	}
	marca.UpdatedAt = time.Now()
	if err := uc.repo.Update(marca); err != nil {
		return nil, err
	}
	return toMarcaResponse(marca), nil
}

// ToggleState alterna el estado activo/desactivado.
func (uc *MarcaUseCase) ToggleState(id string) (*dto.MarcaResponse, error) {
	marca, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if marca == nil {
		return nil, domain.ErrNotFound
	}
	if marca.State == entity.EstadoActivo {
		marca.State = entity.EstadoDesactivado
	} else {
		marca.State = entity.EstadoActivo
	}
	marca.UpdatedAt = time.Now()
	if err := uc.repo.Update(marca); err != nil {
		return nil, err
	}
	return toMarcaResponse(marca), nil
}

// ActualizarSlugs regenera el slug de todas las marcas. Los fallos por marca
// se acumulan en el reporte y no abortan el lote.
func (uc *MarcaUseCase) ActualizarSlugs() (*dto.ActualizarSlugsResponse, error) {
	marcas, err := uc.repo.ListTodas()
	if err != nil {
		return nil, err
	}
	resp := &dto.ActualizarSlugsResponse{
		TotalMarcas: len(marcas),
		Errores:     []dto.SlugError{},
	}
	for _, m := range marcas {
		nuevo := slug.De(m.Nombre)
		if nuevo == m.Slug {
			continue
		}
		m.Slug = nuevo
		m.UpdatedAt = time.Now()
		if err := uc.repo.Update(m); err != nil {
			resp.Errores = append(resp.Errores, dto.SlugError{
				MarcaID: m.ID,
				Nombre:  m.Nombre,
				Error:   err.Error(),
			})
			continue
		}
		resp.Actualizados++
	}
	resp.Message = "Slugs actualizados"
	return resp, nil
}

func toMarcaResponse(m *entity.Marca) *dto.MarcaResponse {
	if m == nil {
		return nil
	}
	return &dto.MarcaResponse{
		ID:        m.ID,
		Nombre:    m.Nombre,
		Logo:      m.Logo,
		Slug:      m.Slug,
		State:     m.State,
		CreatedAt: m.CreatedAt,
	}
}
