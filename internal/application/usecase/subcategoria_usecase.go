package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

// subcategoriaSemilla conjunto predefinido, dos subcategorías por categoría.
type subcategoriaSemilla struct {
	Codigo         string
	Name           string
	CategoriaPadre string
}

var subcategoriasPredefinidas = []subcategoriaSemilla{
	{"portatil_gaming", "Gaming", "portatiles"},
	{"portatil_ultrabook", "Ultrabook", "portatiles"},
	{"pc_gaming", "Gaming", "pcEscritorio"},
	{"pc_allinone", "All-in-One", "pcEscritorio"},
	{"celular_gamaalta", "Gama Alta", "celulares"},
	{"celular_economico", "Económicos", "celulares"},
	{"smartwatch_deportivo", "Deportivo", "smartwatch"},
	{"smartwatch_lujo", "Lujo", "smartwatch"},
	{"pantalla_gaming", "Gaming", "pantallas"},
	{"pantalla_profesional", "Profesional", "pantallas"},
	{"audifono_inalambrico", "Inalámbricos", "audifonos"},
	{"audifono_cancelacionruido", "Cancelación de Ruido", "audifonos"},
	{"tablet_premium", "Premium", "tablets"},
	{"tablet_economica", "Económicas", "tablets"},
	{"mouse_gaming", "Gaming", "mouse"},
	{"mouse_inalambrico", "Inalámbrico", "mouse"},
	{"teclado_mecanico", "Mecánico", "teclado"},
	{"teclado_inalambrico", "Inalámbrico", "teclado"},
	{"componente_gaming", "Gaming", "componentes"},
	{"componente_oficina", "Oficina", "componentes"},
}

// SubcategoriaUseCase casos de uso de subcategorías, incluida la siembra del
// conjunto predefinido.
type SubcategoriaUseCase struct {
	repo          repository.SubcategoriaRepository
	categoriaRepo repository.CategoriaRepository
}

// NewSubcategoriaUseCase construye el caso de uso.
func NewSubcategoriaUseCase(repo repository.SubcategoriaRepository, categoriaRepo repository.CategoriaRepository) *SubcategoriaUseCase {
	return &SubcategoriaUseCase{repo: repo, categoriaRepo: categoriaRepo}
}

// Inicializar reemplaza todas las subcategorías por el conjunto predefinido.
// Pensado para ejecutarse una sola vez al montar el catálogo.
func (uc *SubcategoriaUseCase) Inicializar() (*dto.SubcategoriaListResponse, error) {
	now := time.Now()
	subs := make([]*entity.Subcategoria, 0, len(subcategoriasPredefinidas))
	for _, s := range subcategoriasPredefinidas {
		subs = append(subs, &entity.Subcategoria{
			ID:             uuid.New().String(),
			Codigo:         s.Codigo,
			Name:           s.Name,
			CategoriaPadre: s.CategoriaPadre,
			State:          entity.EstadoActivo,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	if err := uc.repo.Reemplazar(subs); err != nil {
		return nil, err
	}
	return toSubcategoriaList(subs), nil
}

// Create crea una subcategoría validando que la categoría padre exista por su
// código (la relación se guarda por código, no por ID).
func (uc *SubcategoriaUseCase) Create(in dto.CreateSubcategoriaRequest) (*dto.SubcategoriaResponse, error) {
	if in.Codigo == "" || in.Name == "" || in.CategoriaPadre == "" {
		return nil, domain.ErrInvalidInput
	}
	padre, err := uc.categoriaRepo.GetByCodigo(in.CategoriaPadre)
	if err != nil {
		return nil, err
	}
	if padre == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	sub := &entity.Subcategoria{
		ID:             uuid.New().String(),
		Codigo:         in.Codigo,
		Name:           in.Name,
		CategoriaPadre: in.CategoriaPadre,
		State:          entity.EstadoActivo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(sub); err != nil {
		return nil, err
	}
	return toSubcategoriaResponse(sub), nil
}

// ListActivas lista las subcategorías activas con contador.
func (uc *SubcategoriaUseCase) ListActivas() (*dto.SubcategoriaListResponse, error) {
	subs, err := uc.repo.ListActivas()
	if err != nil {
		return nil, err
	}
	return toSubcategoriaList(subs), nil
}

// ListPorCategoria lista las subcategorías activas de una categoría por el
// código del padre. Sin resultados devuelve not found, no una lista vacía.
func (uc *SubcategoriaUseCase) ListPorCategoria(codigoPadre string) (*dto.SubcategoriaListResponse, error) {
	subs, err := uc.repo.ListByCategoriaPadre(codigoPadre)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, domain.ErrNotFound
	}
	return toSubcategoriaList(subs), nil
}

// ToggleState alterna el estado activo/desactivado.
func (uc *SubcategoriaUseCase) ToggleState(id string) (*dto.SubcategoriaResponse, error) {
	sub, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	if sub.State == entity.EstadoActivo {
		sub.State = entity.EstadoDesactivado
	} else {
		sub.State = entity.EstadoActivo
	}
	sub.UpdatedAt = time.Now()
	if err := uc.repo.Update(sub); err != nil {
		return nil, err
	}
	return toSubcategoriaResponse(sub), nil
}

func toSubcategoriaResponse(s *entity.Subcategoria) *dto.SubcategoriaResponse {
	if s == nil {
		return nil
	}
	return &dto.SubcategoriaResponse{
		ID:             s.ID,
		Codigo:         s.Codigo,
		Name:           s.Name,
		CategoriaPadre: s.CategoriaPadre,
		State:          s.State,
		CreatedAt:      s.CreatedAt,
	}
}

func toSubcategoriaList(subs []*entity.Subcategoria) *dto.SubcategoriaListResponse {
	items := make([]dto.SubcategoriaResponse, 0, len(subs))
	for _, s := range subs {
		items = append(items, *toSubcategoriaResponse(s))
	}
	return &dto.SubcategoriaListResponse{Success: true, Count: len(items), Data: items}
}
