package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/catalogo"
	"github.com/ccltech/tienda-api/internal/domain/repository"
	"github.com/ccltech/tienda-api/pkg/logger"
)

// Redondeo del slider de precios y fallback cuando la categoría no tiene
// productos activos.
var (
	pasoRedondeo    = decimal.NewFromInt(10_000)
	rangoPorDefecto = dto.RangoPreciosResponse{Min: 0, Max: 1_000_000}
	ttlCacheFacetas = 5 * time.Minute
)

// FacetasUseCase calcula los valores de filtro realmente presentes en los
// productos activos de una categoría y el rango de precios para el slider.
type FacetasUseCase struct {
	categoriaRepo repository.CategoriaRepository
	productoRepo  repository.ProductoRepository
	cache         FacetCache
	log           *logger.Logger
}

// NewFacetasUseCase construye el caso de uso. cache puede ser nil.
func NewFacetasUseCase(
	categoriaRepo repository.CategoriaRepository,
	productoRepo repository.ProductoRepository,
	cache FacetCache,
	log *logger.Logger,
) *FacetasUseCase {
	return &FacetasUseCase{
		categoriaRepo: categoriaRepo,
		productoRepo:  productoRepo,
		cache:         cache,
		log:           log,
	}
}

// FiltrosDisponibles resuelve el esquema de la categoría (estático primero,
// luego el dinámico almacenado, si no hay ninguno el mapa queda vacío) y por
// cada atributo declarado agrega los valores DISTINCT observados entre los
// productos activos, desplegando arrays elemento a elemento. Un campo sin
// productos devuelve un slice vacío, la clave nunca se omite.
func (uc *FacetasUseCase) FiltrosDisponibles(ctx context.Context, categoriaID string) (*dto.FiltrosDisponiblesResponse, error) {
	if cached := uc.desdeCache(ctx, claveFacetas(categoriaID)); cached != nil {
		return cached, nil
	}
	categoria, err := uc.categoriaRepo.GetByID(categoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	schema := uc.resolverSchema(categoria.Codigo, categoria.Esquema)

	filters := make(map[string][]catalogo.Opcion)
	if schema != nil {
		for _, campo := range schema.Claves() {
			valores, err := uc.productoRepo.ValoresDistintos(ctx, categoriaID, campo)
			if err != nil {
				return nil, err
			}
			opciones := make([]catalogo.Opcion, 0, len(valores))
			for _, v := range valores {
				// label == value textual, la humanización es cosa del describer
				opciones = append(opciones, catalogo.Opcion{Label: v, Value: v})
			}
			filters[campo] = opciones
		}
	}
	resp := &dto.FiltrosDisponiblesResponse{
		Categoria: categoria.Name,
		Filters:   filters,
	}
	uc.aCache(ctx, claveFacetas(categoriaID), resp)
	return resp, nil
}

// RangoPrecios devuelve min/max de precio entre los productos activos de la
// categoría, con el mínimo redondeado hacia abajo y el máximo hacia arriba al
// múltiplo de 10.000 más cercano. Sin productos activos responde {0, 1000000}.
func (uc *FacetasUseCase) RangoPrecios(ctx context.Context, categoriaID string) (*dto.RangoPreciosResponse, error) {
	categoria, err := uc.categoriaRepo.GetByID(categoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	min, max, ok, err := uc.productoRepo.RangoPrecios(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	if !ok {
		r := rangoPorDefecto
		return &r, nil
	}
	return &dto.RangoPreciosResponse{
		Min: min.Div(pasoRedondeo).Floor().Mul(pasoRedondeo).IntPart(),
		Max: max.Div(pasoRedondeo).Ceil().Mul(pasoRedondeo).IntPart(),
	}, nil
}

// resolverSchema aplica el orden de resolución: registro estático por código,
// luego el esquema dinámico guardado en la categoría, si no nil.
func (uc *FacetasUseCase) resolverSchema(codigo string, esquema json.RawMessage) *catalogo.Schema {
	if s := catalogo.Resolver(codigo); s != nil {
		return s
	}
	if len(esquema) > 0 {
		s, err := catalogo.SchemaDesdeJSON(esquema)
		if err != nil {
			uc.log.Warn().Err(err).Str("codigo", codigo).Msg("esquema dinámico inválido, se ignora")
			return nil
		}
		return s
	}
	return nil
}

func claveFacetas(categoriaID string) string {
	return "facetas:" + categoriaID
}

// desdeCache devuelve la respuesta cacheada o nil. Los errores de cache solo
// se loguean, nunca rompen la consulta.
func (uc *FacetasUseCase) desdeCache(ctx context.Context, key string) *dto.FiltrosDisponiblesResponse {
	if uc.cache == nil {
		return nil
	}
	raw, err := uc.cache.Get(ctx, key)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var resp dto.FiltrosDisponiblesResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil
	}
	return &resp
}

func (uc *FacetasUseCase) aCache(ctx context.Context, key string, resp *dto.FiltrosDisponiblesResponse) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, raw, ttlCacheFacetas); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear facetas")
	}
}
