package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

// Valores por defecto de paginación del listado.
const (
	PaginaPorDefecto = 1
	LimitePorDefecto = 10
	LimiteMaximo     = 100
)

// ProductoUseCase casos de uso CRUD y el servicio de consulta de productos:
// filtros base + filtros de atributos, orden, paginación y proyección simple.
type ProductoUseCase struct {
	productoRepo     repository.ProductoRepository
	categoriaRepo    repository.CategoriaRepository
	subcategoriaRepo repository.SubcategoriaRepository
	marcaRepo        repository.MarcaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(
	productoRepo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	subcategoriaRepo repository.SubcategoriaRepository,
	marcaRepo repository.MarcaRepository,
) *ProductoUseCase {
	return &ProductoUseCase{
		productoRepo:     productoRepo,
		categoriaRepo:    categoriaRepo,
		subcategoriaRepo: subcategoriaRepo,
		marcaRepo:        marcaRepo,
	}
}

// Create crea un producto. Valida que la categoría exista y que la subcategoría
// pertenezca a ella (categoria_padre == codigo). Las claves de especificaciones
// que no declare el esquema de la categoría se aceptan en silencio.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Precio.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.categoriaRepo.GetByID(in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	sub, err := uc.subcategoriaRepo.GetByID(in.SubcategoriaID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	if sub.CategoriaPadre != categoria.Codigo {
		return nil, domain.ErrInvalidInput
	}
	if in.MarcaID != "" {
		marca, err := uc.marcaRepo.GetByID(in.MarcaID)
		if err != nil {
			return nil, err
		}
		if marca == nil {
			return nil, domain.ErrNotFound
		}
	}
	especificaciones, err := normalizarEspecificaciones(in.Especificaciones)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:               uuid.New().String(),
		Nombre:           in.Nombre,
		Descripcion:      in.Descripcion,
		Precio:           in.Precio,
		MarcaID:          in.MarcaID,
		Imagenes:         in.Imagenes,
		CategoriaID:      in.CategoriaID,
		SubcategoriaID:   in.SubcategoriaID,
		Especificaciones: especificaciones,
		Stock:            in.Stock,
		State:            entity.EstadoActivo,
		Descuento:        decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	producto.RecalcularPrecioOferta()
	if err := uc.productoRepo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// Update actualiza un producto con semántica de merge: solo los campos
// presentes cambian. El precio de oferta se recalcula en cada guardado.
func (uc *ProductoUseCase) Update(ctx context.Context, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		if in.Precio.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.MarcaID != nil {
		marca, err := uc.marcaRepo.GetByID(*in.MarcaID)
		if err != nil {
			return nil, err
		}
		if marca == nil {
			return nil, domain.ErrNotFound
		}
		producto.MarcaID = *in.MarcaID
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.Stock = *in.Stock
	}
	if len(in.Especificaciones) > 0 {
		especificaciones, err := normalizarEspecificaciones(in.Especificaciones)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		producto.Especificaciones = especificaciones
	}
	if len(in.ImagenesEliminadas) > 0 {
		producto.Imagenes = quitarImagenes(producto.Imagenes, in.ImagenesEliminadas)
	}
	if len(in.ImagenesNuevas) > 0 {
		producto.Imagenes = append(producto.Imagenes, in.ImagenesNuevas...)
	}
	if in.Descuento != nil {
		cien := decimal.NewFromInt(100)
		if in.Descuento.LessThan(decimal.Zero) || in.Descuento.GreaterThan(cien) {
			return nil, domain.ErrInvalidInput
		}
		producto.Descuento = *in.Descuento
	}
	if in.EnOferta != nil {
		producto.EnOferta = *in.EnOferta
		now := time.Now()
		if *in.EnOferta {
			producto.OfertaInicio = &now
		} else {
			producto.OfertaInicio = nil
			producto.OfertaFin = nil
		}
	}
	producto.RecalcularPrecioOferta()
	producto.UpdatedAt = time.Now()
	if err := uc.productoRepo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// ToggleState alterna el estado activo/desactivado (soft delete).
func (uc *ProductoUseCase) ToggleState(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if producto.State == entity.EstadoActivo {
		producto.State = entity.EstadoDesactivado
	} else {
		producto.State = entity.EstadoActivo
	}
	producto.UpdatedAt = time.Now()
	if err := uc.productoRepo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Listar ejecuta el listado detallado: siempre state activo, filtros base y de
// atributos en AND, orden según la enumeración fija y paginación con COUNT
// separado. totalPages = ceil(total/limit).
func (uc *ProductoUseCase) Listar(ctx context.Context, q dto.ListarProductosQuery) (*dto.ProductoListResponse, error) {
	filtro, err := uc.filtroDesdeQuery(q)
	if err != nil {
		return nil, err
	}
	page, limit := normalizarPagina(q.Page, q.Limit)
	offset := (page - 1) * limit

	productos, err := uc.productoRepo.Listar(ctx, *filtro, ordenDesdeSort(q.Sort), limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.productoRepo.Contar(ctx, *filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Productos: items,
		Pagination: dto.Paginacion{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

// ListarSimple ejecuta el listado con proyección mínima (id y nombre), sin
// metadatos de paginación. Es un contrato de respuesta distinto, no un filtro
// sobre la respuesta detallada.
func (uc *ProductoUseCase) ListarSimple(ctx context.Context, q dto.ListarProductosQuery) ([]dto.ProductoSimple, error) {
	filtro, err := uc.filtroDesdeQuery(q)
	if err != nil {
		return nil, err
	}
	page, limit := normalizarPagina(q.Page, q.Limit)
	offset := (page - 1) * limit

	productos, err := uc.productoRepo.Listar(ctx, *filtro, ordenDesdeSort(q.Sort), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoSimple, 0, len(productos))
	for _, p := range productos {
		items = append(items, dto.ProductoSimple{ID: p.ID, Nombre: p.Nombre})
	}
	return items, nil
}

// FiltrosAlfabeticos devuelve las primeras letras observadas en los campos
// marca y modelo de las especificaciones de los productos activos.
func (uc *ProductoUseCase) FiltrosAlfabeticos(ctx context.Context, categoriaID string) (*dto.FiltrosAlfabeticosResponse, error) {
	categoria, err := uc.categoriaRepo.GetByID(categoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	letras := make(map[string][]string)
	for _, campo := range []string{"marca", "modelo"} {
		vals, err := uc.productoRepo.PrimerasLetras(ctx, categoriaID, campo)
		if err != nil {
			return nil, err
		}
		if vals == nil {
			vals = []string{}
		}
		letras[campo] = vals
	}
	return &dto.FiltrosAlfabeticosResponse{
		Categoria:          categoria.Name,
		FiltrosAlfabeticos: letras,
	}, nil
}

// ListarPorLetra lista los productos activos de la categoría cuyo atributo
// empieza por la letra indicada.
func (uc *ProductoUseCase) ListarPorLetra(ctx context.Context, categoriaID, campo, letra string) (*dto.ProductosPorLetraResponse, error) {
	if campo == "" || letra == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.categoriaRepo.GetByID(categoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	productos, err := uc.productoRepo.ListarPorLetra(ctx, categoriaID, campo, strings.ToUpper(letra))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductosPorLetraResponse{
		Categoria: categoria.Name,
		Campo:     campo,
		Letra:     strings.ToUpper(letra),
		Cantidad:  len(items),
		Productos: items,
	}, nil
}

// filtroDesdeQuery valida los identificadores del query y arma el filtro base.
// Un identificador malformado corta antes de ejecutar consulta alguna.
func (uc *ProductoUseCase) filtroDesdeQuery(q dto.ListarProductosQuery) (*repository.FiltroProductos, error) {
	for _, id := range []string{q.Category, q.Subcategory, q.Brand} {
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	filtro := &repository.FiltroProductos{
		CategoriaID:    q.Category,
		SubcategoriaID: q.Subcategory,
		MarcaID:        q.Brand,
		Busqueda:       strings.TrimSpace(q.Search),
		Atributos:      q.Atributos,
	}
	if q.MinPrice != "" {
		min, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filtro.PrecioMin = &min
	}
	if q.MaxPrice != "" {
		max, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filtro.PrecioMax = &max
	}
	return filtro, nil
}

// ordenDesdeSort mapea la clave de orden del cliente a la enumeración del
// repositorio. Claves desconocidas o vacías caen en newest.
func ordenDesdeSort(sort string) string {
	switch sort {
	case repository.OrdenPrecioAsc, repository.OrdenPrecioDesc, repository.OrdenNuevos,
		repository.OrdenPopulares, repository.OrdenNombreAZ, repository.OrdenNombreZA,
		repository.OrdenRelevancia:
		return sort
	default:
		return repository.OrdenNuevos
	}
}

func normalizarPagina(page, limit int) (int, int) {
	if page < 1 {
		page = PaginaPorDefecto
	}
	if limit < 1 {
		limit = LimitePorDefecto
	}
	if limit > LimiteMaximo {
		limit = LimiteMaximo
	}
	return page, limit
}

// normalizarEspecificaciones acepta el atributo como objeto JSON o como cadena
// con JSON embebido (formularios multipart) y devuelve siempre el objeto.
func normalizarEspecificaciones(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = json.RawMessage(s)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	return raw, nil
}

func quitarImagenes(actuales, eliminadas []string) []string {
	borrar := make(map[string]bool, len(eliminadas))
	for _, img := range eliminadas {
		borrar[img] = true
	}
	restantes := make([]string, 0, len(actuales))
	for _, img := range actuales {
		if !borrar[img] {
			restantes = append(restantes, img)
		}
	}
	return restantes
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:                   p.ID,
		Nombre:               p.Nombre,
		Descripcion:          p.Descripcion,
		Precio:               p.Precio,
		MarcaID:              p.MarcaID,
		Imagenes:             p.Imagenes,
		ImagenPrincipal:      p.ImagenPrincipal(),
		CategoriaID:          p.CategoriaID,
		SubcategoriaID:       p.SubcategoriaID,
		Especificaciones:     p.Especificaciones,
		Stock:                p.Stock,
		Ventas:               p.Ventas,
		State:                p.State,
		EnOferta:             p.EnOferta,
		Descuento:            p.Descuento,
		PrecioOferta:         p.PrecioOferta,
		OfertaInicio:         p.OfertaInicio,
		OfertaFin:            p.OfertaFin,
		PromedioCalificacion: p.PromedioCalificacion,
		CreatedAt:            p.CreatedAt,
	}
}
