package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/application/usecase"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
	orden     []string // orden de inserción, para listados deterministas

	// agregaciones precargadas para los tests de facetas
	distintos map[string][]string
	rangoMin  decimal.Decimal
	rangoMax  decimal.Decimal
	rangoOK   bool
}

func newFakeProductoRepo(ps ...*entity.Producto) *fakeProductoRepo {
	repo := &fakeProductoRepo{
		productos: make(map[string]*entity.Producto),
		distintos: make(map[string][]string),
	}
	for _, p := range ps {
		repo.productos[p.ID] = p
		repo.orden = append(repo.orden, p.ID)
	}
	return repo
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error {
	f.productos[p.ID] = p
	f.orden = append(f.orden, p.ID)
	return nil
}

func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return f.productos[id], nil
}

func (f *fakeProductoRepo) GetVarios(ids []string) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, id := range ids {
		if p, ok := f.productos[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductoRepo) Update(p *entity.Producto) error {
	f.productos[p.ID] = p
	return nil
}

// activos aplica el filtro de estado que el adaptador real impone siempre.
func (f *fakeProductoRepo) activos() []*entity.Producto {
	var out []*entity.Producto
	for _, id := range f.orden {
		if p := f.productos[id]; p != nil && p.State == entity.EstadoActivo {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakeProductoRepo) Listar(_ context.Context, _ repository.FiltroProductos, _ string, limit, offset int) ([]*entity.Producto, error) {
	activos := f.activos()
	if offset >= len(activos) {
		return nil, nil
	}
	fin := offset + limit
	if fin > len(activos) {
		fin = len(activos)
	}
	return activos[offset:fin], nil
}

func (f *fakeProductoRepo) Contar(context.Context, repository.FiltroProductos) (int, error) {
	return len(f.activos()), nil
}

func (f *fakeProductoRepo) ValoresDistintos(_ context.Context, _, campo string) ([]string, error) {
	return f.distintos[campo], nil
}

func (f *fakeProductoRepo) RangoPrecios(context.Context, string) (decimal.Decimal, decimal.Decimal, bool, error) {
	return f.rangoMin, f.rangoMax, f.rangoOK, nil
}

func (f *fakeProductoRepo) PrimerasLetras(context.Context, string, string) ([]string, error) {
	return nil, nil
}

func (f *fakeProductoRepo) ListarPorLetra(context.Context, string, string, string) ([]*entity.Producto, error) {
	return nil, nil
}

func (f *fakeProductoRepo) ListarElegiblesOferta(context.Context, int, time.Time) ([]*entity.Producto, error) {
	return nil, nil
}

func (f *fakeProductoRepo) ExpirarOfertas(context.Context, time.Time) (int, error) {
	return 0, nil
}

type fakeCategoriaRepo struct {
	categorias map[string]*entity.Categoria
}

func newFakeCategoriaRepo(cs ...*entity.Categoria) *fakeCategoriaRepo {
	repo := &fakeCategoriaRepo{categorias: make(map[string]*entity.Categoria)}
	for _, c := range cs {
		repo.categorias[c.ID] = c
	}
	return repo
}

func (f *fakeCategoriaRepo) Create(c *entity.Categoria) error {
	f.categorias[c.ID] = c
	return nil
}

func (f *fakeCategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	return f.categorias[id], nil
}

func (f *fakeCategoriaRepo) GetByCodigo(codigo string) (*entity.Categoria, error) {
	for _, c := range f.categorias {
		if c.Codigo == codigo {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoriaRepo) List() ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range f.categorias {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoriaRepo) Update(c *entity.Categoria) error {
	f.categorias[c.ID] = c
	return nil
}

type fakeSubcategoriaRepo struct {
	subs map[string]*entity.Subcategoria
}

func newFakeSubcategoriaRepo(ss ...*entity.Subcategoria) *fakeSubcategoriaRepo {
	repo := &fakeSubcategoriaRepo{subs: make(map[string]*entity.Subcategoria)}
	for _, s := range ss {
		repo.subs[s.ID] = s
	}
	return repo
}

func (f *fakeSubcategoriaRepo) Create(s *entity.Subcategoria) error {
	f.subs[s.ID] = s
	return nil
}

func (f *fakeSubcategoriaRepo) GetByID(id string) (*entity.Subcategoria, error) {
	return f.subs[id], nil
}

func (f *fakeSubcategoriaRepo) ListActivas() ([]*entity.Subcategoria, error) {
	var out []*entity.Subcategoria
	for _, s := range f.subs {
		if s.State == entity.EstadoActivo {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubcategoriaRepo) ListByCategoriaPadre(codigo string) ([]*entity.Subcategoria, error) {
	var out []*entity.Subcategoria
	for _, s := range f.subs {
		if s.CategoriaPadre == codigo && s.State == entity.EstadoActivo {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubcategoriaRepo) Update(s *entity.Subcategoria) error {
	f.subs[s.ID] = s
	return nil
}

func (f *fakeSubcategoriaRepo) Reemplazar(subs []*entity.Subcategoria) error {
	f.subs = make(map[string]*entity.Subcategoria)
	for _, s := range subs {
		f.subs[s.ID] = s
	}
	return nil
}

type fakeMarcaRepo struct {
	marcas map[string]*entity.Marca
}

func newFakeMarcaRepo(ms ...*entity.Marca) *fakeMarcaRepo {
	repo := &fakeMarcaRepo{marcas: make(map[string]*entity.Marca)}
	for _, m := range ms {
		repo.marcas[m.ID] = m
	}
	return repo
}

func (f *fakeMarcaRepo) Create(m *entity.Marca) error { f.marcas[m.ID] = m; return nil }
func (f *fakeMarcaRepo) Update(m *entity.Marca) error { f.marcas[m.ID] = m; return nil }

func (f *fakeMarcaRepo) GetByID(id string) (*entity.Marca, error) { return f.marcas[id], nil }

func (f *fakeMarcaRepo) GetBySlug(slug string) (*entity.Marca, error) {
	for _, m := range f.marcas {
		if m.Slug == slug {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMarcaRepo) GetByNombre(nombre string) (*entity.Marca, error) {
	for _, m := range f.marcas {
		if m.Nombre == nombre {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMarcaRepo) ListActivas() ([]*entity.Marca, error) {
	var out []*entity.Marca
	for _, m := range f.marcas {
		if m.State == entity.EstadoActivo {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMarcaRepo) ListTodas() ([]*entity.Marca, error) {
	var out []*entity.Marca
	for _, m := range f.marcas {
		out = append(out, m)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	catID = "11111111-1111-1111-1111-111111111111"
	subID = "22222222-2222-2222-2222-222222222222"
)

func categoriaPortatiles() *entity.Categoria {
	return &entity.Categoria{
		ID:     catID,
		Codigo: "portatiles",
		Name:   "Portátiles",
		State:  entity.EstadoActivo,
	}
}

func subGaming() *entity.Subcategoria {
	return &entity.Subcategoria{
		ID:             subID,
		Codigo:         "portatil_gaming",
		Name:           "Gaming",
		CategoriaPadre: "portatiles",
		State:          entity.EstadoActivo,
	}
}

func productoActivo(id string, precio int64) *entity.Producto {
	p := &entity.Producto{
		ID:          id,
		Nombre:      "Producto " + id,
		Precio:      decimal.NewFromInt(precio),
		CategoriaID: catID,
		State:       entity.EstadoActivo,
		CreatedAt:   time.Now(),
	}
	p.RecalcularPrecioOferta()
	return p
}

func nuevoProductoUC(productoRepo *fakeProductoRepo) *usecase.ProductoUseCase {
	return usecase.NewProductoUseCase(
		productoRepo,
		newFakeCategoriaRepo(categoriaPortatiles()),
		newFakeSubcategoriaRepo(subGaming()),
		newFakeMarcaRepo(),
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del servicio de consulta
// ──────────────────────────────────────────────────────────────────────────────

// Invariante de paginación: totalPages = ceil(total/limit) y el número de ítems
// devueltos es min(limit, total-(page-1)*limit), cero si es negativo.
func TestListar_InvariantesDePaginacion(t *testing.T) {
	var productos []*entity.Producto
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		productos = append(productos, productoActivo(id, 100_000))
	}
	uc := nuevoProductoUC(newFakeProductoRepo(productos...))

	casos := []struct {
		page, limit    int
		esperaItems    int
		esperaTotalPag int
	}{
		{1, 3, 3, 3},
		{2, 3, 3, 3},
		{3, 3, 1, 3}, // última página parcial
		{4, 3, 0, 3}, // más allá del final
		{1, 10, 7, 1},
	}
	for _, c := range casos {
		resp, err := uc.Listar(context.Background(), dto.ListarProductosQuery{Page: c.page, Limit: c.limit})
		require.NoError(t, err)
		assert.Len(t, resp.Productos, c.esperaItems, "page=%d limit=%d", c.page, c.limit)
		assert.Equal(t, 7, resp.Pagination.Total)
		assert.Equal(t, c.esperaTotalPag, resp.Pagination.TotalPages, "page=%d limit=%d", c.page, c.limit)
	}
}

// Página y límite fuera de rango caen en los valores por defecto.
func TestListar_NormalizaPaginaYLimite(t *testing.T) {
	uc := nuevoProductoUC(newFakeProductoRepo(productoActivo("a", 100_000)))

	resp, err := uc.Listar(context.Background(), dto.ListarProductosQuery{Page: -2, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, usecase.PaginaPorDefecto, resp.Pagination.Page)
	assert.Equal(t, usecase.LimitePorDefecto, resp.Pagination.Limit)
}

// Los productos desactivados nunca aparecen en el listado.
func TestListar_ExcluyeDesactivados(t *testing.T) {
	inactivo := productoActivo("x", 100_000)
	inactivo.State = entity.EstadoDesactivado
	uc := nuevoProductoUC(newFakeProductoRepo(productoActivo("a", 100_000), inactivo))

	resp, err := uc.Listar(context.Background(), dto.ListarProductosQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Total)
	require.Len(t, resp.Productos, 1)
	assert.Equal(t, "a", resp.Productos[0].ID)
}

// format=simple proyecta solo id y nombre, sin metadatos de paginación.
func TestListarSimple_SoloIDYNombre(t *testing.T) {
	uc := nuevoProductoUC(newFakeProductoRepo(productoActivo("a", 100_000)))

	items, err := uc.ListarSimple(context.Background(), dto.ListarProductosQuery{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "Producto a", items[0].Nombre)
}

// Un identificador malformado corta antes de consultar nada.
func TestListar_IDMalformadoFallaRapido(t *testing.T) {
	uc := nuevoProductoUC(newFakeProductoRepo())

	_, err := uc.Listar(context.Background(), dto.ListarProductosQuery{Category: "no-es-uuid"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un precio mínimo ilegible también es error de validación.
func TestListar_PrecioIlegibleFalla(t *testing.T) {
	uc := nuevoProductoUC(newFakeProductoRepo())

	_, err := uc.Listar(context.Background(), dto.ListarProductosQuery{MinPrice: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de CRUD y oferta
// ──────────────────────────────────────────────────────────────────────────────

// La subcategoría debe pertenecer a la categoría por código del padre.
func TestCreate_SubcategoriaDeOtraCategoriaFalla(t *testing.T) {
	otraSub := subGaming()
	otraSub.CategoriaPadre = "celulares"
	uc := usecase.NewProductoUseCase(
		newFakeProductoRepo(),
		newFakeCategoriaRepo(categoriaPortatiles()),
		newFakeSubcategoriaRepo(otraSub),
		newFakeMarcaRepo(),
	)

	_, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		Nombre:         "Laptop",
		Descripcion:    "Una laptop",
		Precio:         decimal.NewFromInt(100_000),
		CategoriaID:    catID,
		SubcategoriaID: subID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Especificaciones puede llegar como objeto o como cadena con JSON embebido;
// las claves desconocidas se aceptan en silencio.
func TestCreate_EspecificacionesComoCadena(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := nuevoProductoUC(repo)

	resp, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		Nombre:           "Laptop",
		Descripcion:      "Una laptop",
		Precio:           decimal.NewFromInt(100_000),
		CategoriaID:      catID,
		SubcategoriaID:   subID,
		Especificaciones: []byte(`"{\"ram\":\"16GB\",\"campoInventado\":\"x\"}"`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ram":"16GB","campoInventado":"x"}`, string(resp.Especificaciones))
}

// Ejemplo del cálculo de oferta: precio 100000 con 15% queda en 85000; al
// apagar la oferta el precio de oferta vuelve al base aunque el descuento siga
// almacenado.
func TestUpdate_PrecioDeOferta(t *testing.T) {
	repo := newFakeProductoRepo(productoActivo("a", 100_000))
	uc := nuevoProductoUC(repo)

	enOferta := true
	descuento := decimal.NewFromInt(15)
	resp, err := uc.Update(context.Background(), "a", dto.UpdateProductoRequest{
		EnOferta:  &enOferta,
		Descuento: &descuento,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(85_000).Equal(resp.PrecioOferta),
		"esperado 85000, fue %s", resp.PrecioOferta)

	sinOferta := false
	resp, err = uc.Update(context.Background(), "a", dto.UpdateProductoRequest{EnOferta: &sinOferta})
	require.NoError(t, err)
	assert.True(t, resp.Precio.Equal(resp.PrecioOferta))
	assert.True(t, decimal.NewFromInt(15).Equal(resp.Descuento), "el descuento almacenado no se borra")
}

// Un descuento fuera de 0..100 es inválido.
func TestUpdate_DescuentoFueraDeRango(t *testing.T) {
	uc := nuevoProductoUC(newFakeProductoRepo(productoActivo("a", 100_000)))

	descuento := decimal.NewFromInt(120)
	_, err := uc.Update(context.Background(), "a", dto.UpdateProductoRequest{Descuento: &descuento})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ToggleState alterna entre activo y desactivado.
func TestToggleState_Alterna(t *testing.T) {
	uc := nuevoProductoUC(newFakeProductoRepo(productoActivo("a", 100_000)))

	resp, err := uc.ToggleState("a")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoDesactivado, resp.State)

	resp, err = uc.ToggleState("a")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoActivo, resp.State)
}
