package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/domain/catalogo"
	"github.com/ccltech/tienda-api/internal/domain/entity"
)

// FiltroProductos filtros base del listado. Los campos en cero se ignoran;
// el estado activo lo impone siempre el adaptador, no es configurable aquí.
type FiltroProductos struct {
	CategoriaID    string
	SubcategoriaID string
	MarcaID        string
	PrecioMin      *decimal.Decimal
	PrecioMax      *decimal.Decimal
	Busqueda       string
	Atributos      []catalogo.Condicion
}

// Claves de ordenamiento soportadas por el listado.
const (
	OrdenPrecioAsc  = "price_asc"
	OrdenPrecioDesc = "price_desc"
	OrdenNuevos     = "newest"
	OrdenPopulares  = "popular"
	OrdenNombreAZ   = "az"
	OrdenNombreZA   = "za"
	OrdenRelevancia = "relevance"
)

// ProductoRepository define el puerto de persistencia para Producto, incluidas
// las consultas de listado filtrado y las agregaciones de facetas.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetVarios(ids []string) ([]*entity.Producto, error)
	Update(p *entity.Producto) error

	// Listar y Contar comparten el mismo filtro; el total se calcula con una
	// consulta COUNT aparte, nunca sobre el mismo cursor.
	Listar(ctx context.Context, f FiltroProductos, orden string, limit, offset int) ([]*entity.Producto, error)
	Contar(ctx context.Context, f FiltroProductos) (int, error)

	// ValoresDistintos agrega los valores presentes de un atributo entre los
	// productos activos de la categoría, desplegando arrays elemento a elemento,
	// ordenados ascendentemente.
	ValoresDistintos(ctx context.Context, categoriaID, campo string) ([]string, error)

	// RangoPrecios devuelve min/max de precio entre productos activos de la
	// categoría. ok=false cuando no hay productos activos.
	RangoPrecios(ctx context.Context, categoriaID string) (min, max decimal.Decimal, ok bool, err error)

	// PrimerasLetras devuelve las primeras letras (mayúsculas) observadas para
	// un atributo entre los productos activos de la categoría.
	PrimerasLetras(ctx context.Context, categoriaID, campo string) ([]string, error)
	// ListarPorLetra filtra productos activos cuyo atributo empieza por la letra.
	ListarPorLetra(ctx context.Context, categoriaID, campo, letra string) ([]*entity.Producto, error)

	// ListarElegiblesOferta devuelve productos activos sin oferta vigente, con
	// stock >= stockMin y creados antes de `antesDe` (barrido de ofertas).
	ListarElegiblesOferta(ctx context.Context, stockMin int, antesDe time.Time) ([]*entity.Producto, error)
	// ExpirarOfertas apaga las ofertas cuya fecha fin ya pasó y devuelve cuántas.
	ExpirarOfertas(ctx context.Context, ahora time.Time) (int, error)
}
