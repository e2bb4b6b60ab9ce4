package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/domain/catalogo"
)

// CreateProductoRequest entrada para crear un producto. Especificaciones acepta
// un objeto JSON o una cadena con JSON embebido (formularios multipart).
type CreateProductoRequest struct {
	Nombre           string          `json:"nombre" validate:"required"`
	Descripcion      string          `json:"descripcion" validate:"required"`
	Precio           decimal.Decimal `json:"precio"`
	MarcaID          string          `json:"marca"`
	Imagenes         []string        `json:"imagenes"`
	CategoriaID      string          `json:"category" validate:"required"`
	SubcategoriaID   string          `json:"subcategory" validate:"required"`
	Especificaciones json.RawMessage `json:"especificaciones"`
	Stock            int             `json:"stock"`
}

// UpdateProductoRequest entrada para actualizar un producto (merge parcial).
type UpdateProductoRequest struct {
	Nombre             *string          `json:"nombre"`
	Descripcion        *string          `json:"descripcion"`
	Precio             *decimal.Decimal `json:"precio"`
	MarcaID            *string          `json:"marca"`
	Stock              *int             `json:"stock"`
	Especificaciones   json.RawMessage  `json:"especificaciones"`
	ImagenesNuevas     []string         `json:"imagenes"`
	ImagenesEliminadas []string         `json:"imagenesEliminadas"`
	EnOferta           *bool            `json:"enOferta"`
	Descuento          *decimal.Decimal `json:"descuento"`
}

// ProductoResponse salida detallada de un producto.
type ProductoResponse struct {
	ID                   string          `json:"id"`
	Nombre               string          `json:"nombre"`
	Descripcion          string          `json:"descripcion"`
	Precio               decimal.Decimal `json:"precio"`
	MarcaID              string          `json:"marca,omitempty"`
	Imagenes             []string        `json:"imagenes"`
	ImagenPrincipal      string          `json:"imagenPrincipal,omitempty"`
	CategoriaID          string          `json:"category"`
	SubcategoriaID       string          `json:"subcategory"`
	Especificaciones     json.RawMessage `json:"especificaciones,omitempty"`
	Stock                int             `json:"stock"`
	Ventas               int             `json:"ventas"`
	State                string          `json:"state"`
	EnOferta             bool            `json:"enOferta"`
	Descuento            decimal.Decimal `json:"descuento"`
	PrecioOferta         decimal.Decimal `json:"precioOferta"`
	OfertaInicio         *time.Time      `json:"ofertaInicio,omitempty"`
	OfertaFin            *time.Time      `json:"ofertaFin,omitempty"`
	PromedioCalificacion decimal.Decimal `json:"promedioCalificacion"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// ProductoSimple proyección mínima para format=simple: sin paginación.
type ProductoSimple struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// ProductoListResponse listado detallado con metadatos de página.
type ProductoListResponse struct {
	Productos  []ProductoResponse `json:"productos"`
	Pagination Paginacion         `json:"pagination"`
}

// ListarProductosQuery parámetros reconocidos del listado; el resto de claves
// del query string se interpreta como filtros de atributos.
type ListarProductosQuery struct {
	Category    string
	Subcategory string
	Brand       string
	MinPrice    string
	MaxPrice    string
	Search      string
	Sort        string
	Page        int
	Limit       int
	Format      string // "detailed" (por defecto) o "simple"
	Atributos   []catalogo.Condicion
}

// FiltrosDisponiblesResponse facetas por atributo declarado en el esquema.
type FiltrosDisponiblesResponse struct {
	Categoria string                       `json:"categoria"`
	Filters   map[string][]catalogo.Opcion `json:"filters"`
}

// RangoPreciosResponse límites del slider de precio, redondeados a 10.000.
type RangoPreciosResponse struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// FiltrosAlfabeticosResponse primeras letras observadas por campo filtrable.
type FiltrosAlfabeticosResponse struct {
	Categoria          string              `json:"categoria"`
	FiltrosAlfabeticos map[string][]string `json:"filtrosAlfabeticos"`
}

// ProductosPorLetraResponse productos cuyo atributo empieza por la letra pedida.
type ProductosPorLetraResponse struct {
	Categoria string             `json:"categoria"`
	Campo     string             `json:"campo"`
	Letra     string             `json:"letra"`
	Cantidad  int                `json:"cantidad"`
	Productos []ProductoResponse `json:"productos"`
}
