package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Producto del catálogo. Especificaciones es un mapa libre de atributos cuyas
// claves se esperan (pero no se exigen) en el esquema de la categoría: el
// esquema se usa para describir campos y construir filtros, no para rechazar
// claves desconocidas al escribir.
type Producto struct {
	ID               string
	Nombre           string
	Descripcion      string
	Precio           decimal.Decimal
	MarcaID          string
	Imagenes         []string
	CategoriaID      string
	SubcategoriaID   string
	Especificaciones json.RawMessage
	Stock            int
	Ventas           int // contador de unidades vendidas, para orden "popular"
	State            string

	// Campos de oferta. PrecioOferta es derivado y se recalcula en cada guardado.
	EnOferta     bool
	Descuento    decimal.Decimal // porcentaje 0..100
	PrecioOferta decimal.Decimal
	OfertaInicio *time.Time
	OfertaFin    *time.Time

	PromedioCalificacion decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// RecalcularPrecioOferta aplica precio*(1-descuento/100) cuando EnOferta;
// si no hay oferta, el precio de oferta es igual al precio base sin importar
// el descuento almacenado.
func (p *Producto) RecalcularPrecioOferta() {
	if p.EnOferta {
		cien := decimal.NewFromInt(100)
		p.PrecioOferta = p.Precio.Mul(cien.Sub(p.Descuento)).Div(cien)
		return
	}
	p.PrecioOferta = p.Precio
}

// ImagenPrincipal devuelve la primera imagen o cadena vacía.
func (p *Producto) ImagenPrincipal() string {
	if len(p.Imagenes) > 0 {
		return p.Imagenes[0]
	}
	return ""
}
