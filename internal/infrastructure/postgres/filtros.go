package postgres

import (
	"fmt"
	"strings"

	"github.com/ccltech/tienda-api/internal/domain/repository"
)

// construirWhere traduce el filtro del listado a una cláusula WHERE con
// placeholders posicionales. El estado activo se impone siempre, no viene del
// cliente. Devuelve la cláusula (sin el prefijo WHERE) y sus argumentos.
func construirWhere(f repository.FiltroProductos) (string, []any) {
	clausulas := []string{"state = '1'"}
	var args []any

	agregar := func(formato string, valores ...any) {
		marcas := make([]any, 0, len(valores))
		for _, v := range valores {
			args = append(args, v)
			marcas = append(marcas, fmt.Sprintf("$%d", len(args)))
		}
		clausulas = append(clausulas, fmt.Sprintf(formato, marcas...))
	}

	if f.CategoriaID != "" {
		agregar("categoria_id = %s", f.CategoriaID)
	}
	if f.SubcategoriaID != "" {
		agregar("subcategoria_id = %s", f.SubcategoriaID)
	}
	if f.MarcaID != "" {
		agregar("marca_id = %s", f.MarcaID)
	}
	if f.PrecioMin != nil {
		agregar("precio >= %s", *f.PrecioMin)
	}
	if f.PrecioMax != nil {
		agregar("precio <= %s", *f.PrecioMax)
	}
	if f.Busqueda != "" {
		patron := "%" + f.Busqueda + "%"
		agregar("(nombre ILIKE %[1]s OR descripcion ILIKE %[1]s OR especificaciones->>'modelo' ILIKE %[1]s OR especificaciones->>'tipo' ILIKE %[1]s)", patron)
	}

	// Predicados de atributos: un valor almacenado escalar matchea por igualdad
	// textual y uno array por pertenencia del elemento.
	for _, cond := range f.Atributos {
		switch len(cond.Valores) {
		case 0:
			continue
		case 1:
			agregar("(especificaciones->>%[1]s = %[2]s OR especificaciones->%[1]s @> to_jsonb(%[2]s::text))",
				cond.Campo, cond.Valores[0])
		default:
			agregar("(especificaciones->>%[1]s = ANY(%[2]s) OR especificaciones->%[1]s ?| %[2]s)",
				cond.Campo, cond.Valores)
		}
	}

	return strings.Join(clausulas, " AND "), args
}

// ordenSQL mapea la clave de orden a su ORDER BY. Claves desconocidas caen en
// newest. relevance solo tiene sentido con búsqueda de texto; sin índice
// full-text se resuelve igual que newest.
func ordenSQL(orden string) string {
	switch orden {
	case repository.OrdenPrecioAsc:
		return "precio ASC"
	case repository.OrdenPrecioDesc:
		return "precio DESC"
	case repository.OrdenPopulares:
		return "ventas DESC, created_at DESC"
	case repository.OrdenNombreAZ:
		return "nombre ASC"
	case repository.OrdenNombreZA:
		return "nombre DESC"
	default: // newest, relevance y desconocidos
		return "created_at DESC"
	}
}
