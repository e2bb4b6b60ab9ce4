package catalogo

import "sort"

// ParamsConocidos claves de query string que NO son filtros de atributos:
// pertenecen a la paginación, el ordenamiento o los filtros base del listado.
var ParamsConocidos = []string{
	"category", "subcategory", "brand",
	"minPrice", "maxPrice", "search",
	"sort", "page", "limit", "format",
}

// Condicion predicado sobre el mapa de especificaciones de un producto.
// Un valor exige igualdad exacta; varios, pertenencia al conjunto.
type Condicion struct {
	Campo   string
	Valores []string
}

// ConstruirFiltro traduce los query params crudos a condiciones sobre
// especificaciones.<campo>. Toda clave fuera de `conocidos` se trata como
// filtro de atributo; los valores vacíos se descartan sin generar predicado.
//
// Deliberadamente NO consulta el registro de esquemas: se filtra por
// cualquier clave que el cliente envíe, esté o no declarada en el esquema
// de la categoría. Las condiciones salen ordenadas por campo para que la
// consulta generada sea determinista.
func ConstruirFiltro(params map[string][]string, conocidos []string) []Condicion {
	omitir := make(map[string]struct{}, len(conocidos))
	for _, k := range conocidos {
		omitir[k] = struct{}{}
	}

	var condiciones []Condicion
	for clave, valores := range params {
		if _, ok := omitir[clave]; ok {
			continue
		}
		limpios := make([]string, 0, len(valores))
		for _, v := range valores {
			if v != "" {
				limpios = append(limpios, v)
			}
		}
		if len(limpios) == 0 {
			continue
		}
		condiciones = append(condiciones, Condicion{Campo: clave, Valores: limpios})
	}

	sort.Slice(condiciones, func(i, j int) bool {
		return condiciones[i].Campo < condiciones[j].Campo
	})
	return condiciones
}
