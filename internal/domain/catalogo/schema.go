package catalogo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Tipo primitivo de un atributo de especificación.
type Tipo string

const (
	TipoString  Tipo = "string"
	TipoNumber  Tipo = "number"
	TipoBoolean Tipo = "boolean"
	TipoArray   Tipo = "array"
)

// Campo definición declarativa de un atributo: tipo, obligatoriedad y restricciones.
type Campo struct {
	Nombre    string
	Tipo      Tipo
	Requerido bool
	Opciones  []string // conjunto cerrado de valores permitidos (vacío = abierto)
	Patron    string   // expresión regular en forma textual
	Min       *float64
	Max       *float64
	Elementos *Campo // para TipoArray: definición del elemento
}

// Schema conjunto ordenado de campos que los productos de una categoría
// deberían llevar en su mapa de especificaciones. Es consultivo: describe
// campos y alimenta facetas, no rechaza claves desconocidas al escribir.
type Schema struct {
	Campos []Campo
}

// Campo busca una definición por nombre. Devuelve nil si no existe.
func (s *Schema) Campo(nombre string) *Campo {
	for i := range s.Campos {
		if s.Campos[i].Nombre == nombre {
			return &s.Campos[i]
		}
	}
	return nil
}

// Claves devuelve los nombres de campo en orden de declaración.
func (s *Schema) Claves() []string {
	claves := make([]string, 0, len(s.Campos))
	for _, c := range s.Campos {
		claves = append(claves, c.Nombre)
	}
	return claves
}

// Tipos de widget que el frontend sabe renderizar.
const (
	UITexto       = "text"
	UINumero      = "number"
	UIBooleano    = "boolean"
	UISelect      = "select"
	UIMultiselect = "multiselect"
)

// Opcion par label/value para selects del frontend.
type Opcion struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Reglas restricciones transportables de un campo.
type Reglas struct {
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	Patron string   `json:"pattern,omitempty"`
}

// Descriptor campo listo para pintar en un formulario o panel de filtros.
type Descriptor struct {
	Key       string   `json:"key"`
	Label     string   `json:"label"`
	Requerido bool     `json:"required"`
	Tipo      Tipo     `json:"type"`
	UIType    string   `json:"uiType"`
	Opciones  []Opcion `json:"options,omitempty"`
	Reglas    *Reglas  `json:"rules,omitempty"`
}

// DescribirCampos produce un descriptor por campo declarado. Función pura:
// no consulta almacenamiento ni estado global.
//
// Derivación del widget: boolean->boolean, number->number, array->multiselect
// (con las opciones del elemento si este declara conjunto cerrado),
// string con conjunto cerrado->select, resto->text.
func DescribirCampos(s *Schema) []Descriptor {
	if s == nil {
		return []Descriptor{}
	}
	out := make([]Descriptor, 0, len(s.Campos))
	for _, c := range s.Campos {
		d := Descriptor{
			Key:       c.Nombre,
			Label:     humanizar(c.Nombre),
			Requerido: c.Requerido,
			Tipo:      c.Tipo,
		}
		switch c.Tipo {
		case TipoBoolean:
			d.UIType = UIBooleano
		case TipoNumber:
			d.UIType = UINumero
		case TipoArray:
			d.UIType = UIMultiselect
			if c.Elementos != nil && len(c.Elementos.Opciones) > 0 {
				d.Opciones = aOpciones(c.Elementos.Opciones)
			}
		default:
			if len(c.Opciones) > 0 {
				d.UIType = UISelect
				d.Opciones = aOpciones(c.Opciones)
			} else {
				d.UIType = UITexto
			}
		}
		if c.Min != nil || c.Max != nil || c.Patron != "" {
			d.Reglas = &Reglas{Min: c.Min, Max: c.Max, Patron: c.Patron}
		}
		out = append(out, d)
	}
	return out
}

func aOpciones(valores []string) []Opcion {
	ops := make([]Opcion, 0, len(valores))
	for _, v := range valores {
		ops = append(ops, Opcion{Label: v, Value: v})
	}
	return ops
}

// humanizar convierte una clave camelCase en palabras legibles:
// "sistemaOperativo" -> "Sistema Operativo", "ram" -> "Ram".
func humanizar(clave string) string {
	if clave == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range clave {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	palabras := b.String()
	runas := []rune(palabras)
	runas[0] = unicode.ToUpper(runas[0])
	return string(runas)
}

// campoJSON forma serializada de un campo en el esquema dinámico de una
// categoría (columna esquema de categorias, autorado por administradores).
type campoJSON struct {
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Pattern  string   `json:"pattern,omitempty"`
}

// SchemaDesdeJSON interpreta un esquema dinámico almacenado como
// {"atributo": {"type":"string","required":true,...}, ...}.
// Las claves se ordenan alfabéticamente porque el JSON no conserva orden.
func SchemaDesdeJSON(raw json.RawMessage) (*Schema, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var m map[string]campoJSON
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("esquema dinámico inválido: %w", err)
	}
	nombres := make([]string, 0, len(m))
	for nombre := range m {
		nombres = append(nombres, nombre)
	}
	sort.Strings(nombres)

	s := &Schema{Campos: make([]Campo, 0, len(m))}
	for _, nombre := range nombres {
		cj := m[nombre]
		tipo := Tipo(cj.Type)
		switch tipo {
		case TipoString, TipoNumber, TipoBoolean, TipoArray:
		default:
			return nil, fmt.Errorf("esquema dinámico: tipo %q no soportado en %q", cj.Type, nombre)
		}
		campo := Campo{
			Nombre:    nombre,
			Tipo:      tipo,
			Requerido: cj.Required,
			Opciones:  cj.Options,
			Patron:    cj.Pattern,
			Min:       cj.Min,
			Max:       cj.Max,
		}
		if tipo == TipoArray && len(cj.Options) > 0 {
			// En el formato dinámico las opciones de un array describen sus elementos.
			campo.Opciones = nil
			campo.Elementos = &Campo{Tipo: TipoString, Opciones: cj.Options}
		}
		s.Campos = append(s.Campos, campo)
	}
	return s, nil
}
