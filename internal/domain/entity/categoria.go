package entity

import (
	"encoding/json"
	"time"
)

// Estados de registros con borrado lógico ("1" activo, "0" desactivado).
const (
	EstadoActivo      = "1"
	EstadoDesactivado = "0"
)

// Categoria agrupa productos bajo un código único (ej. "portatiles", "celulares").
// El código determina qué esquema de especificaciones aplica a sus productos:
// primero se busca en el registro estático y, si no existe, en Esquema (definido
// por un administrador como JSON libre).
type Categoria struct {
	ID          string
	Codigo      string // clave tipo slug, única
	Name        string
	Description string
	Img         string
	Esquema     json.RawMessage // esquema dinámico de atributos, puede ser nulo
	State       string          // "1" activo, "0" desactivado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
