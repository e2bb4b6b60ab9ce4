package entity

import "time"

// Subcategoria pertenece a una categoría por el código del padre, no por su ID.
// Es una desnormalización deliberada: permite validar la relación sin join, a
// cambio de que CategoriaPadre deba validarse contra categorias.codigo al escribir.
type Subcategoria struct {
	ID             string
	Codigo         string // único, ej. "portatil_gaming"
	Name           string
	CategoriaPadre string // codigo de la categoría padre
	State          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
