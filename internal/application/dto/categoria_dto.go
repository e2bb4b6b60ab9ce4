package dto

import (
	"encoding/json"
	"time"

	"github.com/ccltech/tienda-api/internal/domain/catalogo"
)

// CreateCategoriaRequest entrada para crear una categoría.
type CreateCategoriaRequest struct {
	Codigo      string          `json:"codigo" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Img         string          `json:"img"`
	Esquema     json.RawMessage `json:"esquema"`
}

// UpdateCategoriaRequest entrada para actualizar name/description/img (el código es inmutable).
type UpdateCategoriaRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Img         *string         `json:"img"`
	Esquema     json.RawMessage `json:"esquema"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Img         string          `json:"img,omitempty"`
	Esquema     json.RawMessage `json:"esquema,omitempty"`
	State       string          `json:"state"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// EspecificacionesResponse descriptores de campos para el formulario/panel de filtros.
type EspecificacionesResponse struct {
	Campos []catalogo.Descriptor `json:"campos"`
}
