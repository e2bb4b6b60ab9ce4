package dto

import "time"

// CreateSubcategoriaRequest entrada para crear una subcategoría.
type CreateSubcategoriaRequest struct {
	Codigo         string `json:"codigo" validate:"required"`
	Name           string `json:"name" validate:"required"`
	CategoriaPadre string `json:"categoriaPadre" validate:"required"`
}

// SubcategoriaResponse salida de una subcategoría.
type SubcategoriaResponse struct {
	ID             string    `json:"id"`
	Codigo         string    `json:"codigo"`
	Name           string    `json:"name"`
	CategoriaPadre string    `json:"categoriaPadre"`
	State          string    `json:"state"`
	CreatedAt      time.Time `json:"created_at"`
}

// SubcategoriaListResponse listado con contador, como lo consume el frontend.
type SubcategoriaListResponse struct {
	Success bool                   `json:"success"`
	Count   int                    `json:"count"`
	Data    []SubcategoriaResponse `json:"data"`
}
