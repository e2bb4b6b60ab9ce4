package dto

import "time"

// CreateMarcaRequest entrada para crear una marca.
type CreateMarcaRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Logo   string `json:"logo" validate:"required"`
}

// UpdateMarcaRequest entrada para actualizar nombre y/o logo.
type UpdateMarcaRequest struct {
	Nombre *string `json:"nombre"`
	Logo   *string `json:"logo"`
}

// MarcaResponse salida de una marca.
type MarcaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Logo      string    `json:"logo"`
	Slug      string    `json:"slug"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

// SlugError detalle de una marca cuyo slug no pudo regenerarse.
type SlugError struct {
	MarcaID string `json:"marcaId"`
	Nombre  string `json:"nombre"`
	Error   string `json:"error"`
}

// ActualizarSlugsResponse reporte agregado del proceso batch de slugs:
// los fallos por ítem no abortan el lote.
type ActualizarSlugsResponse struct {
	Message      string      `json:"message"`
	Actualizados int         `json:"actualizados"`
	TotalMarcas  int         `json:"totalMarcas"`
	Errores      []SlugError `json:"errores"`
}
