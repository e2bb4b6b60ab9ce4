package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateResenaRequest entrada para crear una reseña.
type CreateResenaRequest struct {
	ProductoID   string `json:"productoId" validate:"required"`
	Calificacion int    `json:"calificacion" validate:"min=1,max=5"`
	Comentario   string `json:"comentario" validate:"required"`
}

// ResenaResponse salida de una reseña.
type ResenaResponse struct {
	ID            string    `json:"id"`
	ProductoID    string    `json:"productoId"`
	UsuarioID     string    `json:"usuarioId"`
	NombreUsuario string    `json:"nombreUsuario"`
	Calificacion  int       `json:"calificacion"`
	Comentario    string    `json:"comentario"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ResenasProductoResponse reseñas de un producto más su promedio vigente.
type ResenasProductoResponse struct {
	Promedio decimal.Decimal  `json:"promedio"`
	Resenas  []ResenaResponse `json:"resenas"`
}
