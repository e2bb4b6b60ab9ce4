package dto

import "time"

// CreateMovimientoRequest entrada para registrar un movimiento de inventario.
type CreateMovimientoRequest struct {
	ProductoID string `json:"productoId" validate:"required"`
	Tipo       string `json:"type" validate:"required,oneof=entrada salida devolucion"`
	Cantidad   int    `json:"quantity" validate:"min=1"`
	UsuarioID  string `json:"userId" validate:"required"`
	Motivo     string `json:"reason"`
}

// UpdateMovimientoRequest solo el motivo es editable después de registrado.
type UpdateMovimientoRequest struct {
	Motivo string `json:"reason"`
}

// MovimientoResponse salida de un movimiento.
type MovimientoResponse struct {
	ID          string    `json:"id"`
	ProductoID  string    `json:"productoId"`
	Tipo        string    `json:"type"`
	Cantidad    int       `json:"quantity"`
	UsuarioID   string    `json:"userId"`
	Motivo      string    `json:"reason"`
	Fecha       time.Time `json:"date"`
	StockActual int       `json:"stockActual"`
}
