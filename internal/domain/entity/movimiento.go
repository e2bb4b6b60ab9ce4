package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada    = "entrada"
	MovimientoSalida     = "salida"
	MovimientoDevolucion = "devolucion"
)

// MovimientoInventario registra una transacción de stock sobre un producto.
// El stock del producto se ajusta en la misma transacción que inserta el movimiento.
type MovimientoInventario struct {
	ID         string
	ProductoID string
	Tipo       string
	Cantidad   int
	UsuarioID  string
	Motivo     string
	Fecha      time.Time
}
