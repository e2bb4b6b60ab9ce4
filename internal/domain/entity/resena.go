package entity

import "time"

// Resena calificación 1..5 con comentario. Una por usuario y producto.
type Resena struct {
	ID            string
	ProductoID    string
	UsuarioID     string
	NombreUsuario string
	Calificacion  int
	Comentario    string
	CreatedAt     time.Time
}
