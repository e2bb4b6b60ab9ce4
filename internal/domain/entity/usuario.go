package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Usuario de la tienda. Favoritos guarda IDs de productos marcados.
type Usuario struct {
	ID           string
	Name         string
	Email        string // único
	PasswordHash string
	Role         string
	Favoritos    []string
	Estado       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
