package entity

import "time"

// Marca de producto. Slug se deriva del nombre y sirve como identificador URL-safe.
type Marca struct {
	ID        string
	Nombre    string // único
	Logo      string
	Slug      string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
