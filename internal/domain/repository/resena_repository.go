package repository

import (
	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/domain/entity"
)

// ResenaRepository define el puerto de persistencia para Resena.
type ResenaRepository interface {
	Create(r *entity.Resena) error
	GetByID(id string) (*entity.Resena, error)
	GetByProductoYUsuario(productoID, usuarioID string) (*entity.Resena, error)
	ListByProducto(productoID string) ([]*entity.Resena, error)
	Delete(id string) error
	// Promedio calcula la calificación media del producto (cero si no hay reseñas).
	Promedio(productoID string) (decimal.Decimal, error)
}
