package repository

import "github.com/ccltech/tienda-api/internal/domain/entity"

// OrdenRepository define el puerto de persistencia para Orden.
type OrdenRepository interface {
	Create(o *entity.Orden) error
	GetByID(id string) (*entity.Orden, error)
	ListByUsuario(usuarioID string) ([]*entity.Orden, error)
	List() ([]*entity.Orden, error)
	Update(o *entity.Orden) error
}
