package repository

import "github.com/ccltech/tienda-api/internal/domain/entity"

// MovimientoRepository define el puerto de persistencia para MovimientoInventario.
type MovimientoRepository interface {
	Create(m *entity.MovimientoInventario) error
	GetByID(id string) (*entity.MovimientoInventario, error)
	List() ([]*entity.MovimientoInventario, error)
	Update(m *entity.MovimientoInventario) error
}
