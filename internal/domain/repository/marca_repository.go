package repository

import "github.com/ccltech/tienda-api/internal/domain/entity"

// MarcaRepository define el puerto de persistencia para Marca.
type MarcaRepository interface {
	Create(m *entity.Marca) error
	GetByID(id string) (*entity.Marca, error)
	GetBySlug(slug string) (*entity.Marca, error)
	GetByNombre(nombre string) (*entity.Marca, error)
	ListActivas() ([]*entity.Marca, error)
	ListTodas() ([]*entity.Marca, error)
	Update(m *entity.Marca) error
}
