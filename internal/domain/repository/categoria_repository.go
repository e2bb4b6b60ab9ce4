package repository

import "github.com/ccltech/tienda-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	GetByCodigo(codigo string) (*entity.Categoria, error)
	List() ([]*entity.Categoria, error)
	Update(c *entity.Categoria) error
}
