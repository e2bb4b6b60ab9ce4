package repository

import "github.com/ccltech/tienda-api/internal/domain/entity"

// SubcategoriaRepository define el puerto de persistencia para Subcategoria.
type SubcategoriaRepository interface {
	Create(s *entity.Subcategoria) error
	GetByID(id string) (*entity.Subcategoria, error)
	ListActivas() ([]*entity.Subcategoria, error)
	ListByCategoriaPadre(codigoPadre string) ([]*entity.Subcategoria, error)
	Update(s *entity.Subcategoria) error
	// Reemplazar borra todas las subcategorías y siembra el conjunto dado.
	Reemplazar(subs []*entity.Subcategoria) error
}
