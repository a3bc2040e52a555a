package repository

import "github.com/mvdigital/negocioweb-api/internal/domain/entity"

// CatalogRepository define el puerto de persistencia para el catálogo de
// servicios de cada variante. El orden de List es el de inserción.
// GetByID devuelve nil cuando el id no existe.
type CatalogRepository interface {
	Create(business entity.BusinessType, entry *entity.CatalogEntry) error
	GetByID(business entity.BusinessType, id string) (*entity.CatalogEntry, error)
	Update(business entity.BusinessType, entry *entity.CatalogEntry) error
	Delete(business entity.BusinessType, id string) error
	List(business entity.BusinessType) ([]*entity.CatalogEntry, error)
}
