package repository

import "github.com/mvdigital/negocioweb-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para InventoryItem.
// GetByID devuelve nil cuando el id no existe; Update y Delete sobre un id
// inexistente retornan domain.ErrNotFound.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error
	ListByBusiness(business entity.BusinessType) ([]*entity.InventoryItem, error)
}
