package repository

import "github.com/mvdigital/negocioweb-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para Transaction.
// GetByID devuelve nil cuando el id no existe; Update y Delete sobre un id
// inexistente retornan domain.ErrNotFound.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	Delete(id string) error
	ListByBusiness(business entity.BusinessType) ([]*entity.Transaction, error)
}
