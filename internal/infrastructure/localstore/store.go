// Package localstore implementa la persistencia local de la aplicación:
// blobs JSON con nombre sobre un almacén clave-valor embebido (bbolt),
// más una implementación en memoria para tests.
package localstore

import "github.com/mvdigital/negocioweb-api/internal/domain/entity"

// Claves del espacio de nombres persistido: una clave por colección, con la
// colección completa como un único blob JSON.
const (
	KeyBarbershopContent = "barbershop_content"
	KeyAutomotiveContent = "automotive_content"
	KeyTransactions      = "financial_transactions"
	KeyInventory         = "inventory_items"
	KeyBarbershopCatalog = "barbershop_catalog"
	KeyAutomotiveCatalog = "automotive_catalog"
)

// Store es el adaptador de almacenamiento clave-valor local.
// Load devuelve (nil, nil) cuando la clave no existe; Save sobrescribe el
// blob completo (el merge ocurre en el repositorio que llama, nunca aquí).
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// ContentKey devuelve la clave del contenido persistido de una variante.
func ContentKey(business entity.BusinessType) string {
	if business == entity.BusinessAutomotive {
		return KeyAutomotiveContent
	}
	return KeyBarbershopContent
}

// CatalogKey devuelve la clave del catálogo persistido de una variante.
func CatalogKey(business entity.BusinessType) string {
	if business == entity.BusinessAutomotive {
		return KeyAutomotiveCatalog
	}
	return KeyBarbershopCatalog
}
