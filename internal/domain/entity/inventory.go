package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem es un ítem del inventario de un negocio.
// LastUpdated lo fija el caso de uso en cada alta y en cada actualización
// exitosa; nunca lo define el llamador.
type InventoryItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	MinQuantity  int             `json:"minQuantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Supplier     string          `json:"supplier"`
	LastUpdated  time.Time       `json:"lastUpdated"`
	BusinessType BusinessType    `json:"businessType"`
}

// LowStock indica si el ítem está en o por debajo de su cantidad mínima.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinQuantity
}
