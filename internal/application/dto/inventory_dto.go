package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest entrada para dar de alta un ítem de inventario.
// LastUpdated no es un campo de entrada: lo fija el caso de uso.
type CreateInventoryItemRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	MinQuantity  int             `json:"minQuantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Supplier     string          `json:"supplier"`
	BusinessType string          `json:"businessType" validate:"required"`
}

// UpdateInventoryItemRequest parche de un ítem de inventario.
type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Quantity     *int             `json:"quantity"`
	MinQuantity  *int             `json:"minQuantity"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	Supplier     *string          `json:"supplier"`
	BusinessType *string          `json:"businessType"`
}

// InventoryItemResponse salida de un ítem de inventario.
type InventoryItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	MinQuantity  int             `json:"minQuantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Supplier     string          `json:"supplier"`
	LastUpdated  time.Time       `json:"lastUpdated"`
	BusinessType string          `json:"businessType"`
}

// InventoryListResponse ítems de un negocio en orden de inserción.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
}
