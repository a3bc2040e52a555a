package dto

// CreateCatalogEntryRequest entrada para crear una entrada del catálogo.
type CreateCatalogEntryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category" validate:"required"`
}

// UpdateCatalogEntryRequest parche de una entrada del catálogo.
type UpdateCatalogEntryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Category    *string `json:"category"`
}

// CatalogEntryResponse salida de una entrada del catálogo.
type CatalogEntryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
}

// CatalogListResponse catálogo completo de una variante.
type CatalogListResponse struct {
	Items []CatalogEntryResponse `json:"items"`
}
