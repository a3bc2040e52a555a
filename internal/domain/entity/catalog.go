package entity

// CatalogCategory clasifica una entrada del catálogo de servicios.
type CatalogCategory string

const (
	CategoryCorte      CatalogCategory = "corte"
	CategoryBarba      CatalogCategory = "barba"
	CategoryCombo      CatalogCategory = "combo"
	CategoryTratamento CatalogCategory = "tratamento"
)

// Valid indica si la categoría pertenece al conjunto soportado.
func (c CatalogCategory) Valid() bool {
	switch c {
	case CategoryCorte, CategoryBarba, CategoryCombo, CategoryTratamento:
		return true
	}
	return false
}

// CatalogEntry es una entrada del catálogo de servicios de una variante.
// El precio es texto libre (ej. "R$ 35,00"); el orden es el de inserción y
// no existe operación de reordenamiento.
type CatalogEntry struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       string          `json:"price"`
	Category    CatalogCategory `json:"category"`
}
