package entity

// BusinessType identifica la variante de negocio. Actúa como clave de
// partición en todas las colecciones (contenido, transacciones, inventario).
type BusinessType string

const (
	BusinessBarbershop BusinessType = "barbershop"
	BusinessAutomotive BusinessType = "automotive"
)

// Valid indica si el tipo de negocio pertenece al conjunto soportado.
func (b BusinessType) Valid() bool {
	return b == BusinessBarbershop || b == BusinessAutomotive
}
