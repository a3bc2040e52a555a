package auth

import pkgjwt "github.com/mvdigital/negocioweb-api/pkg/jwt"

// Capability representa lo que el portador de una sesión puede hacer.
// Todas las operaciones de mutación de los casos de uso la exigen: la
// autorización se verifica dentro de la frontera del store, no en la UI.
type Capability struct {
	scope string
}

// CanEdit indica si la capability habilita operaciones de edición.
func (c Capability) CanEdit() bool {
	return c.scope == pkgjwt.ScopeEdit
}

// Editor devuelve la capability de edición. En producción la produce
// Verify tras validar un token; los tests la usan directamente.
func Editor() Capability {
	return Capability{scope: pkgjwt.ScopeEdit}
}

// ReadOnly devuelve una capability sin permisos de edición.
func ReadOnly() Capability {
	return Capability{}
}
