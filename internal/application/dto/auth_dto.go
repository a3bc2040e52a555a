package dto

// LoginRequest entrada para iniciar sesión de administración.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida del login: token Bearer con scope de edición.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // minutos
}
