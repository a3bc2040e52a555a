package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mvdigital/negocioweb-api/internal/domain"
	pkgjwt "github.com/mvdigital/negocioweb-api/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase es la puerta de sesión del administrador del sitio.
// La sesión es stateless: el logout es descartar el token en el cliente.
type AuthUseCase struct {
	passwordHash string
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye la puerta de sesión con el hash bcrypt de la
// credencial de administración.
func NewAuthUseCase(passwordHash string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{passwordHash: passwordHash, jwtCfg: jwtCfg}
}

// Login verifica la contraseña contra el hash configurado y emite un token
// con scope de edición. Contraseña incorrecta (o credencial no configurada)
// retorna domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(password string) (string, error) {
	if uc.passwordHash == "" {
		return "", fmt.Errorf("%w: credencial de administración no configurada", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.passwordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, "admin", pkgjwt.ScopeEdit, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", fmt.Errorf("emitir token: %w", err)
	}
	return token, nil
}

// Verify valida un token y devuelve la capability que otorga.
// Token inválido o expirado retorna domain.ErrUnauthorized.
func (uc *AuthUseCase) Verify(token string) (Capability, error) {
	_, scope, err := pkgjwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return ReadOnly(), domain.ErrUnauthorized
	}
	if scope != pkgjwt.ScopeEdit {
		return ReadOnly(), nil
	}
	return Editor(), nil
}
