package auth

import (
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/pkg/jwt"
)

// Identity identidad del llamador autenticado.
type Identity struct {
	UserID string
}

// IsZero indica si no hay identidad resuelta.
func (i Identity) IsZero() bool { return i.UserID == "" }

// IdentityResolver convierte las credenciales de una petición (el token
// crudo del header Authorization) en una Identity. Es la única pieza que
// conoce el formato del token: servicios y middleware consumen solo esta
// interfaz, así que se puede testear con un resolver falso sin levantar HTTP.
type IdentityResolver interface {
	Authenticate(token string) (Identity, error)
}

// TokenResolver resuelve identidades validando JWT HS256 con el secret de la app.
type TokenResolver struct {
	secret string
}

// NewTokenResolver construye el resolver.
func NewTokenResolver(secret string) *TokenResolver {
	return &TokenResolver{secret: secret}
}

// Authenticate valida el token y devuelve la identidad.
// Todo fallo de validación se reporta como domain.ErrUnauthorized.
func (r *TokenResolver) Authenticate(token string) (Identity, error) {
	userID, err := jwt.Parse(r.secret, token)
	if err != nil {
		return Identity{}, domain.ErrUnauthorized
	}
	return Identity{UserID: userID}, nil
}
