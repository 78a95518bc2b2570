package auth

import "context"

// Claims son los datos mínimos de identidad que el resto de la app consume.
type Claims struct {
	UserID string
	Email  string
}

// AuthVerifier valida un token opaco/Bearer y devuelve claims.
// En modo dev el verifier es nil y la identidad viene por header de debug.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
