package auth

import "context"

// AuthVerifier valida un bearer token. Lo implementa adapters/auth/jwtauth.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
