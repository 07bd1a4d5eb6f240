package auth

import "time"

// Claims es lo que el verifier extrae de un bearer token.
type Claims struct {
	UserID    string
	Email     string
	Roles     []string
	ExpiresAt time.Time
}
