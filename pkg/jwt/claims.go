package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the access token claims issued by the auth provider.
// The subject is the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the token subject
func (c *Claims) UserID() string {
	return c.Subject
}
