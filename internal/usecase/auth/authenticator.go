package auth

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/pkg/jwt"
)

// AnonymousUserID owns meetings created while verification is disabled
const AnonymousUserID = "anonymous"

// Principal is the caller identity taken from a verified token
type Principal struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	Anonymous bool   `json:"anonymous,omitempty"`
}

// Anonymous is the principal used when no token was verified
func Anonymous() *Principal {
	return &Principal{UserID: AnonymousUserID, Anonymous: true}
}

// Authenticator verifies bearer tokens
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Principal, error)
}

// JWTAuthenticator verifies tokens signed with the auth provider's secret
type JWTAuthenticator struct {
	verifier *jwt.Verifier
}

var _ Authenticator = (*JWTAuthenticator)(nil)

// NewJWTAuthenticator creates an authenticator backed by verifier
func NewJWTAuthenticator(verifier *jwt.Verifier) *JWTAuthenticator {
	return &JWTAuthenticator{verifier: verifier}
}

func (a *JWTAuthenticator) Authenticate(_ context.Context, token string) (*Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.ErrUnauthenticated()
	}

	claims, err := a.verifier.Verify(token)
	if err != nil {
		if stdErrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.ErrTokenExpired()
		}
		return nil, errors.ErrInvalidToken(err)
	}

	return &Principal{
		UserID: claims.UserID(),
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
