package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "super-secret-jwt-token-with-at-least-32-characters"

func TestVerify(t *testing.T) {
	token, err := Sign(NewClaims("user-1", "a@b.c", "authenticated", time.Hour), secret)
	require.NoError(t, err)

	claims, err := NewVerifier(secret, "", "authenticated").Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "a@b.c", claims.Email)
}

func TestVerify_Expired(t *testing.T) {
	token, err := Sign(NewClaims("user-1", "", "", -time.Hour), secret)
	require.NoError(t, err)

	_, err = NewVerifier(secret, "", "").Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_Rejects(t *testing.T) {
	v := NewVerifier(secret, "https://proj.supabase.co/auth/v1", "authenticated")

	wrongSecret, _ := Sign(NewClaims("u", "", "authenticated", time.Hour), "other-secret")
	wrongAudience, _ := Sign(NewClaims("u", "", "anon", time.Hour), secret)
	noSubject, _ := Sign(NewClaims("", "", "authenticated", time.Hour), secret)

	c := NewClaims("u", "", "authenticated", time.Hour)
	c.Issuer = "https://proj.supabase.co/auth/v1"
	noExp := *c
	noExp.ExpiresAt = nil
	missingExp, _ := Sign(&noExp, secret)

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)

	for name, tok := range map[string]string{
		"garbage":        "not.a.token",
		"wrong secret":   wrongSecret,
		"wrong audience": wrongAudience,
		"no subject":     noSubject,
		"no expiry":      missingExp,
		"alg none":       none,
	} {
		_, err := v.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, name)
	}

	good, _ := Sign(c, secret)
	_, err := v.Verify(good)
	assert.NoError(t, err)
}
