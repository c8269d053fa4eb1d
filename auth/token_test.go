package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceIssueAndVerify(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	signed, err := tokens.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Minute)

	signed, err := tokens.Issue("admin")
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	require.Error(t, err)
}

func TestTokenServiceRejectsForgedSignature(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	forger := NewTokenService("other-secret", time.Hour)

	signed, err := forger.Issue("admin")
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	require.Error(t, err)
}

func TestTokenServiceFailsClosedWithoutSecret(t *testing.T) {
	tokens := NewTokenService("", time.Hour)

	_, err := tokens.Issue("admin")
	require.Error(t, err)

	// A token signed with the empty key must not verify either
	claims := Claims{
		Username: "intruder",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(""))
	require.NoError(t, err)

	_, err = tokens.Verify(forged)
	require.Error(t, err)
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	_, err := tokens.Verify("not-a-token")
	require.Error(t, err)
}
