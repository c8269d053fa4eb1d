package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jmfierro/portfolio-site-backend/errs"
)

// Claims is the JWT payload for an admin session token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies HMAC-signed admin session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for the given identity with a fixed expiry. An empty
// secret would be a publicly known signing key, so it is refused outright.
func (s *TokenService) Issue(username string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("token secret is not configured")
	}

	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a presented token. Any failure (bad signature,
// expiry, wrong signing method, missing identity) yields an unauthorized error.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, errs.NewUnauthorizedError("invalid or expired token")
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errs.NewUnauthorizedError("invalid or expired token")
	}

	if !token.Valid || claims.Username == "" {
		return nil, errs.NewUnauthorizedError("invalid or expired token")
	}

	return claims, nil
}
