// ABOUTME: Signed session credential issuance and verification
// ABOUTME: HS256 JWTs embedding the username with a configurable expiry

package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, tampered
// payload, or expiry. Callers are not told which.
var ErrInvalidToken = errors.New("invalid token")

// tokenClaims embeds the standard claims plus the owning username.
type tokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenService issues and verifies signed session credentials.
type TokenService struct {
	key []byte
	ttl time.Duration
}

// NewTokenService creates a token service signing with key. Tokens expire
// ttl after issuance.
func NewTokenService(key []byte, ttl time.Duration) *TokenService {
	return &TokenService{key: key, ttl: ttl}
}

// Issue produces a signed token embedding username with an absolute expiry.
func (s *TokenService) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
		Username: username,
	})

	return token.SignedString(s.key)
}

// Verify checks signature and expiry, returning the embedded username.
// Validity is self-contained: nothing is checked against the user directory.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidToken
	}

	if !token.Valid || claims.Username == "" {
		return "", ErrInvalidToken
	}

	return claims.Username, nil
}
