package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
)

var ErrInvalidAPIKey = errors.New("invalid api key")

// TokenService exchanges the configured API key for a short-lived JWT.
type TokenService struct {
	apiKey string
	secret string
	expiry time.Duration
}

// NewTokenService creates a new TokenService.
func NewTokenService(apiKey, secret string, expiry time.Duration) *TokenService {
	return &TokenService{apiKey: apiKey, secret: secret, expiry: expiry}
}

// Exchange validates the presented API key and returns a signed token.
// An empty configured key disables the exchange entirely.
func (s *TokenService) Exchange(apiKey string) (string, error) {
	if s.apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.apiKey)) != 1 {
		return "", ErrInvalidAPIKey
	}
	return crypto.GenerateToken("api-client", s.secret, s.expiry)
}
