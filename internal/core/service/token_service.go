package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/playgrid/leaderboard-system/internal/core/domain"
	"github.com/playgrid/leaderboard-system/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// TokenService mints and verifies HS256 session tokens. It holds no state
// beyond the signing secret; tokens cannot be revoked before expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the handle and an absolute expiry.
func (s *TokenService) Issue(handle string) (string, error) {
	claims := jwt.MapClaims{
		"handle": handle,
		"exp":    time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. Every failure mode — empty token,
// malformed structure, wrong signature, wrong algorithm, expired — is
// reported as the same domain.ErrInvalidToken so callers cannot tell them
// apart.
func (s *TokenService) Verify(token string) (ports.Claim, error) {
	if token == "" {
		return ports.Claim{}, domain.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return ports.Claim{}, domain.ErrInvalidToken
	}

	handle, _ := claims["handle"].(string)
	if handle == "" {
		return ports.Claim{}, domain.ErrInvalidToken
	}

	return ports.Claim{Handle: handle}, nil
}
