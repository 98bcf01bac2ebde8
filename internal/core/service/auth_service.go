package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/playgrid/leaderboard-system/internal/core/domain"
	"github.com/playgrid/leaderboard-system/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AccountRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.AccountRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register hashes the secret and creates the account. A duplicate handle
// surfaces as domain.ErrHandleTaken. No token is issued here; login is a
// separate step.
func (s *AuthService) Register(ctx context.Context, handle, secret string) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Handle:     handle,
		SecretHash: string(hash),
		CreatedAt:  time.Now().UTC(),
	}

	return s.repo.Create(ctx, account)
}

// Login authenticates the credentials and mints a session token. An unknown
// handle and a wrong secret both collapse into domain.ErrInvalidCredentials
// so callers cannot probe for account existence.
func (s *AuthService) Login(ctx context.Context, handle, secret string) (string, error) {
	account, err := s.repo.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.SecretHash), []byte(secret)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(account.Handle)
}
