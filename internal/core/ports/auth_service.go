package ports

import (
	"context"

	"github.com/playgrid/leaderboard-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, handle, secret string) (*domain.Account, error)
	Login(ctx context.Context, handle, secret string) (string, error)
}
