package ports

import (
	"context"

	"github.com/playgrid/leaderboard-system/internal/core/domain"
)

// AccountRepository defines the persistence seam for registered accounts.
// Implementations own uniqueness enforcement on the handle.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByHandle(ctx context.Context, handle string) (*domain.Account, error)
}
