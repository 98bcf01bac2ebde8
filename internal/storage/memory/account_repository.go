// Package memory provides in-process implementations of the repository
// ports. All state lives and dies with the process; losing it on restart is
// deliberate, not an oversight.
package memory

import (
	"context"
	"sync"

	"github.com/playgrid/leaderboard-system/internal/core/domain"
)

// AccountRepository stores registered accounts keyed by handle. The mutex
// makes the exists-check-then-insert sequence atomic under concurrent
// signups.
type AccountRepository struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]domain.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Handle]; exists {
		return nil, domain.ErrHandleTaken
	}

	r.accounts[account.Handle] = *account

	created := *account
	return &created, nil
}

// FindByHandle looks up an account by exact, case-sensitive handle match.
func (r *AccountRepository) FindByHandle(_ context.Context, handle string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[handle]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	found := account
	return &found, nil
}
