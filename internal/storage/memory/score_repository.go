package memory

import (
	"context"
	"sync"

	"github.com/playgrid/leaderboard-system/internal/core/domain"
)

// ScoreRepository is the append-only leaderboard store. The sequence counter
// lives inside the store and is advanced under the same lock that guards the
// append, so id assignment and insertion are one atomic step.
type ScoreRepository struct {
	mu      sync.RWMutex
	entries []domain.ScoreEntry
	nextID  int64
}

func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{nextID: 1}
}

func (r *ScoreRepository) Append(_ context.Context, entry domain.ScoreEntry) (domain.ScoreEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, entry)

	return entry, nil
}

// List returns a snapshot of entries for the given level in insertion order.
// An empty level matches every entry. Callers own the returned slice.
func (r *ScoreRepository) List(_ context.Context, level string) ([]domain.ScoreEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ScoreEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if level == "" || e.Level == level {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *ScoreRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
