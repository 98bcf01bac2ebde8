package ports

import (
	"context"

	"github.com/playgrid/leaderboard-system/internal/core/domain"
)

// ScoreRepository defines the persistence seam for the leaderboard.
// Append assigns the entry's sequence id and stores it as one atomic step.
type ScoreRepository interface {
	Append(ctx context.Context, entry domain.ScoreEntry) (domain.ScoreEntry, error)
	// List returns entries for the given level in insertion order.
	// An empty level matches every entry.
	List(ctx context.Context, level string) ([]domain.ScoreEntry, error)
	Count(ctx context.Context) int
}
