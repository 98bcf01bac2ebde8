package ports

import (
	"context"

	"github.com/playgrid/leaderboard-system/internal/core/domain"
)

// SubmitScoreInput carries an authenticated, field-validated score
// submission. ClaimHandle is the identity proven by the bearer token;
// Handle is what the request body claims, kept separate so the service
// can reject a mismatch before touching the store.
type SubmitScoreInput struct {
	Level       string
	Handle      string
	ClaimHandle string
	Score       int
	Timestamp   string
}

type ScoreService interface {
	Submit(ctx context.Context, input SubmitScoreInput) (domain.ScoreEntry, error)
	// List returns one page (fixed size 20) of entries for the given level,
	// ranked by score descending with insertion order breaking ties.
	// Page is 1-based; out-of-range pages yield an empty slice.
	List(ctx context.Context, level string, page int) ([]domain.ScoreEntry, error)
}
