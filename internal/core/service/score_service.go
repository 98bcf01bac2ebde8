package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/playgrid/leaderboard-system/internal/core/domain"
	"github.com/playgrid/leaderboard-system/internal/core/ports"
)

// pageSize is the fixed number of entries per leaderboard page.
const pageSize = 20

type ScoreService struct {
	repo   ports.ScoreRepository
	logger zerolog.Logger
}

func NewScoreService(repo ports.ScoreRepository, logger zerolog.Logger) *ScoreService {
	return &ScoreService{repo: repo, logger: logger}
}

// Submit appends a new score entry. The entry's handle is the token claim's
// handle; a body handle that disagrees with the claim is rejected before the
// store is touched.
func (s *ScoreService) Submit(ctx context.Context, input ports.SubmitScoreInput) (domain.ScoreEntry, error) {
	if input.Handle != input.ClaimHandle {
		s.logger.Warn().
			Str("handle", input.Handle).
			Str("claim_handle", input.ClaimHandle).
			Msg("score submission rejected: handle mismatch")
		return domain.ScoreEntry{}, domain.ErrHandleMismatch
	}

	entry, err := s.repo.Append(ctx, domain.ScoreEntry{
		Level:     input.Level,
		Handle:    input.ClaimHandle,
		Score:     input.Score,
		Timestamp: input.Timestamp,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to append score")
		return domain.ScoreEntry{}, err
	}

	s.logger.Info().
		Int64("id", entry.ID).
		Str("level", entry.Level).
		Str("handle", entry.Handle).
		Int("score", entry.Score).
		Msg("score submitted")

	return entry, nil
}

// List returns one page of the leaderboard for the given level (empty level
// matches everything). Entries are ranked by score descending; the sort is
// stable so equal scores keep their insertion order. Page is 1-based and
// clamped to 1; pages past the end return an empty slice, never an error.
func (s *ScoreService) List(ctx context.Context, level string, page int) ([]domain.ScoreEntry, error) {
	if page < 1 {
		page = 1
	}

	entries, err := s.repo.List(ctx, level)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	start := (page - 1) * pageSize
	if start >= len(entries) {
		return []domain.ScoreEntry{}, nil
	}
	end := start + pageSize
	if end > len(entries) {
		end = len(entries)
	}

	return entries[start:end], nil
}
