package domain

// ScoreEntry is a single submitted high score. Entries are append-only and
// immutable; IDs form a strictly increasing 1-based sequence assigned by the
// score store at insertion time.
type ScoreEntry struct {
	ID        int64  `json:"id"`
	Level     string `json:"level"`
	Handle    string `json:"handle"`
	Score     int    `json:"score"`
	Timestamp string `json:"timestamp"`
}
