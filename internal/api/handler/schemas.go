package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for plain informational responses.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

type signupRequest struct {
	Handle string `json:"handle" validate:"required,min=6"`
	Secret string `json:"secret" validate:"required,min=6"`
}

type loginRequest struct {
	Handle string `json:"handle" validate:"required"`
	Secret string `json:"secret" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type submitScoreRequest struct {
	Level     string `json:"level"     validate:"required"`
	Handle    string `json:"handle"    validate:"required"`
	Score     *int   `json:"score"     validate:"required,gte=0"`
	Timestamp string `json:"timestamp" validate:"required"`
}

// scoreEntryResponse mirrors domain.ScoreEntry. It is intentionally a
// transport-owned type so the JSON contract is not coupled to internal
// domain changes.
type scoreEntryResponse struct {
	ID        int64  `json:"id"`
	Level     string `json:"level"`
	Handle    string `json:"handle"`
	Score     int    `json:"score"`
	Timestamp string `json:"timestamp"`
}
