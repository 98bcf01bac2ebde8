package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/playgrid/leaderboard-system/internal/api/metrics"
	"github.com/playgrid/leaderboard-system/internal/api/middleware"
	"github.com/playgrid/leaderboard-system/internal/core/domain"
	"github.com/playgrid/leaderboard-system/internal/core/ports"
)

// ScoreHandler handles HTTP requests for the leaderboard.
type ScoreHandler struct {
	service ports.ScoreService
}

func NewScoreHandler(service ports.ScoreService) *ScoreHandler {
	return &ScoreHandler{service: service}
}

// Submit records a new high score for the authenticated account.
//
// @Summary      Submit a high score
// @Tags         scores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitScoreRequest  true  "Score details"
// @Success      201   {object}  scoreEntryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /high-scores [post]
func (h *ScoreHandler) Submit(c echo.Context) error {
	claimHandle, _ := c.Get(middleware.HandleKey).(string)
	if claimHandle == "" {
		metrics.ScoreSubmissionsTotal.WithLabelValues("unauthorized").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req submitScoreRequest
	if err := c.Bind(&req); err != nil {
		metrics.ScoreSubmissionsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.ScoreSubmissionsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Submit(c.Request().Context(), ports.SubmitScoreInput{
		Level:       req.Level,
		Handle:      req.Handle,
		ClaimHandle: claimHandle,
		Score:       *req.Score,
		Timestamp:   req.Timestamp,
	})
	if err != nil {
		if errors.Is(err, domain.ErrHandleMismatch) {
			metrics.ScoreSubmissionsTotal.WithLabelValues("forbidden").Inc()
		}
		return err
	}

	metrics.ScoreSubmissionsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toScoreEntryResponse(entry))
}

// List returns one page of the leaderboard. No authentication required.
//
// @Summary      Query the leaderboard
// @Tags         scores
// @Produce      json
// @Param        level  query     string  false  "Filter by level (exact match)"
// @Param        page   query     int     false  "Page number (1-based, 20 entries per page)"
// @Success      200    {array}   scoreEntryResponse
// @Router       /high-scores [get]
func (h *ScoreHandler) List(c echo.Context) error {
	level := c.QueryParam("level")

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			page = n
		}
	}

	entries, err := h.service.List(c.Request().Context(), level, page)
	if err != nil {
		return err
	}

	metrics.ScoreQueriesTotal.Inc()

	out := make([]scoreEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toScoreEntryResponse(e))
	}
	return c.JSON(http.StatusOK, out)
}

// toScoreEntryResponse maps the domain entry to the transport type.
func toScoreEntryResponse(e domain.ScoreEntry) scoreEntryResponse {
	return scoreEntryResponse{
		ID:        e.ID,
		Level:     e.Level,
		Handle:    e.Handle,
		Score:     e.Score,
		Timestamp: e.Timestamp,
	}
}
