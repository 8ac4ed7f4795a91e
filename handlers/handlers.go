package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"
	"github.com/shopspring/decimal"

	"AmHughesAbsalom/halftime-analytics/analytics"
	"AmHughesAbsalom/halftime-analytics/models"
	"AmHughesAbsalom/halftime-analytics/odds"
)

const dateLayout = "2006-01-02"

// Odds lines and prices go out as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Analytics is the part of analytics.Engine the HTTP layer calls.
type Analytics interface {
	TeamStats(ctx context.Context, q analytics.StatsQuery) (models.AnalyticsResult, error)
	OddsAnalysis(ctx context.Context, q analytics.OddsQuery) (models.OddsAnalysisResult, error)
	AnalyzeMatchup(ctx context.Context, q analytics.MatchupQuery) (*models.MatchupAnalysisResult, error)
	SearchTeams(ctx context.Context, leagueId uuid.UUID, query string) ([]models.TeamModel, error)
	Leagues(ctx context.Context) ([]models.LeagueModel, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	engine   Analytics
	db       Pinger
	defaults analytics.Defaults
	timeout  time.Duration
}

func NewHandler(engine Analytics, db Pinger, defaults analytics.Defaults, timeout time.Duration) *Handler {
	return &Handler{
		engine:   engine,
		db:       db,
		defaults: defaults,
		timeout:  timeout,
	}
}

type filtersEcho struct {
	LeagueId   *uuid.UUID       `json:"leagueId,omitempty"`
	Threshold  int              `json:"threshold,omitempty"`
	LastNGames int              `json:"lastNGames,omitempty"`
	StartDate  *time.Time       `json:"startDate,omitempty"`
	EndDate    *time.Time       `json:"endDate,omitempty"`
	MinOdds    *decimal.Decimal `json:"minOdds,omitempty"`
	MaxOdds    *decimal.Decimal `json:"maxOdds,omitempty"`
}

type analyticsData struct {
	models.AnalyticsResult
	OddsAnalysis *models.OddsAnalysisResult `json:"oddsAnalysis,omitempty"`
}

// HealthCheck pings the database.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "database unhealthy", err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// GetAnalytics returns home and away team tables, the league list and, unless
// includeOdds=false, the odds analysis for the same window.
// Query params: leagueId, threshold, lastNGames, startDate, endDate, minOdds, maxOdds, includeOdds
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	filters, err := h.parseFilters(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if filters.Threshold == 0 {
		filters.Threshold = h.defaults.Threshold
	}
	includeOdds := r.URL.Query().Get("includeOdds") != "false"

	stats, err := h.engine.TeamStats(ctx, analytics.StatsQuery{
		LeagueId:   filters.LeagueId,
		Threshold:  filters.Threshold,
		LastNGames: filters.LastNGames,
		StartDate:  filters.StartDate,
		EndDate:    filters.EndDate,
	})
	if err != nil {
		respondEngineError(w, r, "failed to compute team stats", err)
		return
	}

	leagues, err := h.engine.Leagues(ctx)
	if err != nil {
		respondEngineError(w, r, "failed to list leagues", err)
		return
	}

	data := analyticsData{AnalyticsResult: stats}
	if includeOdds {
		oddsResult, err := h.engine.OddsAnalysis(ctx, analytics.OddsQuery{
			LeagueId:  filters.LeagueId,
			StartDate: filters.StartDate,
			EndDate:   filters.EndDate,
			Band:      odds.Band{Min: *filters.MinOdds, Max: *filters.MaxOdds},
		})
		if err != nil {
			respondEngineError(w, r, "failed to analyze odds", err)
			return
		}
		data.OddsAnalysis = &oddsResult
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
		"leagues": leagues,
		"filters": filters,
	})
}

// GetOddsAnalysis returns the outcome distribution and per-team recurrence.
// Query params: leagueId, startDate, endDate, minOdds, maxOdds
func (h *Handler) GetOddsAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	filters, err := h.parseFilters(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.engine.OddsAnalysis(ctx, analytics.OddsQuery{
		LeagueId:  filters.LeagueId,
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
		Band:      odds.Band{Min: *filters.MinOdds, Max: *filters.MaxOdds},
	})
	if err != nil {
		respondEngineError(w, r, "failed to analyze odds", err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    result,
		"filters": filters,
	})
}

// GetMatchup analyzes homeTeam at home against awayTeam away. With
// action=search it lists teams matching query instead.
// Query params: homeTeam, awayTeam, leagueId, minOdds, maxOdds, lastNGames
func (h *Handler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("action") == "search" {
		h.searchTeams(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := r.URL.Query()
	homeTeam, awayTeam := q.Get("homeTeam"), q.Get("awayTeam")
	if homeTeam == "" || awayTeam == "" || q.Get("leagueId") == "" {
		respondError(w, r, http.StatusBadRequest, "Home team, away team, and league are required", nil)
		return
	}

	filters, err := h.parseFilters(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.engine.AnalyzeMatchup(ctx, analytics.MatchupQuery{
		HomeTeamName: homeTeam,
		AwayTeamName: awayTeam,
		LeagueId:     *filters.LeagueId,
		Band:         odds.Band{Min: *filters.MinOdds, Max: *filters.MaxOdds},
		LastNGames:   filters.LastNGames,
	})
	if err != nil {
		respondEngineError(w, r, "failed to analyze matchup", err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    result,
	})
}

func (h *Handler) searchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	leagueId, err := parseUUIDParam(r, "leagueId")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if leagueId == nil {
		respondError(w, r, http.StatusBadRequest, "League ID required", nil)
		return
	}

	teams, err := h.engine.SearchTeams(ctx, *leagueId, r.URL.Query().Get("query"))
	if err != nil {
		respondEngineError(w, r, "failed to search teams", err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"teams":   teams,
	})
}

func (h *Handler) GetLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	leagues, err := h.engine.Leagues(ctx)
	if err != nil {
		respondEngineError(w, r, "failed to list leagues", err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"leagues": leagues,
	})
}

// parseFilters reads the query parameters shared by all analytics endpoints
// and validates them. The returned band is always set.
func (h *Handler) parseFilters(r *http.Request) (filtersEcho, error) {
	var f filtersEcho
	var err error

	if f.LeagueId, err = parseUUIDParam(r, "leagueId"); err != nil {
		return f, err
	}
	if f.StartDate, err = parseDateParam(r, "startDate"); err != nil {
		return f, err
	}
	if f.EndDate, err = parseDateParam(r, "endDate"); err != nil {
		return f, err
	}
	if f.Threshold, err = parseIntParam(r, "threshold"); err != nil {
		return f, err
	}
	if f.LastNGames, err = parseIntParam(r, "lastNGames"); err != nil {
		return f, err
	}

	minOdds, err := parseDecimalParam(r, "minOdds", h.defaults.Band.Min)
	if err != nil {
		return f, err
	}
	maxOdds, err := parseDecimalParam(r, "maxOdds", h.defaults.Band.Max)
	if err != nil {
		return f, err
	}
	f.MinOdds, f.MaxOdds = &minOdds, &maxOdds

	if err := analytics.ValidateBand(odds.Band{Min: minOdds, Max: maxOdds}); err != nil {
		return f, err
	}
	if r.URL.Query().Has("threshold") {
		if err := analytics.ValidatePositive("threshold", f.Threshold); err != nil {
			return f, err
		}
	}
	if r.URL.Query().Has("lastNGames") {
		if err := analytics.ValidatePositive("lastNGames", f.LastNGames); err != nil {
			return f, err
		}
	}
	return f, nil
}

func parseUUIDParam(r *http.Request, param string) (*uuid.UUID, error) {
	v := r.URL.Query().Get(param)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", param, v)
	}
	return &id, nil
}

func parseDateParam(r *http.Request, param string) (*time.Time, error) {
	v := r.URL.Query().Get(param)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q, expected YYYY-MM-DD", param, v)
	}
	return &t, nil
}

func parseIntParam(r *http.Request, param string) (int, error) {
	v := r.URL.Query().Get(param)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", param, v)
	}
	return n, nil
}

func parseDecimalParam(r *http.Request, param string, defaultValue decimal.Decimal) (decimal.Decimal, error) {
	v := r.URL.Query().Get(param)
	if v == "" {
		return defaultValue, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %q", param, v)
	}
	return d, nil
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error encoding response")
	}
}

// respondEngineError maps engine errors onto status codes. Not-found and
// range errors carry their own message.
func respondEngineError(w http.ResponseWriter, r *http.Request, message string, err error) {
	switch {
	case errors.Is(err, analytics.ErrTeamNotFound):
		respondError(w, r, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, analytics.ErrInvalidRange):
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
	default:
		respondError(w, r, http.StatusInternalServerError, message, err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Int("status", status).Msg(message)
	}

	respondJSON(w, r, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
