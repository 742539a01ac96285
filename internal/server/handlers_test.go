package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/bullrush/internal/game"
	gameservice "github.com/zappabad/bullrush/internal/game/service"
	"github.com/zappabad/bullrush/internal/leaderboard"
)

func newTestServer(t *testing.T, mutate func(*gameservice.Config)) *Server {
	t.Helper()

	cfg := gameservice.DefaultConfig()
	cfg.Seed = 42
	if mutate != nil {
		mutate(&cfg)
	}

	board, err := leaderboard.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { board.Close() })

	return New(Config{
		Port:    0,
		Log:     zerolog.Nop(),
		Session: gameservice.NewSession(cfg, zerolog.Nop()),
		Board:   board,
		DevMode: true,
	})
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) game.State {
	t.Helper()
	var state game.State
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	return state
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestGetGameState(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/gamestate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	state := decodeState(t, rec)
	assert.Equal(t, 1, state.Day)
	assert.Equal(t, 14, state.DaysUntilGoal)
	assert.Len(t, state.Companies, 8)
	assert.Equal(t, game.StatusActive, state.Status)

	// Wire names stay camelCase.
	assert.Contains(t, body, `"daysUntilGoal"`)
	assert.Contains(t, body, `"currentPrice"`)
	assert.Contains(t, body, `"netWorth"`)
	assert.Contains(t, body, `"gameSpeed"`)
	assert.Contains(t, body, `"isPaused"`)
}

func TestRestoreGameState(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/gamestate", nil)
	saved := decodeState(t, rec)
	saved.Day = 5
	saved.DaysUntilGoal = 10

	rec = doRequest(t, srv, http.MethodPost, "/api/gamestate", saved)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, decodeState(t, rec).Day)

	rec = doRequest(t, srv, http.MethodGet, "/api/gamestate", nil)
	assert.Equal(t, 5, decodeState(t, rec).Day)
}

func TestRestoreGameStateInvalid(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/gamestate", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, srv, http.MethodPost, "/api/gamestate", game.State{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdvanceDay(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/advance-day", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, 2, state.Day)
	assert.Equal(t, 13, state.DaysUntilGoal)
	assert.NotEmpty(t, state.News)
}

func TestAdvanceDayAfterGameOver(t *testing.T) {
	srv := newTestServer(t, func(cfg *gameservice.Config) {
		cfg.Game.DaysUntilGoal = 1
		cfg.Game.GoalAmount = 1e12
	})

	rec := doRequest(t, srv, http.MethodPost, "/api/advance-day", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, game.StatusLost, decodeState(t, rec).Status)

	rec = doRequest(t, srv, http.MethodPost, "/api/advance-day", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBuyAndSell(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/buy", map[string]any{
		"companyId": "tech-1",
		"shares":    10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Less(t, state.Portfolio.Cash, 10000.0)
	assert.Len(t, state.Portfolio.TransactionHistory, 1)

	rec = doRequest(t, srv, http.MethodPost, "/api/sell", map[string]any{
		"companyId": "tech-1",
		"shares":    10,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10000.0, decodeState(t, rec).Portfolio.Cash)
}

func TestBuyErrors(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/buy", map[string]any{
		"companyId": "tech-1",
		"shares":    1000000,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient funds")

	rec = doRequest(t, srv, http.MethodPost, "/api/buy", map[string]any{
		"companyId": "nope",
		"shares":    1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, srv, http.MethodPost, "/api/buy", map[string]any{
		"shares": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "companyId is required")
}

func TestSellErrors(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/sell", map[string]any{
		"companyId": "tech-1",
		"shares":    1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no position")
}

func TestReset(t *testing.T) {
	srv := newTestServer(t, nil)

	doRequest(t, srv, http.MethodPost, "/api/advance-day", nil)
	rec := doRequest(t, srv, http.MethodPost, "/api/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeState(t, rec).Day)
}

func TestSetSpeed(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/speed", map[string]any{"gameSpeed": "fast"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, game.SpeedFast, decodeState(t, rec).Speed)

	rec = doRequest(t, srv, http.MethodPost, "/api/speed", map[string]any{"gameSpeed": "warp"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTogglePause(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/pause", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeState(t, rec).Paused)

	rec = doRequest(t, srv, http.MethodPost, "/api/pause", nil)
	assert.False(t, decodeState(t, rec).Paused)
}

func TestLeaderboard(t *testing.T) {
	srv := newTestServer(t, func(cfg *gameservice.Config) {
		cfg.Game.DaysUntilGoal = 1
		cfg.Game.GoalAmount = 1e12
	})

	// Recording mid-run is rejected.
	rec := doRequest(t, srv, http.MethodPost, "/api/leaderboard", map[string]any{"name": "alice"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	doRequest(t, srv, http.MethodPost, "/api/advance-day", nil)

	rec = doRequest(t, srv, http.MethodPost, "/api/leaderboard", map[string]any{"name": "alice"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var entry leaderboard.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entry))
	assert.Equal(t, "alice", entry.Name)
	assert.NotEmpty(t, entry.ID)

	rec = doRequest(t, srv, http.MethodGet, "/api/leaderboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []leaderboard.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Name)
}

func TestLeaderboardRequiresName(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/leaderboard", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
