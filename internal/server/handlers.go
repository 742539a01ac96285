package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/zappabad/bullrush/internal/game"
	gameservice "github.com/zappabad/bullrush/internal/game/service"
	"github.com/zappabad/bullrush/internal/leaderboard"
	"github.com/zappabad/bullrush/internal/market"
	"github.com/zappabad/bullrush/internal/portfolio"
)

// orderRequest is the body for /api/buy and /api/sell.
type orderRequest struct {
	CompanyID market.CompanyID `json:"companyId"`
	Shares    int64            `json:"shares"`
}

type speedRequest struct {
	Speed game.Speed `json:"gameSpeed"`
}

type leaderboardRequest struct {
	Name string `json:"name"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "bullrush",
	})
}

// handleGetGameState returns the current snapshot
func (s *Server) handleGetGameState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.State())
}

// handleRestoreGameState replaces the snapshot (save/load support)
func (s *Server) handleRestoreGameState(w http.ResponseWriter, r *http.Request) {
	var state game.State
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid game state payload")
		return
	}

	restored, err := s.session.Restore(state)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, restored)
}

// handleAdvanceDay advances the simulation by one day
func (s *Server) handleAdvanceDay(w http.ResponseWriter, r *http.Request) {
	state, err := s.session.AdvanceDay()
	if err != nil {
		if errors.Is(err, gameservice.ErrGameOver) {
			s.writeError(w, http.StatusConflict, err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

// handleBuy executes a buy order
func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeOrder(w, r)
	if !ok {
		return
	}
	state, err := s.session.Buy(req.CompanyID, req.Shares)
	if err != nil {
		s.writeLedgerError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

// handleSell executes a sell order
func (s *Server) handleSell(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeOrder(w, r)
	if !ok {
		return
	}
	state, err := s.session.Sell(req.CompanyID, req.Shares)
	if err != nil {
		s.writeLedgerError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

// handleReset starts a fresh run
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.Reset())
}

// handleSetSpeed updates the game speed
func (s *Server) handleSetSpeed(w http.ResponseWriter, r *http.Request) {
	var req speedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	switch req.Speed {
	case game.SpeedSlow, game.SpeedNormal, game.SpeedFast:
	default:
		s.writeError(w, http.StatusBadRequest, "unknown game speed")
		return
	}
	s.writeJSON(w, http.StatusOK, s.session.SetSpeed(req.Speed))
}

// handleTogglePause flips the pause flag
func (s *Server) handleTogglePause(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.TogglePause())
}

// handleGetLeaderboard returns the best finished runs
func (s *Server) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.board.Top(10)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load leaderboard")
		s.writeError(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

// handleAddLeaderboard records the current run on the leaderboard
func (s *Server) handleAddLeaderboard(w http.ResponseWriter, r *http.Request) {
	var req leaderboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "a player name is required")
		return
	}

	state := s.session.State()
	if state.Status == game.StatusActive {
		s.writeError(w, http.StatusConflict, "game is still in progress")
		return
	}

	entry, err := s.board.Add(leaderboard.Entry{
		Name:       req.Name,
		NetWorth:   state.Portfolio.NetWorth,
		Day:        state.Day,
		FinishedAt: time.Now().UnixMilli(),
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to record run")
		s.writeError(w, http.StatusInternalServerError, "failed to record run")
		return
	}
	s.writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) decodeOrder(w http.ResponseWriter, r *http.Request) (orderRequest, bool) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request payload")
		return orderRequest{}, false
	}
	if req.CompanyID == "" {
		s.writeError(w, http.StatusBadRequest, "companyId is required")
		return orderRequest{}, false
	}
	return req, true
}

// writeLedgerError maps ledger errors onto HTTP statuses.
func (s *Server) writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, portfolio.ErrUnknownCompany):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, portfolio.ErrInvalidQuantity),
		errors.Is(err, portfolio.ErrInsufficientFunds),
		errors.Is(err, portfolio.ErrNoPosition),
		errors.Is(err, portfolio.ErrInsufficientShares):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
