package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/zappabad/bullrush/internal/game"
	"github.com/zappabad/bullrush/internal/market"
	"github.com/zappabad/bullrush/internal/portfolio"
)

var (
	// ErrGameOver is returned for day advances after a terminal snapshot.
	ErrGameOver = errors.New("game is over")
	// ErrInvalidState is returned when a restored snapshot is unusable.
	ErrInvalidState = errors.New("invalid game state")
)

// Session owns the authoritative snapshot for one game and serializes every
// operation that reads-then-writes it. The engine transitions themselves are
// pure; the mutex is the single-writer discipline around them.
type Session struct {
	cfg Config
	log zerolog.Logger

	mu    sync.Mutex
	rng   *rand.Rand
	state game.State
	now   func() time.Time
}

// NewSession creates a session with a fresh day-1 snapshot.
func NewSession(cfg Config, log zerolog.Logger) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		cfg:   cfg,
		log:   log.With().Str("component", "session").Logger(),
		rng:   rand.New(rand.NewSource(seed)),
		state: game.New(cfg.Game),
		now:   time.Now,
	}
}

// State returns a copy of the current snapshot.
func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// AdvanceDay advances the game by one day and returns the new snapshot.
// Returns ErrGameOver once the game has ended.
func (s *Session) AdvanceDay() (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Status != game.StatusActive {
		return s.state.Clone(), ErrGameOver
	}

	s.state = game.AdvanceDay(s.rng, s.now(), s.state)

	s.log.Info().
		Int("day", s.state.Day).
		Int("days_left", s.state.DaysUntilGoal).
		Float64("net_worth", s.state.Portfolio.NetWorth).
		Float64("trend", s.state.MarketTrend).
		Str("status", string(s.state.Status)).
		Msg("day advanced")
	return s.state.Clone(), nil
}

// Buy purchases shares of the given company at its current price.
func (s *Session) Buy(id market.CompanyID, shares int64) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := portfolio.Buy(s.state.Portfolio, s.state.Companies, id, shares, s.now())
	if err != nil {
		s.log.Debug().Err(err).Str("company", string(id)).Int64("shares", shares).Msg("buy rejected")
		return s.state.Clone(), err
	}
	s.state = s.state.WithPortfolio(p)

	s.log.Info().
		Str("company", string(id)).
		Int64("shares", shares).
		Float64("cash", p.Cash).
		Float64("net_worth", p.NetWorth).
		Msg("buy executed")
	return s.state.Clone(), nil
}

// Sell disposes shares of the given company at its current price.
func (s *Session) Sell(id market.CompanyID, shares int64) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := portfolio.Sell(s.state.Portfolio, s.state.Companies, id, shares, s.now())
	if err != nil {
		s.log.Debug().Err(err).Str("company", string(id)).Int64("shares", shares).Msg("sell rejected")
		return s.state.Clone(), err
	}
	s.state = s.state.WithPortfolio(p)

	s.log.Info().
		Str("company", string(id)).
		Int64("shares", shares).
		Float64("cash", p.Cash).
		Float64("net_worth", p.NetWorth).
		Msg("sell executed")
	return s.state.Clone(), nil
}

// Restore replaces the current snapshot, e.g. when loading a saved game.
func (s *Session) Restore(state game.State) (game.State, error) {
	if len(state.Companies) == 0 {
		return game.State{}, ErrInvalidState
	}
	if state.Status == "" {
		state.Status = game.StatusActive
	}
	if state.Portfolio.Holdings == nil {
		state.Portfolio.Holdings = map[market.CompanyID]portfolio.Holding{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
	s.log.Info().Int("day", s.state.Day).Msg("state restored")
	return s.state.Clone(), nil
}

// Reset discards the current run and starts over from day 1.
func (s *Session) Reset() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = game.New(s.cfg.Game)
	s.log.Info().Msg("game reset")
	return s.state.Clone()
}

// SetSpeed updates the presentation speed stored on the snapshot.
func (s *Session) SetSpeed(speed game.Speed) game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	next.Speed = speed
	s.state = next
	return s.state.Clone()
}

// TogglePause flips the pause flag stored on the snapshot.
func (s *Session) TogglePause() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	next.Paused = !next.Paused
	s.state = next
	return s.state.Clone()
}
