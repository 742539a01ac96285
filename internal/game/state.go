// Package game owns the immutable game snapshot and the one-day transition
// that composes news, price evolution, trend tracking, and portfolio
// valuation. Every operation returns a fresh snapshot built from the old one.
package game

import (
	"github.com/zappabad/bullrush/internal/market"
	"github.com/zappabad/bullrush/internal/news"
	"github.com/zappabad/bullrush/internal/portfolio"
)

// Status is the game's lifecycle state. Won and Lost are terminal and
// sticky: once set, further day advances are no-ops.
type Status string

const (
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusLost   Status = "lost"
)

// Speed controls how fast the presentation layer auto-advances days.
// The engine itself does not consume it.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

// NewsWindow is how many trailing news events a snapshot retains.
const NewsWindow = 10

// State is the complete game snapshot at a point in time.
type State struct {
	Day           int                 `json:"day"`
	DaysUntilGoal int                 `json:"daysUntilGoal"`
	GoalAmount    float64             `json:"goalAmount"`
	Companies     []market.Company    `json:"companies"`
	News          []news.Event        `json:"news"`
	Portfolio     portfolio.Portfolio `json:"portfolio"`
	MarketTrend   float64             `json:"marketTrend"`
	Speed         Speed               `json:"gameSpeed"`
	Paused        bool                `json:"isPaused"`
	Status        Status              `json:"status"`
}

// Config holds the starting parameters for a run.
type Config struct {
	// StartingCash is the player's opening cash balance.
	StartingCash float64
	// GoalAmount is the net worth that wins the game.
	GoalAmount float64
	// DaysUntilGoal is how many days the player has to reach the goal.
	DaysUntilGoal int
	// Companies is the tradeable universe; nil means the default universe.
	Companies []market.Company
}

// DefaultConfig returns the standard run: $10,000 cash, $10,500 goal,
// 14 days, the default 8-company universe.
func DefaultConfig() Config {
	return Config{
		StartingCash:  10000,
		GoalAmount:    10500,
		DaysUntilGoal: 14,
	}
}

// New creates the day-1 snapshot for the given configuration.
func New(cfg Config) State {
	companies := cfg.Companies
	if companies == nil {
		companies = market.Universe()
	}
	return State{
		Day:           1,
		DaysUntilGoal: cfg.DaysUntilGoal,
		GoalAmount:    cfg.GoalAmount,
		Companies:     market.CloneAll(companies),
		News:          []news.Event{},
		Portfolio:     portfolio.New(cfg.StartingCash),
		MarketTrend:   0,
		Speed:         SpeedNormal,
		Status:        StatusActive,
	}
}

// Clone returns a deep copy of the snapshot.
func (s State) Clone() State {
	out := s
	out.Companies = market.CloneAll(s.Companies)
	out.News = news.CloneAll(s.News)
	out.Portfolio = s.Portfolio.Clone()
	return out
}

// Company returns the company with the given id from this snapshot.
func (s State) Company(id market.CompanyID) (market.Company, bool) {
	return market.Find(s.Companies, id)
}

// WithPortfolio returns a copy of the snapshot carrying the given portfolio.
func (s State) WithPortfolio(p portfolio.Portfolio) State {
	out := s.Clone()
	out.Portfolio = p.Clone()
	return out
}
