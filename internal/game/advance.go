package game

import (
	"math/rand"
	"time"

	"github.com/zappabad/bullrush/internal/engine"
	"github.com/zappabad/bullrush/internal/news"
	"github.com/zappabad/bullrush/internal/portfolio"
)

// AdvanceDay runs one full day transition and returns the next snapshot:
// generate news, evolve prices under the PREVIOUS day's trend, recompute the
// trend from the realized moves, revalue the portfolio, tick the counters,
// trim the news window, and settle the win/lose status. A terminal snapshot
// is returned unchanged.
func AdvanceDay(rng *rand.Rand, now time.Time, s State) State {
	if s.Status != StatusActive {
		return s.Clone()
	}

	events := news.Generate(rng, now, s.Companies)
	companies := engine.EvolvePrices(rng, s.Companies, events, s.MarketTrend)
	trend := engine.ComputeTrend(companies)

	p := s.Portfolio.Clone()
	p.NetWorth = portfolio.Value(p, companies)

	out := s.Clone()
	out.Day++
	out.DaysUntilGoal--
	out.Companies = companies
	out.News = trimNews(append(out.News, events...))
	out.Portfolio = p
	out.MarketTrend = trend

	// Won wins over Lost when both land on the final day.
	switch {
	case p.NetWorth >= out.GoalAmount:
		out.Status = StatusWon
	case out.DaysUntilGoal <= 0:
		out.Status = StatusLost
	}
	return out
}

func trimNews(events []news.Event) []news.Event {
	if len(events) <= NewsWindow {
		return events
	}
	return events[len(events)-NewsWindow:]
}
