// Package engine holds the daily price transition: base noise, market-trend
// drift, and news sentiment, plus the trend computed from realized returns.
package engine

import (
	"math/rand"

	"github.com/zappabad/bullrush/internal/market"
	"github.com/zappabad/bullrush/internal/news"
)

const (
	// BaseFluctuation is the daily noise amplitude applied to every price.
	BaseFluctuation = 0.02
	// trendDrift scales how much of the market trend bleeds into each price.
	trendDrift = 0.01
)

// EvolvePrices advances every company's price by one day and returns the
// updated copies; inputs are not mutated. Per company:
//
//	change = uniform(-1,1)*BaseFluctuation + marketTrend*trendDrift
//	       + sum(sentiment*volatility) over news affecting it
//
// The new price is floored at market.MinPrice and appended to the history.
func EvolvePrices(rng *rand.Rand, companies []market.Company, events []news.Event, marketTrend float64) []market.Company {
	out := market.CloneAll(companies)
	for i := range out {
		c := &out[i]

		change := (rng.Float64()*2 - 1) * BaseFluctuation
		change += marketTrend * trendDrift
		for _, ev := range events {
			if ev.Affects(c.ID, len(out)) {
				change += ev.Sentiment * c.Volatility
			}
		}

		price := c.CurrentPrice * (1 + change)
		if price < market.MinPrice {
			price = market.MinPrice
		}
		c.PriceHistory = append(c.PriceHistory, price)
		c.CurrentPrice = price
	}
	return out
}
