package news

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zappabad/bullrush/internal/market"
)

const (
	// MaxPerDay is the maximum number of company-specific events per day.
	MaxPerDay = 3
	// marketWideChance is the independent chance of one extra
	// market-wide event on any given day.
	marketWideChance = 0.2
)

// Generate produces the day's news for the given companies: 1 to MaxPerDay
// company-specific events, optionally preceded by one market-wide event.
// It never fails on a non-empty company set and does not mutate its inputs.
func Generate(rng *rand.Rand, now time.Time, companies []market.Company) []Event {
	count := rng.Intn(MaxPerDay) + 1
	events := make([]Event, 0, count+1)

	if rng.Float64() < marketWideChance {
		tpl := pick(rng, templates[CategoryMarket])
		affected := make([]market.CompanyID, len(companies))
		for i, c := range companies {
			affected[i] = c.ID
		}
		events = append(events, newEvent(tpl, tpl.headline, affected, now))
	}

	for i := 0; i < count; i++ {
		company := companies[rng.Intn(len(companies))]
		tpl := pick(rng, templates[rollCategory(rng)])
		headline := strings.ReplaceAll(tpl.headline, "{company}", company.Name)
		events = append(events, newEvent(tpl, headline, []market.CompanyID{company.ID}, now))
	}

	return events
}

// rollCategory draws a company-news category:
// positive 40%, negative 40%, neutral 20%.
func rollCategory(rng *rand.Rand) Category {
	roll := rng.Float64()
	switch {
	case roll < 0.4:
		return CategoryPositive
	case roll < 0.8:
		return CategoryNegative
	default:
		return CategoryNeutral
	}
}

func pick(rng *rand.Rand, tpls []template) template {
	return tpls[rng.Intn(len(tpls))]
}

func newEvent(tpl template, headline string, affected []market.CompanyID, now time.Time) Event {
	return Event{
		ID:                uuid.NewString(),
		Headline:          headline,
		Body:              body(headline),
		AffectedCompanies: affected,
		Sentiment:         tpl.impact,
		Timestamp:         now.UnixMilli(),
	}
}

// body derives the article prose from the headline.
func body(headline string) string {
	return headline + ". Analysts are closely watching how this development will impact the company's financial performance and market position in the coming quarters."
}
