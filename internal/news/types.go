package news

import "github.com/zappabad/bullrush/internal/market"

// Category is the closed set of news categories.
type Category uint8

const (
	CategoryPositive Category = iota
	CategoryNegative
	CategoryNeutral
	CategoryMarket
)

func (c Category) String() string {
	switch c {
	case CategoryPositive:
		return "POSITIVE"
	case CategoryNegative:
		return "NEGATIVE"
	case CategoryNeutral:
		return "NEUTRAL"
	case CategoryMarket:
		return "MARKET"
	default:
		return "UNKNOWN"
	}
}

// Event is a single news item. Immutable once created.
type Event struct {
	ID       string `json:"id"`
	Headline string `json:"headline"`
	Body     string `json:"body"`
	// AffectedCompanies is a singleton for company news, or the full
	// universe for market-wide news.
	AffectedCompanies []market.CompanyID `json:"affectedCompanies"`
	Sentiment         float64            `json:"sentiment"`
	Timestamp         int64              `json:"timestamp"` // epoch millis
}

// Affects reports whether the event moves the given company's price.
// An event covering the whole universe is market-wide and affects everyone.
func (e Event) Affects(id market.CompanyID, universeSize int) bool {
	if len(e.AffectedCompanies) == universeSize {
		return true
	}
	for _, affected := range e.AffectedCompanies {
		if affected == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the event.
func (e Event) Clone() Event {
	out := e
	out.AffectedCompanies = make([]market.CompanyID, len(e.AffectedCompanies))
	copy(out.AffectedCompanies, e.AffectedCompanies)
	return out
}

// CloneAll deep-copies an event slice.
func CloneAll(events []Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}
