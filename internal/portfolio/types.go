package portfolio

import "github.com/zappabad/bullrush/internal/market"

// TransactionType tags a ledger entry as a buy or a sell.
type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionSell TransactionType = "sell"
)

// Holding is a position in one company. It exists only while Shares > 0.
type Holding struct {
	Shares int64 `json:"shares"`
	// AveragePurchasePrice is the weighted average cost across all buys.
	// Selling does not change it.
	AveragePurchasePrice float64 `json:"averagePurchasePrice"`
}

// Transaction is an immutable, append-only ledger entry.
type Transaction struct {
	ID            string           `json:"id"`
	Type          TransactionType  `json:"type"`
	CompanyID     market.CompanyID `json:"companyId"`
	Ticker        string           `json:"ticker"`
	Shares        int64            `json:"shares"`
	PricePerShare float64          `json:"pricePerShare"`
	TotalAmount   float64          `json:"totalAmount"`
	Timestamp     int64            `json:"timestamp"` // epoch millis
}

// Portfolio is the player's cash, positions, and trade history.
// NetWorth is derived; it is recomputed after every mutation and never
// hand-edited.
type Portfolio struct {
	Cash               float64                      `json:"cash"`
	Holdings           map[market.CompanyID]Holding `json:"holdings"`
	TransactionHistory []Transaction                `json:"transactionHistory"`
	NetWorth           float64                      `json:"netWorth"`
}

// New returns an empty portfolio holding only cash.
func New(cash float64) Portfolio {
	return Portfolio{
		Cash:               cash,
		Holdings:           make(map[market.CompanyID]Holding),
		TransactionHistory: []Transaction{},
		NetWorth:           cash,
	}
}

// Clone returns a deep copy of the portfolio.
func (p Portfolio) Clone() Portfolio {
	out := p
	out.Holdings = make(map[market.CompanyID]Holding, len(p.Holdings))
	for id, h := range p.Holdings {
		out.Holdings[id] = h
	}
	out.TransactionHistory = make([]Transaction, len(p.TransactionHistory))
	copy(out.TransactionHistory, p.TransactionHistory)
	return out
}

// Value marks the portfolio to market: cash plus every holding valued at the
// company's current price.
func Value(p Portfolio, companies []market.Company) float64 {
	total := p.Cash
	for id, h := range p.Holdings {
		if c, ok := market.Find(companies, id); ok {
			total += float64(h.Shares) * c.CurrentPrice
		}
	}
	return total
}
