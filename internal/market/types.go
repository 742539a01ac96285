package market

// CompanyID uniquely identifies a company.
type CompanyID string

// MinPrice is the hard floor for any share price.
const MinPrice = 0.01

// Company represents a tradeable simulated company.
// Identity fields never change; CurrentPrice and PriceHistory do.
type Company struct {
	ID          CompanyID `json:"id"`
	Name        string    `json:"name"`
	Ticker      string    `json:"ticker"`
	Description string    `json:"description"`
	Sector      string    `json:"sector"`

	InitialPrice float64 `json:"initialPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	// PriceHistory is chronological; the first entry is the initial price
	// and exactly one entry is appended per simulated day.
	PriceHistory []float64 `json:"priceHistory"`
	// Volatility in (0,1] scales how hard news sentiment hits this company.
	Volatility float64 `json:"volatility"`
}

// Clone returns a deep copy of the company.
func (c Company) Clone() Company {
	out := c
	out.PriceHistory = make([]float64, len(c.PriceHistory))
	copy(out.PriceHistory, c.PriceHistory)
	return out
}

// LastChange returns the most recent day-over-day price return,
// or 0 if there is not enough history.
func (c Company) LastChange() float64 {
	n := len(c.PriceHistory)
	if n < 2 || c.PriceHistory[n-2] == 0 {
		return 0
	}
	return (c.PriceHistory[n-1] - c.PriceHistory[n-2]) / c.PriceHistory[n-2]
}

// CloneAll deep-copies a company slice.
func CloneAll(companies []Company) []Company {
	out := make([]Company, len(companies))
	for i, c := range companies {
		out[i] = c.Clone()
	}
	return out
}

// Find returns the company with the given id, if present.
func Find(companies []Company, id CompanyID) (Company, bool) {
	for _, c := range companies {
		if c.ID == id {
			return c, true
		}
	}
	return Company{}, false
}
