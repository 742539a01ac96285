package market

// Universe returns the starting set of companies. Each gets a fresh
// single-entry price history so callers can mutate freely.
func Universe() []Company {
	companies := []Company{
		{
			ID:           "tech-1",
			Name:         "NexaTech Solutions",
			Ticker:       "NTS",
			Description:  "Leading provider of cloud computing and AI solutions",
			Sector:       "Technology",
			InitialPrice: 245.75,
			Volatility:   0.8,
		},
		{
			ID:           "tech-2",
			Name:         "Quantum Dynamics",
			Ticker:       "QDY",
			Description:  "Specializes in quantum computing and advanced algorithms",
			Sector:       "Technology",
			InitialPrice: 189.30,
			Volatility:   0.9,
		},
		{
			ID:           "energy-1",
			Name:         "SolarPeak Energy",
			Ticker:       "SPE",
			Description:  "Renewable energy company focused on solar power solutions",
			Sector:       "Energy",
			InitialPrice: 78.45,
			Volatility:   0.6,
		},
		{
			ID:           "finance-1",
			Name:         "Atlas Financial Group",
			Ticker:       "AFG",
			Description:  "Global financial services and investment management",
			Sector:       "Finance",
			InitialPrice: 156.20,
			Volatility:   0.5,
		},
		{
			ID:           "health-1",
			Name:         "BioGenesis Labs",
			Ticker:       "BGL",
			Description:  "Biotechnology company developing innovative treatments",
			Sector:       "Healthcare",
			InitialPrice: 112.80,
			Volatility:   0.7,
		},
		{
			ID:           "consumer-1",
			Name:         "Evergreen Goods",
			Ticker:       "EVG",
			Description:  "Consumer goods company with sustainable product lines",
			Sector:       "Consumer Goods",
			InitialPrice: 67.35,
			Volatility:   0.4,
		},
		{
			ID:           "manufacturing-1",
			Name:         "Titan Industries",
			Ticker:       "TTI",
			Description:  "Heavy machinery and industrial equipment manufacturer",
			Sector:       "Manufacturing",
			InitialPrice: 92.15,
			Volatility:   0.5,
		},
		{
			ID:           "retail-1",
			Name:         "Urban Marketplace",
			Ticker:       "UMP",
			Description:  "E-commerce platform for urban lifestyle products",
			Sector:       "Retail",
			InitialPrice: 45.60,
			Volatility:   0.6,
		},
	}

	for i := range companies {
		companies[i].CurrentPrice = companies[i].InitialPrice
		companies[i].PriceHistory = []float64{companies[i].InitialPrice}
	}
	return companies
}
