package engine

import "github.com/zappabad/bullrush/internal/market"

// ComputeTrend aggregates each company's latest day-over-day return into a
// single sentiment scalar in [-1,1]. Companies without two history points
// contribute nothing. The result feeds the NEXT day's drift, so the trend
// always lags realized moves by one day.
func ComputeTrend(companies []market.Company) float64 {
	if len(companies) == 0 {
		return 0
	}
	var total float64
	for _, c := range companies {
		total += c.LastChange()
	}
	return clamp(total/float64(len(companies))*5, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
