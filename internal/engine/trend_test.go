package engine

import (
	"math"
	"testing"

	"github.com/zappabad/bullrush/internal/market"
)

func companyWithHistory(id string, history ...float64) market.Company {
	return market.Company{
		ID:           market.CompanyID(id),
		CurrentPrice: history[len(history)-1],
		PriceHistory: history,
	}
}

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name      string
		companies []market.Company
		want      float64
	}{
		{
			name:      "empty universe",
			companies: nil,
			want:      0,
		},
		{
			name: "single day of history contributes nothing",
			companies: []market.Company{
				companyWithHistory("a", 100),
				companyWithHistory("b", 50),
			},
			want: 0,
		},
		{
			name: "uniform 2 percent move",
			companies: []market.Company{
				companyWithHistory("a", 100, 102),
				companyWithHistory("b", 50, 51),
			},
			want: 0.1, // 0.02 average return x5
		},
		{
			name: "mixed moves cancel",
			companies: []market.Company{
				companyWithHistory("a", 100, 110),
				companyWithHistory("b", 100, 90),
			},
			want: 0,
		},
		{
			name: "strong rally clamps at 1",
			companies: []market.Company{
				companyWithHistory("a", 100, 150),
			},
			want: 1,
		},
		{
			name: "crash clamps at -1",
			companies: []market.Company{
				companyWithHistory("a", 100, 20),
			},
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTrend(tt.companies)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ComputeTrend() = %v, want %v", got, tt.want)
			}
		})
	}
}
