package market

import (
	"math"
	"testing"
)

func TestCloneIsDeep(t *testing.T) {
	orig := Company{ID: "a", CurrentPrice: 100, PriceHistory: []float64{90, 100}}
	c := orig.Clone()
	c.PriceHistory[0] = 1

	if orig.PriceHistory[0] != 90 {
		t.Fatalf("clone shares history with original: %v", orig.PriceHistory)
	}
}

func TestLastChange(t *testing.T) {
	tests := []struct {
		name    string
		history []float64
		want    float64
	}{
		{"empty", nil, 0},
		{"single entry", []float64{100}, 0},
		{"up 10 percent", []float64{100, 110}, 0.1},
		{"down 5 percent", []float64{100, 110, 104.5}, -0.05},
		{"zero previous price", []float64{0, 50}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Company{PriceHistory: tt.history}
			if got := c.LastChange(); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("LastChange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	companies := Universe()

	c, ok := Find(companies, "tech-1")
	if !ok {
		t.Fatal("expected to find tech-1")
	}
	if c.Name != "NexaTech Solutions" {
		t.Fatalf("unexpected company: %q", c.Name)
	}

	if _, ok := Find(companies, "nope"); ok {
		t.Fatal("found a company that does not exist")
	}
}

func TestUniverse(t *testing.T) {
	companies := Universe()
	if len(companies) != 8 {
		t.Fatalf("universe has %d companies, want 8", len(companies))
	}

	seen := map[CompanyID]bool{}
	for _, c := range companies {
		if seen[c.ID] {
			t.Fatalf("duplicate company id %q", c.ID)
		}
		seen[c.ID] = true

		if c.CurrentPrice != c.InitialPrice {
			t.Errorf("%s: current price %v != initial price %v", c.ID, c.CurrentPrice, c.InitialPrice)
		}
		if len(c.PriceHistory) != 1 || c.PriceHistory[0] != c.InitialPrice {
			t.Errorf("%s: history should start with the initial price, got %v", c.ID, c.PriceHistory)
		}
		if c.Volatility <= 0 || c.Volatility > 1 {
			t.Errorf("%s: volatility %v out of range (0,1]", c.ID, c.Volatility)
		}
	}

	// Each call returns an independent copy.
	companies[0].PriceHistory[0] = 1
	if fresh := Universe(); fresh[0].PriceHistory[0] == 1 {
		t.Fatal("Universe() shares state between calls")
	}
}
