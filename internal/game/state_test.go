package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/bullrush/internal/market"
	"github.com/zappabad/bullrush/internal/portfolio"
)

func TestNewDefaults(t *testing.T) {
	s := New(DefaultConfig())

	assert.Equal(t, 1, s.Day)
	assert.Equal(t, 14, s.DaysUntilGoal)
	assert.Equal(t, 10500.0, s.GoalAmount)
	assert.Equal(t, 10000.0, s.Portfolio.Cash)
	assert.Equal(t, 10000.0, s.Portfolio.NetWorth)
	assert.Empty(t, s.Portfolio.Holdings)
	assert.Empty(t, s.News)
	assert.Equal(t, 0.0, s.MarketTrend)
	assert.Equal(t, SpeedNormal, s.Speed)
	assert.False(t, s.Paused)
	assert.Equal(t, StatusActive, s.Status)

	require.Len(t, s.Companies, 8)
	for _, c := range s.Companies {
		assert.Equal(t, c.InitialPrice, c.CurrentPrice, "company %s", c.ID)
		require.Len(t, c.PriceHistory, 1, "company %s", c.ID)
		assert.Equal(t, c.InitialPrice, c.PriceHistory[0], "company %s", c.ID)
	}
}

func TestNewCustomUniverse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Companies = []market.Company{
		{ID: "solo", Name: "Solo Inc", Ticker: "SOLO", InitialPrice: 10, CurrentPrice: 10, PriceHistory: []float64{10}, Volatility: 0.5},
	}
	s := New(cfg)

	require.Len(t, s.Companies, 1)
	assert.Equal(t, market.CompanyID("solo"), s.Companies[0].ID)

	// The snapshot owns its own copy of the universe.
	cfg.Companies[0].CurrentPrice = 99
	assert.Equal(t, 10.0, s.Companies[0].CurrentPrice)
}

func TestCloneIsDeep(t *testing.T) {
	s := New(DefaultConfig())
	c := s.Clone()

	c.Companies[0].CurrentPrice = 1
	c.Companies[0].PriceHistory[0] = 1
	c.Portfolio.Cash = 1
	c.Portfolio.Holdings["tech-1"] = portfolio.Holding{Shares: 1, AveragePurchasePrice: 1}

	assert.NotEqual(t, 1.0, s.Companies[0].CurrentPrice)
	assert.NotEqual(t, 1.0, s.Companies[0].PriceHistory[0])
	assert.Equal(t, 10000.0, s.Portfolio.Cash)
	assert.Empty(t, s.Portfolio.Holdings)
}

func TestCompanyLookup(t *testing.T) {
	s := New(DefaultConfig())

	c, ok := s.Company("tech-1")
	require.True(t, ok)
	assert.Equal(t, "NTS", c.Ticker)

	_, ok = s.Company("nope")
	assert.False(t, ok)
}
