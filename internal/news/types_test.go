package news

import (
	"testing"

	"github.com/zappabad/bullrush/internal/market"
)

func TestAffects(t *testing.T) {
	single := Event{AffectedCompanies: []market.CompanyID{"a"}}
	if !single.Affects("a", 3) {
		t.Error("event should affect its target company")
	}
	if single.Affects("b", 3) {
		t.Error("event should not affect unrelated company")
	}

	marketWide := Event{AffectedCompanies: []market.CompanyID{"a", "b", "c"}}
	if !marketWide.Affects("c", 3) {
		t.Error("market-wide event should affect every company")
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryPositive, "POSITIVE"},
		{CategoryNegative, "NEGATIVE"},
		{CategoryNeutral, "NEUTRAL"},
		{CategoryMarket, "MARKET"},
		{Category(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Event{ID: "x", AffectedCompanies: []market.CompanyID{"a"}}
	c := orig.Clone()
	c.AffectedCompanies[0] = "b"

	if orig.AffectedCompanies[0] != "a" {
		t.Fatal("clone shares affected companies with original")
	}
}
