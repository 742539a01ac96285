package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/bullrush/internal/market"
	"github.com/zappabad/bullrush/tui/styles"
)

// MarketPanel displays current prices for all companies.
type MarketPanel struct {
	companies     []market.Company
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewMarketPanel creates a new market panel.
func NewMarketPanel(companies []market.Company) *MarketPanel {
	return &MarketPanel{companies: companies}
}

// Init initializes the panel.
func (p *MarketPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *MarketPanel) Update(msg tea.Msg) (*MarketPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.companies)-1 {
				p.selectedIndex++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *MarketPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-6s %-22s %12s %9s %6s",
		"Ticker", "Company", "Price", "Change", "Vol")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	for i, c := range p.companies {
		change := c.LastChange()

		changeStyle := styles.PriceStyle
		if change > 0 {
			changeStyle = styles.PriceUpStyle
		} else if change < 0 {
			changeStyle = styles.PriceDownStyle
		}

		line := fmt.Sprintf("%-6s %-22s %12s %9s %6.1f",
			c.Ticker,
			truncate(c.Name, 22),
			styles.FormatMoney(c.CurrentPrice),
			changeStyle.Render(styles.FormatChange(change)),
			c.Volatility,
		)

		if i == p.selectedIndex && p.focused {
			line = styles.SelectedRowStyle.Render(line)
		} else {
			line = styles.RowStyle.Render(line)
		}

		content.WriteString(line)
		if i < len(p.companies)-1 {
			content.WriteString("\n")
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📈 Market", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *MarketPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *MarketPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetCompanies replaces the displayed companies.
func (p *MarketPanel) SetCompanies(companies []market.Company) {
	p.companies = companies
	if p.selectedIndex >= len(p.companies) {
		p.selectedIndex = 0
	}
}

// Selected returns the currently selected company.
func (p *MarketPanel) Selected() (market.Company, bool) {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.companies) {
		return p.companies[p.selectedIndex], true
	}
	return market.Company{}, false
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
