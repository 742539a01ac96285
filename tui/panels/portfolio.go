package panels

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/bullrush/internal/game"
	"github.com/zappabad/bullrush/internal/market"
	"github.com/zappabad/bullrush/tui/styles"
)

// PortfolioPanel displays cash, goal progress, and open positions.
type PortfolioPanel struct {
	state   game.State
	focused bool
	width   int
	height  int
}

// NewPortfolioPanel creates a new portfolio panel.
func NewPortfolioPanel(state game.State) *PortfolioPanel {
	return &PortfolioPanel{state: state}
}

// Init initializes the panel.
func (p *PortfolioPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *PortfolioPanel) Update(msg tea.Msg) (*PortfolioPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *PortfolioPanel) View() string {
	var content strings.Builder

	pf := p.state.Portfolio

	content.WriteString(fmt.Sprintf("%s %s    %s %s\n",
		styles.LabelStyle.Render("Cash:"),
		styles.PriceStyle.Render(styles.FormatMoney(pf.Cash)),
		styles.LabelStyle.Render("Net Worth:"),
		styles.PriceStyle.Render(styles.FormatMoney(pf.NetWorth)),
	))
	content.WriteString(fmt.Sprintf("%s %s    %s %d\n\n",
		styles.LabelStyle.Render("Goal:"),
		styles.PriceStyle.Render(styles.FormatMoney(p.state.GoalAmount)),
		styles.LabelStyle.Render("Days left:"),
		p.state.DaysUntilGoal,
	))

	if len(pf.Holdings) == 0 {
		content.WriteString(lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("No positions"))
	} else {
		header := fmt.Sprintf("%-6s %8s %12s %12s %9s",
			"Ticker", "Shares", "Avg Cost", "Value", "P/L")
		content.WriteString(styles.HeaderStyle.Render(header))
		content.WriteString("\n")

		ids := make([]market.CompanyID, 0, len(pf.Holdings))
		for id := range pf.Holdings {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		for _, id := range ids {
			h := pf.Holdings[id]
			c, ok := p.state.Company(id)
			if !ok {
				continue
			}

			value := float64(h.Shares) * c.CurrentPrice
			cost := float64(h.Shares) * h.AveragePurchasePrice
			pl := value - cost

			plStyle := styles.PriceStyle
			if pl > 0 {
				plStyle = styles.PriceUpStyle
			} else if pl < 0 {
				plStyle = styles.PriceDownStyle
			}

			content.WriteString(fmt.Sprintf("%-6s %8d %12s %12s %9s\n",
				c.Ticker,
				h.Shares,
				styles.FormatMoney(h.AveragePurchasePrice),
				styles.FormatMoney(value),
				plStyle.Render(styles.FormatMoney(pl)),
			))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("💼 Portfolio", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *PortfolioPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *PortfolioPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetState replaces the displayed snapshot.
func (p *PortfolioPanel) SetState(state game.State) {
	p.state = state
}
