package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/bullrush/internal/news"
	"github.com/zappabad/bullrush/tui/styles"
)

// NewsPanel displays the trailing news window.
type NewsPanel struct {
	news          []news.Event
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int
}

// NewNewsPanel creates a new news panel.
func NewNewsPanel() *NewsPanel {
	return &NewsPanel{}
}

// Init initializes the panel.
func (p *NewsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *NewsPanel) Update(msg tea.Msg) (*NewsPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
				if p.selectedIndex < p.scrollOffset {
					p.scrollOffset = p.selectedIndex
				}
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.news)-1 {
				p.selectedIndex++
				visibleItems := p.height - 4
				if p.selectedIndex >= p.scrollOffset+visibleItems {
					p.scrollOffset = p.selectedIndex - visibleItems + 1
				}
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *NewsPanel) View() string {
	var content strings.Builder

	if len(p.news) == 0 {
		content.WriteString(lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("No news yet"))
	} else {
		visibleItems := p.height - 4
		if visibleItems < 1 {
			visibleItems = 1
		}

		start := p.scrollOffset
		end := start + visibleItems
		if end > len(p.news) {
			end = len(p.news)
		}

		for i := start; i < end; i++ {
			item := p.news[i]

			t := time.UnixMilli(item.Timestamp)
			timeStr := t.Format("15:04:05")

			headline := item.Headline
			if p.width > 18 && len(headline) > p.width-15 {
				headline = headline[:p.width-18] + "..."
			}

			var headlineStyle lipgloss.Style
			switch {
			case item.Sentiment > 0:
				headlineStyle = styles.PriceUpStyle
			case item.Sentiment < 0:
				headlineStyle = styles.PriceDownStyle
			default:
				headlineStyle = styles.NewsNormalStyle
			}

			line := fmt.Sprintf("%s %s",
				styles.TimeStyle.Render(timeStr),
				headlineStyle.Render(headline))

			if i == p.selectedIndex && p.focused {
				line = styles.SelectedRowStyle.Render(line)
			}

			content.WriteString(line)
			if i < end-1 {
				content.WriteString("\n")
			}
		}

		if len(p.news) > visibleItems {
			scrollInfo := fmt.Sprintf(" (%d/%d)", p.selectedIndex+1, len(p.news))
			content.WriteString("\n")
			content.WriteString(lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(scrollInfo))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📰 News", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *NewsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *NewsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetNews replaces the displayed news window.
func (p *NewsPanel) SetNews(items []news.Event) {
	p.news = items
	if p.selectedIndex >= len(p.news) {
		p.selectedIndex = len(p.news) - 1
		if p.selectedIndex < 0 {
			p.selectedIndex = 0
		}
	}
}

// Selected returns the currently selected news event.
func (p *NewsPanel) Selected() *news.Event {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.news) {
		return &p.news[p.selectedIndex]
	}
	return nil
}
