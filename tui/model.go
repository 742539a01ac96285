package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/bullrush/internal/game"
	gameservice "github.com/zappabad/bullrush/internal/game/service"
	"github.com/zappabad/bullrush/internal/portfolio"
	"github.com/zappabad/bullrush/tui/panels"
	"github.com/zappabad/bullrush/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusMarket PanelFocus = iota
	FocusPortfolio
	FocusNews
	FocusOrderInput
)

const panelCount = 4

// Model is the main TUI application model.
type Model struct {
	session *gameservice.Session
	state   game.State

	marketPanel     *panels.MarketPanel
	portfolioPanel  *panels.PortfolioPanel
	newsPanel       *panels.NewsPanel
	orderInputPanel *panels.OrderInputPanel

	focusedPanel PanelFocus

	width  int
	height int

	statusMsg string
	ready     bool
}

// NewModel creates a new TUI model bound to a game session.
func NewModel(session *gameservice.Session) *Model {
	state := session.State()

	m := &Model{
		session:         session,
		state:           state,
		marketPanel:     panels.NewMarketPanel(state.Companies),
		portfolioPanel:  panels.NewPortfolioPanel(state),
		newsPanel:       panels.NewNewsPanel(),
		orderInputPanel: panels.NewOrderInputPanel(state.Companies),
		focusedPanel:    FocusMarket,
	}
	m.applyFocus()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.marketPanel.Init(),
		m.portfolioPanel.Init(),
		m.newsPanel.Init(),
		m.orderInputPanel.Init(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.focusedPanel != FocusOrderInput || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "tab":
			m.focusedPanel = (m.focusedPanel + 1) % panelCount
			m.applyFocus()
			return m, nil

		case "shift+tab":
			m.focusedPanel = (m.focusedPanel + panelCount - 1) % panelCount
			m.applyFocus()
			return m, nil

		case "n":
			if m.focusedPanel != FocusOrderInput {
				m.advanceDay()
				return m, nil
			}

		case "p":
			if m.focusedPanel != FocusOrderInput {
				m.setState(m.session.TogglePause())
				return m, nil
			}

		case "r":
			if m.focusedPanel != FocusOrderInput {
				m.setState(m.session.Reset())
				m.statusMsg = "New game started"
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case panels.OrderSubmitMsg:
		m.placeOrder(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.marketPanel, cmd = m.marketPanel.Update(msg)
	cmds = append(cmds, cmd)
	m.portfolioPanel, cmd = m.portfolioPanel.Update(msg)
	cmds = append(cmds, cmd)
	m.newsPanel, cmd = m.newsPanel.Update(msg)
	cmds = append(cmds, cmd)
	m.orderInputPanel, cmd = m.orderInputPanel.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) advanceDay() {
	state, err := m.session.AdvanceDay()
	if err != nil {
		m.statusMsg = "Game over - press r to start a new run"
		return
	}
	m.setState(state)

	switch state.Status {
	case game.StatusWon:
		m.statusMsg = "You reached your goal! Press r to play again"
	case game.StatusLost:
		m.statusMsg = "Out of time. Press r to try again"
	default:
		m.statusMsg = fmt.Sprintf("Day %d - %d days left", state.Day, state.DaysUntilGoal)
	}
}

func (m *Model) placeOrder(order panels.OrderSubmitMsg) {
	var (
		state game.State
		err   error
	)
	if order.Type == portfolio.TransactionBuy {
		state, err = m.session.Buy(order.CompanyID, order.Shares)
	} else {
		state, err = m.session.Sell(order.CompanyID, order.Shares)
	}
	if err != nil {
		m.orderInputPanel.SetError(err.Error())
		return
	}
	m.setState(state)
	m.statusMsg = fmt.Sprintf("%s %d shares", strings.ToUpper(string(order.Type)), order.Shares)
}

func (m *Model) setState(state game.State) {
	m.state = state
	m.marketPanel.SetCompanies(state.Companies)
	m.portfolioPanel.SetState(state)
	m.newsPanel.SetNews(state.News)
	m.orderInputPanel.SetCompanies(state.Companies)
}

func (m *Model) applyFocus() {
	m.marketPanel.SetFocus(m.focusedPanel == FocusMarket)
	m.portfolioPanel.SetFocus(m.focusedPanel == FocusPortfolio)
	m.newsPanel.SetFocus(m.focusedPanel == FocusNews)
	m.orderInputPanel.SetFocus(m.focusedPanel == FocusOrderInput)
}

func (m *Model) layout() {
	if !m.ready {
		return
	}
	halfW := m.width / 2
	halfH := (m.height - 2) / 2

	m.marketPanel.SetSize(halfW, halfH)
	m.portfolioPanel.SetSize(m.width-halfW, halfH)
	m.newsPanel.SetSize(halfW, m.height-2-halfH)
	m.orderInputPanel.SetSize(m.width-halfW, m.height-2-halfH)
}

// View renders the full screen.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.marketPanel.View(),
		m.portfolioPanel.View(),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.newsPanel.View(),
		m.orderInputPanel.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom, m.statusBar())
}

func (m *Model) statusBar() string {
	var status string
	switch m.state.Status {
	case game.StatusWon:
		status = styles.WonStyle.Render("WON")
	case game.StatusLost:
		status = styles.LostStyle.Render("LOST")
	default:
		status = fmt.Sprintf("Day %d/%d", m.state.Day, m.state.Day+m.state.DaysUntilGoal-1)
	}

	keys := strings.Join([]string{
		styles.StatusBarKeyStyle.Render("tab") + " focus",
		styles.StatusBarKeyStyle.Render("n") + " next day",
		styles.StatusBarKeyStyle.Render("p") + " pause",
		styles.StatusBarKeyStyle.Render("r") + " reset",
		styles.StatusBarKeyStyle.Render("q") + " quit",
	}, "  ")

	left := fmt.Sprintf("%s  %s  %s",
		status,
		styles.FormatMoney(m.state.Portfolio.NetWorth),
		m.statusMsg,
	)

	return styles.StatusBarStyle.Width(m.width).Render(left + "  " + keys)
}
