package panels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/bullrush/internal/market"
	"github.com/zappabad/bullrush/internal/portfolio"
	"github.com/zappabad/bullrush/tui/styles"
)

// OrderField represents the currently focused input field.
type OrderField int

const (
	FieldCompany OrderField = iota
	FieldSide
	FieldShares
	FieldSubmit
)

// OrderSubmitMsg is emitted when the player submits an order.
type OrderSubmitMsg struct {
	CompanyID market.CompanyID
	Type      portfolio.TransactionType
	Shares    int64
}

// OrderInputPanel handles buy/sell order entry.
type OrderInputPanel struct {
	companies    []market.Company
	companyIndex int

	sideOptions []portfolio.TransactionType
	sideIndex   int

	sharesInput textinput.Model

	currentField OrderField
	errMsg       string

	focused bool
	width   int
	height  int
}

// NewOrderInputPanel creates a new order input panel.
func NewOrderInputPanel(companies []market.Company) *OrderInputPanel {
	sharesInput := textinput.New()
	sharesInput.Placeholder = "Shares"
	sharesInput.Width = 10
	sharesInput.CharLimit = 9

	return &OrderInputPanel{
		companies:   companies,
		sideOptions: []portfolio.TransactionType{portfolio.TransactionBuy, portfolio.TransactionSell},
		sharesInput: sharesInput,
	}
}

// Init initializes the panel.
func (p *OrderInputPanel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the panel.
func (p *OrderInputPanel) Update(msg tea.Msg) (*OrderInputPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("down"))):
			p.nextField()
			return p, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("up"))):
			p.prevField()
			return p, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if p.currentField == FieldSubmit {
				return p, p.submitOrder()
			}
			p.nextField()
			return p, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("left"))):
			switch p.currentField {
			case FieldCompany:
				if p.companyIndex > 0 {
					p.companyIndex--
				}
				return p, nil
			case FieldSide:
				if p.sideIndex > 0 {
					p.sideIndex--
				}
				return p, nil
			}

		case key.Matches(msg, key.NewBinding(key.WithKeys("right"))):
			switch p.currentField {
			case FieldCompany:
				if p.companyIndex < len(p.companies)-1 {
					p.companyIndex++
				}
				return p, nil
			case FieldSide:
				if p.sideIndex < len(p.sideOptions)-1 {
					p.sideIndex++
				}
				return p, nil
			}
		}
	}

	if p.currentField == FieldShares {
		p.sharesInput, cmd = p.sharesInput.Update(msg)
	}

	return p, cmd
}

// View renders the panel.
func (p *OrderInputPanel) View() string {
	var content strings.Builder

	content.WriteString(p.renderField("Company", FieldCompany, p.renderCompanyField()))
	content.WriteString("\n")
	content.WriteString(p.renderField("Side", FieldSide, p.renderSideField()))
	content.WriteString("\n")
	content.WriteString(p.renderField("Shares", FieldShares, p.renderSharesField()))
	content.WriteString("\n\n")

	submitStyle := styles.InputStyle
	if p.currentField == FieldSubmit && p.focused {
		submitStyle = styles.FocusedInputStyle.Bold(true).Foreground(styles.PrimaryColor)
	}
	content.WriteString(submitStyle.Render("  [Place Order]  "))

	if p.errMsg != "" {
		content.WriteString("\n\n")
		content.WriteString(styles.SellStyle.Render(p.errMsg))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📝 Order Entry", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *OrderInputPanel) renderField(label string, field OrderField, inputView string) string {
	labelStyle := styles.LabelStyle
	if p.currentField == field && p.focused {
		labelStyle = labelStyle.Foreground(styles.PrimaryColor)
	}
	return labelStyle.Render(fmt.Sprintf("%-8s", label)) + inputView
}

func (p *OrderInputPanel) renderCompanyField() string {
	if len(p.companies) == 0 {
		return styles.DropdownItemStyle.Render("-")
	}
	c := p.companies[p.companyIndex]
	item := fmt.Sprintf("◂ %s (%s) ▸", c.Ticker, styles.FormatMoney(c.CurrentPrice))
	if p.currentField == FieldCompany && p.focused {
		return styles.DropdownSelectedStyle.Render(item)
	}
	return styles.DropdownItemStyle.Render(item)
}

func (p *OrderInputPanel) renderSideField() string {
	var items []string
	for i, opt := range p.sideOptions {
		label := strings.ToUpper(string(opt))
		style := styles.DropdownItemStyle
		if i == p.sideIndex {
			if p.currentField == FieldSide && p.focused {
				style = styles.DropdownSelectedStyle
			} else {
				style = styles.DropdownItemStyle.Bold(true)
			}
		}
		items = append(items, style.Render(label))
	}
	return strings.Join(items, " ")
}

func (p *OrderInputPanel) renderSharesField() string {
	inputStyle := styles.InputStyle
	if p.currentField == FieldShares && p.focused {
		inputStyle = styles.FocusedInputStyle
		p.sharesInput.Focus()
	} else {
		p.sharesInput.Blur()
	}
	return inputStyle.Render(p.sharesInput.View())
}

func (p *OrderInputPanel) nextField() {
	if p.currentField < FieldSubmit {
		p.currentField++
	}
}

func (p *OrderInputPanel) prevField() {
	if p.currentField > FieldCompany {
		p.currentField--
	}
}

func (p *OrderInputPanel) submitOrder() tea.Cmd {
	if len(p.companies) == 0 {
		return nil
	}
	shares, err := strconv.ParseInt(strings.TrimSpace(p.sharesInput.Value()), 10, 64)
	if err != nil || shares <= 0 {
		p.errMsg = "Enter a positive share count"
		return nil
	}
	p.errMsg = ""

	msg := OrderSubmitMsg{
		CompanyID: p.companies[p.companyIndex].ID,
		Type:      p.sideOptions[p.sideIndex],
		Shares:    shares,
	}
	return func() tea.Msg { return msg }
}

// SetFocus sets the focus state of the panel.
func (p *OrderInputPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *OrderInputPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetCompanies refreshes the selectable companies (prices move daily).
func (p *OrderInputPanel) SetCompanies(companies []market.Company) {
	p.companies = companies
	if p.companyIndex >= len(p.companies) {
		p.companyIndex = 0
	}
}

// SetError shows a rejection message from the ledger.
func (p *OrderInputPanel) SetError(msg string) {
	p.errMsg = msg
}
