package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxslab/regimeselect/internal/compare"
	"github.com/taxslab/regimeselect/internal/config"
	"github.com/taxslab/regimeselect/internal/domain"
)

// Form field order. The city field takes metro / non-metro text instead of
// an amount.
const (
	fieldGrossSalary = iota
	fieldBasicSalary
	fieldHRAReceived
	fieldRentPaid
	fieldCity
	fieldSection80C
	fieldSection80D
	fieldHomeLoanInterest
	fieldOtherDeductions
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Gross Salary",
	"Basic Salary",
	"HRA Received",
	"Rent Paid",
	"City (metro/non-metro)",
	"Section 80C",
	"Section 80D",
	"Home Loan Interest",
	"Other Deductions",
}

var fieldNames = [fieldCount]string{
	"gross_salary",
	"basic_salary",
	"hra_received",
	"rent_paid",
	"city",
	"section_80c",
	"section_80d",
	"home_loan_interest",
	"other_deductions",
}

// Model is the interactive entry form plus the latest comparison result.
type Model struct {
	engine *compare.CompareEngine

	inputs [fieldCount]textinput.Model
	focus  int

	result *compare.ComparisonResult
	err    error

	width  int
	height int
}

// NewModel creates the form model over the given comparison engine.
func NewModel(engine *compare.CompareEngine) Model {
	m := Model{
		engine: engine,
		width:  80,
		height: 24,
	}
	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 16
		ti.Width = 16
		if i == fieldCity {
			ti.Placeholder = "non-metro"
		} else {
			ti.Placeholder = "0"
		}
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			m.calculate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves keyboard focus to the given field.
func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// calculate parses the form into a profile and runs the comparison.
// Parse failures land in m.err with the offending field named.
func (m *Model) calculate() {
	profile, err := m.buildProfile()
	if err != nil {
		m.err = err
		m.result = nil
		return
	}
	result := m.engine.Compare(profile)
	m.result = &result
	m.err = nil
}

// buildProfile converts the form text into a validated IncomeProfile.
func (m *Model) buildProfile() (*domain.IncomeProfile, error) {
	var profile domain.IncomeProfile

	for i := 0; i < fieldCount; i++ {
		if i == fieldCity {
			continue
		}
		v, err := config.ParseAmount(fieldNames[i], m.inputs[i].Value())
		if err != nil {
			return nil, err
		}
		switch i {
		case fieldGrossSalary:
			profile.GrossSalary = v
		case fieldBasicSalary:
			profile.BasicSalary = v
		case fieldHRAReceived:
			profile.HRAReceived = v
		case fieldRentPaid:
			profile.RentPaid = v
		case fieldSection80C:
			profile.Section80C = v
		case fieldSection80D:
			profile.Section80D = v
		case fieldHomeLoanInterest:
			profile.HomeLoanInterest = v
		case fieldOtherDeductions:
			profile.OtherDeductions = v
		}
	}

	switch strings.ToLower(strings.TrimSpace(m.inputs[fieldCity].Value())) {
	case "", "non-metro", "n":
		profile.City = domain.CityNonMetro
	case "metro", "m":
		profile.City = domain.CityMetro
	default:
		return nil, &config.ValidationError{Field: "city", Reason: "must be metro or non-metro"}
	}

	if err := config.ValidateProfile(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
