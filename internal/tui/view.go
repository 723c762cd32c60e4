package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Tax Regime Selector"))
	sb.WriteString("\n\n")

	sb.WriteString(panelStyle.Render(m.renderForm()))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		sb.WriteString("\n")
	}
	if m.result != nil {
		sb.WriteString(panelStyle.Render(m.renderResult()))
		sb.WriteString("\n")
	}

	sb.WriteString(statusBarStyle.Render("tab/↑↓ move · enter calculate · esc quit"))
	return sb.String()
}

// renderForm renders the labeled input fields.
func (m Model) renderForm() string {
	rows := make([]string, 0, fieldCount)
	for i := 0; i < fieldCount; i++ {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(fieldLabels[i]),
			m.inputs[i].View()))
	}
	return strings.Join(rows, "\n")
}

// renderResult renders both regimes side by side with the recommendation.
func (m Model) renderResult() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-20s %14s %14s\n", "", "Old Regime", "New Regime"))

	rows := []struct {
		label    string
		old, new decimal.Decimal
	}{
		{"Total Deductions", m.result.Old.TotalDeductions, m.result.New.TotalDeductions},
		{"Taxable Income", m.result.Old.TaxableIncome, m.result.New.TaxableIncome},
		{"Tax Before Cess", m.result.Old.BaseTax, m.result.New.BaseTax},
		{"Cess", m.result.Old.Cess, m.result.New.Cess},
		{"Total Tax", m.result.Old.TotalTax, m.result.New.TotalTax},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-20s %14s %14s\n",
			row.label,
			"₹"+row.old.StringFixed(0),
			"₹"+row.new.StringFixed(0)))
	}

	sb.WriteString("\n")
	if m.result.Savings.IsZero() {
		sb.WriteString(recommendStyle.Render(
			fmt.Sprintf("Equal tax either way; %s regime preferred", m.result.Recommended)))
	} else {
		sb.WriteString(recommendStyle.Render(
			fmt.Sprintf("Choose the %s regime and save ₹%s (%s%%)",
				m.result.Recommended,
				m.result.Savings.StringFixed(0),
				m.result.SavingsPct.StringFixed(1))))
	}
	return sb.String()
}
