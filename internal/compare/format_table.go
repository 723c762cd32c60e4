package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxslab/regimeselect/internal/domain"
)

// TableFormatter formats a comparison as a console table with the
// per-regime deduction and tax breakdown.
type TableFormatter struct{}

// Format generates the formatted comparison table.
func (tf *TableFormatter) Format(result *ComparisonResult) string {
	var sb strings.Builder

	sb.WriteString("TAX REGIME COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 64) + "\n")

	labelWidth := 22
	numWidth := 18

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		labelWidth, "",
		numWidth, "Old Regime",
		numWidth, "New Regime"))
	sb.WriteString(strings.Repeat("-", 64) + "\n")

	rows := []struct {
		label    string
		old, new decimal.Decimal
	}{
		{"Gross Income", result.Old.GrossIncome, result.New.GrossIncome},
		{"Standard Deduction", result.Old.Deductions.StandardDeduction, result.New.Deductions.StandardDeduction},
		{"HRA Exemption", result.Old.Deductions.HRAExemption, result.New.Deductions.HRAExemption},
		{"Section 80C", result.Old.Deductions.Section80C, result.New.Deductions.Section80C},
		{"Section 80D", result.Old.Deductions.Section80D, result.New.Deductions.Section80D},
		{"Home Loan Interest", result.Old.Deductions.HomeLoanInterest, result.New.Deductions.HomeLoanInterest},
		{"Other Deductions", result.Old.Deductions.Other, result.New.Deductions.Other},
		{"Total Deductions", result.Old.TotalDeductions, result.New.TotalDeductions},
		{"Taxable Income", result.Old.TaxableIncome, result.New.TaxableIncome},
		{"Tax Before Cess", result.Old.BaseTax, result.New.BaseTax},
		{"Cess", result.Old.Cess, result.New.Cess},
		{"Total Tax", result.Old.TotalTax, result.New.TotalTax},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
			labelWidth, row.label,
			numWidth, "₹"+row.old.StringFixed(0),
			numWidth, "₹"+row.new.StringFixed(0)))
	}

	sb.WriteString(strings.Repeat("=", 64) + "\n\n")

	sb.WriteString("RECOMMENDATION\n")
	sb.WriteString(strings.Repeat("-", 64) + "\n")
	sb.WriteString(fmt.Sprintf("• %s\n", tf.recommendation(result)))

	return sb.String()
}

// recommendation renders the single-line verdict.
func (tf *TableFormatter) recommendation(result *ComparisonResult) string {
	if result.Savings.IsZero() {
		return fmt.Sprintf("Both regimes owe ₹%s; the %s is preferred for its planning flexibility",
			result.Old.TotalTax.StringFixed(0), regimeLabel(result.Recommended))
	}
	return fmt.Sprintf("The %s saves ₹%s (%s%% less tax)",
		regimeLabel(result.Recommended),
		result.Savings.StringFixed(0),
		result.SavingsPct.StringFixed(1))
}

// FormatCompact creates a one-line summary suitable for status lines.
func (tf *TableFormatter) FormatCompact(result *ComparisonResult) string {
	return fmt.Sprintf("old: ₹%s | new: ₹%s | recommended: %s",
		result.Old.TotalTax.StringFixed(0),
		result.New.TotalTax.StringFixed(0),
		result.Recommended)
}

// regimeLabel maps a regime identifier to its display name.
func regimeLabel(r domain.Regime) string {
	switch r {
	case domain.RegimeOld:
		return "Old Regime"
	case domain.RegimeNew:
		return "New Regime"
	}
	return string(r)
}
