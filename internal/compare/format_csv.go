package compare

import (
	"encoding/csv"
	"strings"

	"github.com/taxslab/regimeselect/internal/domain"
)

// CSVFormatter formats a comparison as CSV, one row per regime.
type CSVFormatter struct{}

// Format generates CSV output for a comparison result.
func (cf *CSVFormatter) Format(result *ComparisonResult) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Regime",
		"Gross Income",
		"Total Deductions",
		"Taxable Income",
		"Tax Before Cess",
		"Cess",
		"Total Tax",
		"Recommended",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, r := range []domain.TaxResult{result.Old, result.New} {
		if err := writer.Write(cf.formatRow(r, r.Regime == result.Recommended)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats one regime's result as a CSV row.
func (cf *CSVFormatter) formatRow(r domain.TaxResult, recommended bool) []string {
	rec := "no"
	if recommended {
		rec = "yes"
	}
	return []string{
		string(r.Regime),
		r.GrossIncome.StringFixed(2),
		r.TotalDeductions.StringFixed(2),
		r.TaxableIncome.StringFixed(2),
		r.BaseTax.StringFixed(2),
		r.Cess.StringFixed(2),
		r.TotalTax.StringFixed(2),
		rec,
	}
}
