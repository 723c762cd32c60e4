package calculation

import (
	"github.com/taxslab/regimeselect/internal/domain"
)

// CalculationEngine runs one profile through one regime's rules. It holds
// no mutable state, so a single engine may serve concurrent callers.
type CalculationEngine struct {
	Deductions *DeductionCalculator
}

// NewCalculationEngine creates a new calculation engine.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Deductions: NewDeductionCalculator()}
}

// RunRegime produces the full TaxResult for the (profile, rules) pair:
// deduction aggregation, marginal slab tax, and cess.
func (e *CalculationEngine) RunRegime(profile *domain.IncomeProfile, rules domain.RegimeRules) domain.TaxResult {
	taxable, breakdown := e.Deductions.TaxableIncome(profile, rules)

	baseTax := NewSlabTaxCalculator(rules.Slabs).Tax(taxable)
	cess := baseTax.Mul(rules.CessRate)

	return domain.TaxResult{
		Regime:          rules.Regime,
		Year:            rules.Year,
		GrossIncome:     profile.GrossSalary,
		Deductions:      breakdown,
		TotalDeductions: breakdown.Total(),
		TaxableIncome:   taxable,
		BaseTax:         baseTax,
		Cess:            cess,
		TotalTax:        baseTax.Add(cess),
	}
}
