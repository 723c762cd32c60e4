package compare

import (
	"github.com/shopspring/decimal"

	"github.com/taxslab/regimeselect/internal/calculation"
	"github.com/taxslab/regimeselect/internal/config"
	"github.com/taxslab/regimeselect/internal/domain"
)

// CompareEngine orchestrates the two-regime comparison: deduction
// aggregation and slab tax per regime, then recommendation.
type CompareEngine struct {
	CalcEngine *calculation.CalculationEngine
	Regimes    config.RegimeSet
}

// NewCompareEngine creates a comparison engine over the given rule sets.
func NewCompareEngine(regimes config.RegimeSet) *CompareEngine {
	return &CompareEngine{
		CalcEngine: calculation.NewCalculationEngine(),
		Regimes:    regimes,
	}
}

// Compare computes both regimes for a validated profile. The computation
// is pure and total: valid input always yields a complete result.
func (ce *CompareEngine) Compare(profile *domain.IncomeProfile) ComparisonResult {
	result := ComparisonResult{
		Old: ce.CalcEngine.RunRegime(profile, ce.Regimes.Old),
		New: ce.CalcEngine.RunRegime(profile, ce.Regimes.New),
	}

	// Tie-break toward the old regime (documented in types.go).
	if result.New.TotalTax.LessThan(result.Old.TotalTax) {
		result.Recommended = domain.RegimeNew
	} else {
		result.Recommended = domain.RegimeOld
	}

	result.Savings = result.Old.TotalTax.Sub(result.New.TotalTax).Abs()

	higher := decimal.Max(result.Old.TotalTax, result.New.TotalTax)
	if higher.IsPositive() {
		result.SavingsPct = result.Savings.Div(higher).Mul(decimal.NewFromInt(100))
	}

	return result
}
