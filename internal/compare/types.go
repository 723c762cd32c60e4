package compare

import (
	"github.com/shopspring/decimal"

	"github.com/taxslab/regimeselect/internal/domain"
)

// ComparisonResult holds both regime outcomes, the recommendation, and the
// savings the recommended regime delivers over the other.
type ComparisonResult struct {
	Old domain.TaxResult `json:"old"`
	New domain.TaxResult `json:"new"`

	// Recommended is the regime with the strictly lower total tax. On an
	// exact tie the old regime is recommended: it preserves the taxpayer's
	// existing exemption planning at no extra cost.
	Recommended domain.Regime `json:"recommended"`

	// Savings is the absolute total-tax difference between the regimes.
	Savings decimal.Decimal `json:"savings"`

	// SavingsPct is Savings as a percentage of the higher of the two
	// total-tax figures; zero when both taxes are zero.
	SavingsPct decimal.Decimal `json:"savingsPct"`
}

// RecommendedResult returns the TaxResult of the recommended regime.
func (cr *ComparisonResult) RecommendedResult() domain.TaxResult {
	if cr.Recommended == domain.RegimeNew {
		return cr.New
	}
	return cr.Old
}
