package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxslab/regimeselect/internal/domain"
)

// SlabTaxCalculator applies a slab table to a taxable-income figure using
// standard marginal-rate computation: each slab taxes only the income
// falling inside it.
type SlabTaxCalculator struct {
	Table domain.SlabTable
}

// NewSlabTaxCalculator creates a calculator for the given table.
func NewSlabTaxCalculator(table domain.SlabTable) *SlabTaxCalculator {
	return &SlabTaxCalculator{Table: table}
}

// Tax returns the slab tax owed on taxableIncome. Boundaries are
// lower-inclusive: income exactly at a slab's lower bound is taxed in that
// slab. Result is zero for non-positive income.
func (stc *SlabTaxCalculator) Tax(taxableIncome decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	for _, slab := range stc.Table.Entries {
		if taxableIncome.LessThanOrEqual(slab.Lower) {
			break
		}
		upper := taxableIncome
		if !slab.Unbounded() {
			upper = decimal.Min(taxableIncome, slab.Upper)
		}
		tax = tax.Add(upper.Sub(slab.Lower).Mul(slab.Rate))
	}
	return tax
}
