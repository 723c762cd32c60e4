package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxslab/regimeselect/internal/domain"
)

// DeductionCalculator aggregates the deductions a regime honors and derives
// taxable income from a profile.
type DeductionCalculator struct{}

// NewDeductionCalculator creates a new deduction calculator.
func NewDeductionCalculator() *DeductionCalculator {
	return &DeductionCalculator{}
}

// HRAExemption computes the exempt portion of HRA as the minimum of:
//  1. HRA actually received
//  2. rent paid minus 10% of basic salary (floored at zero)
//  3. 50% of basic salary in a metro city, 40% otherwise
func (dc *DeductionCalculator) HRAExemption(profile *domain.IncomeProfile) decimal.Decimal {
	tenPctBasic := profile.BasicSalary.Mul(decimal.NewFromFloat(0.10))
	rentExcess := profile.RentPaid.Sub(tenPctBasic)
	if rentExcess.IsNegative() {
		rentExcess = decimal.Zero
	}

	basicPct := decimal.NewFromFloat(0.40)
	if profile.IsMetro() {
		basicPct = decimal.NewFromFloat(0.50)
	}
	basicShare := profile.BasicSalary.Mul(basicPct)

	return decimal.Min(profile.HRAReceived, rentExcess, basicShare)
}

// Breakdown returns the per-category deductions applied under the given
// rules. Declared amounts are capped at the statutory limits; categories
// the regime does not honor contribute zero.
func (dc *DeductionCalculator) Breakdown(profile *domain.IncomeProfile, rules domain.RegimeRules) domain.DeductionBreakdown {
	bd := domain.DeductionBreakdown{
		StandardDeduction: rules.StandardDeduction,
	}
	if rules.AllowsHRA {
		bd.HRAExemption = dc.HRAExemption(profile)
	}
	if rules.Allows80C {
		bd.Section80C = decimal.Min(profile.Section80C, rules.Caps.Section80C)
	}
	if rules.Allows80D {
		bd.Section80D = decimal.Min(profile.Section80D, rules.Caps.Section80D)
	}
	if rules.AllowsHomeLoanInterest {
		bd.HomeLoanInterest = decimal.Min(profile.HomeLoanInterest, rules.Caps.HomeLoanInterest)
	}
	if rules.AllowsOtherDeductions {
		bd.Other = profile.OtherDeductions
	}
	return bd
}

// TaxableIncome applies the breakdown to gross salary, clamping at zero so
// deductions can never produce negative taxable income.
func (dc *DeductionCalculator) TaxableIncome(profile *domain.IncomeProfile, rules domain.RegimeRules) (decimal.Decimal, domain.DeductionBreakdown) {
	bd := dc.Breakdown(profile, rules)
	taxable := profile.GrossSalary.Sub(bd.Total())
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	return taxable, bd
}
