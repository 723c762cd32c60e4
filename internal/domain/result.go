package domain

import "github.com/shopspring/decimal"

// DeductionBreakdown itemizes the deductions actually applied for one
// regime. Categories the regime does not honor stay zero regardless of the
// declared amounts.
type DeductionBreakdown struct {
	StandardDeduction decimal.Decimal `json:"standardDeduction"`
	HRAExemption      decimal.Decimal `json:"hraExemption"`
	Section80C        decimal.Decimal `json:"section80C"`
	Section80D        decimal.Decimal `json:"section80D"`
	HomeLoanInterest  decimal.Decimal `json:"homeLoanInterest"`
	Other             decimal.Decimal `json:"other"`
}

// Total sums all applied deductions.
func (d DeductionBreakdown) Total() decimal.Decimal {
	return d.StandardDeduction.
		Add(d.HRAExemption).
		Add(d.Section80C).
		Add(d.Section80D).
		Add(d.HomeLoanInterest).
		Add(d.Other)
}

// TaxResult is the outcome of running one IncomeProfile against one
// RegimeRules. Produced once per pair and immutable.
type TaxResult struct {
	Regime          Regime             `json:"regime"`
	Year            string             `json:"year"`
	GrossIncome     decimal.Decimal    `json:"grossIncome"`
	Deductions      DeductionBreakdown `json:"deductions"`
	TotalDeductions decimal.Decimal    `json:"totalDeductions"`
	TaxableIncome   decimal.Decimal    `json:"taxableIncome"`

	// BaseTax is the slab tax before cess or rebate.
	BaseTax  decimal.Decimal `json:"baseTax"`
	Cess     decimal.Decimal `json:"cess"`
	TotalTax decimal.Decimal `json:"totalTax"`
}
