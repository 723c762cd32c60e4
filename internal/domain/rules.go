package domain

import "github.com/shopspring/decimal"

// Built-in FY 2025-26 rule sets. Slab amounts and caps for other years can
// be supplied through a regime-rules file instead of editing these.

// OldRegimeFY2025 returns the legacy regime: broad exemptions, steeper
// slabs, ₹50,000 standard deduction.
func OldRegimeFY2025() RegimeRules {
	return RegimeRules{
		Regime: RegimeOld,
		Year:   "2025-26",
		Slabs: mustSlabTable([]SlabEntry{
			{Lower: decimal.Zero, Upper: decimal.NewFromInt(250000), Rate: decimal.Zero},
			{Lower: decimal.NewFromInt(250000), Upper: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.05)},
			{Lower: decimal.NewFromInt(500000), Upper: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.20)},
			{Lower: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.30)},
		}),
		StandardDeduction:      decimal.NewFromInt(50000),
		CessRate:               decimal.NewFromFloat(0.04),
		AllowsHRA:              true,
		Allows80C:              true,
		Allows80D:              true,
		AllowsHomeLoanInterest: true,
		AllowsOtherDeductions:  true,
		Caps: DeductionCaps{
			Section80C:       decimal.NewFromInt(150000),
			Section80D:       decimal.NewFromInt(25000),
			HomeLoanInterest: decimal.NewFromInt(200000),
		},
	}
}

// NewRegimeFY2025 returns the new regime: flatter slabs, ₹75,000 standard
// deduction, no itemized deduction categories.
func NewRegimeFY2025() RegimeRules {
	return RegimeRules{
		Regime: RegimeNew,
		Year:   "2025-26",
		Slabs: mustSlabTable([]SlabEntry{
			{Lower: decimal.Zero, Upper: decimal.NewFromInt(400000), Rate: decimal.Zero},
			{Lower: decimal.NewFromInt(400000), Upper: decimal.NewFromInt(800000), Rate: decimal.NewFromFloat(0.05)},
			{Lower: decimal.NewFromInt(800000), Upper: decimal.NewFromInt(1200000), Rate: decimal.NewFromFloat(0.10)},
			{Lower: decimal.NewFromInt(1200000), Upper: decimal.NewFromInt(1600000), Rate: decimal.NewFromFloat(0.15)},
			{Lower: decimal.NewFromInt(1600000), Upper: decimal.NewFromInt(2000000), Rate: decimal.NewFromFloat(0.20)},
			{Lower: decimal.NewFromInt(2000000), Upper: decimal.NewFromInt(2400000), Rate: decimal.NewFromFloat(0.25)},
			{Lower: decimal.NewFromInt(2400000), Rate: decimal.NewFromFloat(0.30)},
		}),
		StandardDeduction: decimal.NewFromInt(75000),
		CessRate:          decimal.NewFromFloat(0.04),
	}
}
