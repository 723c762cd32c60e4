package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxslab/regimeselect/internal/domain"
)

func TestHRAExemption(t *testing.T) {
	dc := NewDeductionCalculator()

	tests := []struct {
		name     string
		profile  domain.IncomeProfile
		expected int64
	}{
		{
			name: "limited by rent minus 10% of basic",
			profile: domain.IncomeProfile{
				BasicSalary: decimal.NewFromInt(500000),
				HRAReceived: decimal.NewFromInt(200000),
				RentPaid:    decimal.NewFromInt(240000),
				City:        domain.CityMetro,
			},
			expected: 190000, // min(200000, 240000-50000, 250000)
		},
		{
			name: "limited by HRA received",
			profile: domain.IncomeProfile{
				BasicSalary: decimal.NewFromInt(500000),
				HRAReceived: decimal.NewFromInt(100000),
				RentPaid:    decimal.NewFromInt(300000),
				City:        domain.CityMetro,
			},
			expected: 100000,
		},
		{
			name: "limited by 50% of basic in metro",
			profile: domain.IncomeProfile{
				BasicSalary: decimal.NewFromInt(300000),
				HRAReceived: decimal.NewFromInt(250000),
				RentPaid:    decimal.NewFromInt(400000),
				City:        domain.CityMetro,
			},
			expected: 150000,
		},
		{
			name: "limited by 40% of basic outside metro",
			profile: domain.IncomeProfile{
				BasicSalary: decimal.NewFromInt(300000),
				HRAReceived: decimal.NewFromInt(250000),
				RentPaid:    decimal.NewFromInt(400000),
				City:        domain.CityNonMetro,
			},
			expected: 120000,
		},
		{
			name: "rent below 10% of basic floors at zero",
			profile: domain.IncomeProfile{
				BasicSalary: decimal.NewFromInt(500000),
				HRAReceived: decimal.NewFromInt(200000),
				RentPaid:    decimal.NewFromInt(30000),
				City:        domain.CityMetro,
			},
			expected: 0,
		},
		{
			name: "no rent paid",
			profile: domain.IncomeProfile{
				BasicSalary: decimal.NewFromInt(500000),
				HRAReceived: decimal.NewFromInt(200000),
				City:        domain.CityMetro,
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dc.HRAExemption(&tt.profile)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.expected)),
				"Expected %d, got %s", tt.expected, got)
			assert.True(t, got.LessThanOrEqual(tt.profile.HRAReceived),
				"exemption %s exceeds HRA received %s", got, tt.profile.HRAReceived)
		})
	}
}

func TestDeductionCaps(t *testing.T) {
	dc := NewDeductionCalculator()
	rules := domain.OldRegimeFY2025()

	profile := domain.IncomeProfile{
		GrossSalary:      decimal.NewFromInt(2000000),
		Section80C:       decimal.NewFromInt(500000),
		Section80D:       decimal.NewFromInt(90000),
		HomeLoanInterest: decimal.NewFromInt(350000),
		City:             domain.CityNonMetro,
	}

	bd := dc.Breakdown(&profile, rules)
	assert.True(t, bd.Section80C.Equal(decimal.NewFromInt(150000)))
	assert.True(t, bd.Section80D.Equal(decimal.NewFromInt(25000)))
	assert.True(t, bd.HomeLoanInterest.Equal(decimal.NewFromInt(200000)))
}

func TestNewRegimeIgnoresDeclaredDeductions(t *testing.T) {
	dc := NewDeductionCalculator()
	rules := domain.NewRegimeFY2025()

	profile := domain.IncomeProfile{
		GrossSalary:      decimal.NewFromInt(1000000),
		BasicSalary:      decimal.NewFromInt(500000),
		HRAReceived:      decimal.NewFromInt(200000),
		RentPaid:         decimal.NewFromInt(240000),
		City:             domain.CityMetro,
		Section80C:       decimal.NewFromInt(150000),
		Section80D:       decimal.NewFromInt(20000),
		HomeLoanInterest: decimal.NewFromInt(200000),
		OtherDeductions:  decimal.NewFromInt(50000),
	}

	bd := dc.Breakdown(&profile, rules)
	assert.True(t, bd.HRAExemption.IsZero())
	assert.True(t, bd.Section80C.IsZero())
	assert.True(t, bd.Section80D.IsZero())
	assert.True(t, bd.HomeLoanInterest.IsZero())
	assert.True(t, bd.Other.IsZero())
	assert.True(t, bd.Total().Equal(rules.StandardDeduction))
}

func TestTaxableIncomeClampedAtZero(t *testing.T) {
	dc := NewDeductionCalculator()
	rules := domain.OldRegimeFY2025()

	profile := domain.IncomeProfile{
		GrossSalary:     decimal.NewFromInt(40000),
		Section80C:      decimal.NewFromInt(150000),
		OtherDeductions: decimal.NewFromInt(500000),
		City:            domain.CityNonMetro,
	}

	taxable, _ := dc.TaxableIncome(&profile, rules)
	assert.True(t, taxable.IsZero(), "taxable income must never be negative, got %s", taxable)
}

func TestTaxableIncomeScenario(t *testing.T) {
	dc := NewDeductionCalculator()

	// 10L gross, 2L HRA against 2.4L rent in a metro on a 5L basic,
	// maxed 80C, 20K 80D.
	profile := domain.IncomeProfile{
		GrossSalary: decimal.NewFromInt(1000000),
		BasicSalary: decimal.NewFromInt(500000),
		HRAReceived: decimal.NewFromInt(200000),
		RentPaid:    decimal.NewFromInt(240000),
		City:        domain.CityMetro,
		Section80C:  decimal.NewFromInt(150000),
		Section80D:  decimal.NewFromInt(20000),
	}

	oldTaxable, oldBd := dc.TaxableIncome(&profile, domain.OldRegimeFY2025())
	assert.True(t, oldBd.HRAExemption.Equal(decimal.NewFromInt(190000)))
	assert.True(t, oldTaxable.Equal(decimal.NewFromInt(590000)),
		"old regime taxable income: expected 590000, got %s", oldTaxable)

	newTaxable, _ := dc.TaxableIncome(&profile, domain.NewRegimeFY2025())
	assert.True(t, newTaxable.Equal(decimal.NewFromInt(925000)),
		"new regime taxable income: expected 925000, got %s", newTaxable)
}
