package domain

import "github.com/shopspring/decimal"

// CityType distinguishes metro from non-metro residence for the HRA
// exemption percentage (50% of basic in a metro, 40% otherwise).
type CityType string

const (
	CityMetro    CityType = "metro"
	CityNonMetro CityType = "non-metro"
)

// IncomeProfile holds one financial year of declared income and deduction
// figures for a single taxpayer. All amounts are annual whole-rupee values.
// A profile is built once per calculation run and never mutated.
type IncomeProfile struct {
	// GrossSalary is the total salary income for the year (basic + HRA +
	// special allowance + bonus as paid by the employer).
	GrossSalary decimal.Decimal `yaml:"gross_salary" json:"grossSalary"`

	// BasicSalary is the basic pay component, the base for the HRA
	// exemption computation.
	BasicSalary decimal.Decimal `yaml:"basic_salary" json:"basicSalary"`

	HRAReceived decimal.Decimal `yaml:"hra_received" json:"hraReceived"`
	RentPaid    decimal.Decimal `yaml:"rent_paid" json:"rentPaid"`
	City        CityType        `yaml:"city" json:"city"`

	Section80C       decimal.Decimal `yaml:"section_80c" json:"section80C"`
	Section80D       decimal.Decimal `yaml:"section_80d" json:"section80D"`
	HomeLoanInterest decimal.Decimal `yaml:"home_loan_interest" json:"homeLoanInterest"`

	// OtherDeductions covers remaining itemized deductions honored by the
	// old regime (80G donations, 80E education-loan interest, etc.).
	OtherDeductions decimal.Decimal `yaml:"other_deductions" json:"otherDeductions"`
}

// IsMetro reports whether the profile is for a metro-city resident.
func (p *IncomeProfile) IsMetro() bool {
	return p.City == CityMetro
}
