package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxslab/regimeselect/internal/domain"
)

// ValidationError reports a single out-of-domain input value. It names the
// offending field so callers can re-prompt; values are never silently
// corrected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InputParser handles parsing of income profile files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadProfile loads an income profile from a YAML file and validates it.
func (ip *InputParser) LoadProfile(filename string) (*domain.IncomeProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.IncomeProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ValidateProfile(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// ValidateProfile checks every profile field against its valid range and
// applies the non-metro default for an unset city. Returns a
// *ValidationError naming the first offending field.
func ValidateProfile(profile *domain.IncomeProfile) error {
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"gross_salary", profile.GrossSalary},
		{"basic_salary", profile.BasicSalary},
		{"hra_received", profile.HRAReceived},
		{"rent_paid", profile.RentPaid},
		{"section_80c", profile.Section80C},
		{"section_80d", profile.Section80D},
		{"home_loan_interest", profile.HomeLoanInterest},
		{"other_deductions", profile.OtherDeductions},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return &ValidationError{Field: a.field, Reason: "amount cannot be negative"}
		}
	}

	switch profile.City {
	case "":
		profile.City = domain.CityNonMetro
	case domain.CityMetro, domain.CityNonMetro:
	default:
		return &ValidationError{
			Field:  "city",
			Reason: fmt.Sprintf("must be %q or %q", domain.CityMetro, domain.CityNonMetro),
		}
	}

	return nil
}

// ParseAmount converts free-form numeric text (form fields, query params)
// into a monetary amount, rejecting malformed, non-finite, and negative
// values. An empty string parses as zero.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Field: field, Reason: "not a number"}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, &ValidationError{Field: field, Reason: "must be finite"}
	}
	if f < 0 {
		return decimal.Decimal{}, &ValidationError{Field: field, Reason: "amount cannot be negative"}
	}
	return decimal.NewFromFloat(f), nil
}
