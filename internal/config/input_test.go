package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxslab/regimeselect/internal/domain"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeTempFile(t, "profile.yaml", `
gross_salary: 1000000
basic_salary: 500000
hra_received: 200000
rent_paid: 240000
city: metro
section_80c: 150000
section_80d: 20000
home_loan_interest: 0
other_deductions: 0
`)

	profile, err := NewInputParser().LoadProfile(path)
	require.NoError(t, err)
	assert.True(t, profile.GrossSalary.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, profile.BasicSalary.Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, domain.CityMetro, profile.City)
}

func TestLoadProfileNegativeIncome(t *testing.T) {
	path := writeTempFile(t, "profile.yaml", `
gross_salary: -1000
`)

	_, err := NewInputParser().LoadProfile(path)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "gross_salary", verr.Field)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := NewInputParser().LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name      string
		profile   domain.IncomeProfile
		wantField string
	}{
		{
			name:    "valid profile",
			profile: domain.IncomeProfile{GrossSalary: decimal.NewFromInt(500000), City: domain.CityMetro},
		},
		{
			name:      "negative 80c",
			profile:   domain.IncomeProfile{Section80C: decimal.NewFromInt(-1)},
			wantField: "section_80c",
		},
		{
			name:      "negative rent",
			profile:   domain.IncomeProfile{RentPaid: decimal.NewFromInt(-500)},
			wantField: "rent_paid",
		},
		{
			name:      "unknown city",
			profile:   domain.IncomeProfile{City: "village"},
			wantField: "city",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(&tt.profile)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidateProfileDefaultsCity(t *testing.T) {
	profile := domain.IncomeProfile{GrossSalary: decimal.NewFromInt(100)}
	require.NoError(t, ValidateProfile(&profile))
	assert.Equal(t, domain.CityNonMetro, profile.City)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"plain integer", "250000", "250000", false},
		{"decimal fraction", "1250.50", "1250.5", false},
		{"empty is zero", "", "0", false},
		{"negative", "-1", "", true},
		{"not a number", "abc", "", true},
		{"NaN", "NaN", "", true},
		{"positive infinity", "+Inf", "", true},
		{"negative infinity", "-Inf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount("gross_salary", tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "gross_salary", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}
