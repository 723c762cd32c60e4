package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taxslab/regimeselect/internal/domain"
)

// RegimeSet pairs the two rule sets for one tax year. Rules are passed
// explicitly into the engines rather than held as package state, so
// multiple tax years can coexist side by side.
type RegimeSet struct {
	Old domain.RegimeRules `yaml:"old_regime"`
	New domain.RegimeRules `yaml:"new_regime"`
}

// DefaultRegimeSet returns the compiled-in FY 2025-26 rules.
func DefaultRegimeSet() RegimeSet {
	return RegimeSet{
		Old: domain.OldRegimeFY2025(),
		New: domain.NewRegimeFY2025(),
	}
}

// LoadRegimeRules loads an alternate tax year's slab tables, standard
// deductions, cess rates, and caps from a YAML file. A malformed slab
// table here is a configuration error and is fatal to the invocation.
func LoadRegimeRules(filename string) (RegimeSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return RegimeSet{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var set RegimeSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return RegimeSet{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateRegimeRules(&set.Old, domain.RegimeOld); err != nil {
		return RegimeSet{}, fmt.Errorf("old regime: %w", err)
	}
	if err := validateRegimeRules(&set.New, domain.RegimeNew); err != nil {
		return RegimeSet{}, fmt.Errorf("new regime: %w", err)
	}

	return set, nil
}

// validateRegimeRules re-runs slab table construction on the unmarshaled
// entries and checks the scalar rule values.
func validateRegimeRules(rules *domain.RegimeRules, regime domain.Regime) error {
	if rules.Regime == "" {
		rules.Regime = regime
	}
	if rules.Regime != regime {
		return fmt.Errorf("regime identifier %q does not match %q", rules.Regime, regime)
	}

	table, err := domain.NewSlabTable(rules.Slabs.Entries)
	if err != nil {
		return err
	}
	rules.Slabs = table

	if rules.StandardDeduction.IsNegative() {
		return fmt.Errorf("standard deduction cannot be negative")
	}
	if rules.CessRate.IsNegative() {
		return fmt.Errorf("cess rate cannot be negative")
	}
	if rules.Caps.Section80C.IsNegative() || rules.Caps.Section80D.IsNegative() || rules.Caps.HomeLoanInterest.IsNegative() {
		return fmt.Errorf("deduction caps cannot be negative")
	}
	return nil
}
