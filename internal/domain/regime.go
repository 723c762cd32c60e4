package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Regime identifies one of the two selectable tax rule sets.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// ErrInvalidSlabTable is wrapped by every slab table construction failure.
// A malformed table is a configuration error, not a user-input error, and
// callers should treat it as fatal at startup.
var ErrInvalidSlabTable = errors.New("invalid slab table")

// SlabEntry is one income bracket taxed at a fixed marginal rate.
// Lower is inclusive, Upper exclusive. A zero Upper marks the unbounded
// top slab.
type SlabEntry struct {
	Lower decimal.Decimal `yaml:"lower" json:"lower"`
	Upper decimal.Decimal `yaml:"upper" json:"upper"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the entry is the open-ended top slab.
func (s SlabEntry) Unbounded() bool {
	return s.Upper.IsZero()
}

// SlabTable is an ordered sequence of slabs covering [0, inf) with no gaps
// or overlaps. Construct through NewSlabTable; a validated table is never
// mutated afterwards.
type SlabTable struct {
	Entries []SlabEntry `yaml:"entries" json:"entries"`
}

// NewSlabTable validates and returns a slab table. The entries must start
// at zero, be sorted, tile the income line exactly, end with a single
// unbounded slab, and carry rates in [0, 1].
func NewSlabTable(entries []SlabEntry) (SlabTable, error) {
	if len(entries) == 0 {
		return SlabTable{}, fmt.Errorf("%w: no entries", ErrInvalidSlabTable)
	}
	if !entries[0].Lower.IsZero() {
		return SlabTable{}, fmt.Errorf("%w: first slab must start at 0, got %s",
			ErrInvalidSlabTable, entries[0].Lower)
	}
	one := decimal.NewFromInt(1)
	for i, e := range entries {
		if e.Rate.IsNegative() || e.Rate.GreaterThan(one) {
			return SlabTable{}, fmt.Errorf("%w: slab %d rate %s outside [0, 1]",
				ErrInvalidSlabTable, i, e.Rate)
		}
		last := i == len(entries)-1
		if last {
			if !e.Unbounded() {
				return SlabTable{}, fmt.Errorf("%w: top slab must be unbounded",
					ErrInvalidSlabTable)
			}
			continue
		}
		if e.Unbounded() {
			return SlabTable{}, fmt.Errorf("%w: slab %d is unbounded but not last",
				ErrInvalidSlabTable, i)
		}
		if e.Upper.LessThanOrEqual(e.Lower) {
			return SlabTable{}, fmt.Errorf("%w: slab %d upper %s not above lower %s",
				ErrInvalidSlabTable, i, e.Upper, e.Lower)
		}
		if !entries[i+1].Lower.Equal(e.Upper) {
			return SlabTable{}, fmt.Errorf("%w: slab %d ends at %s but slab %d starts at %s",
				ErrInvalidSlabTable, i, e.Upper, i+1, entries[i+1].Lower)
		}
	}
	return SlabTable{Entries: entries}, nil
}

// mustSlabTable builds the compiled-in tables; a panic here is a
// programming error caught by the package tests.
func mustSlabTable(entries []SlabEntry) SlabTable {
	t, err := NewSlabTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// DeductionCaps holds the statutory per-category deduction limits.
type DeductionCaps struct {
	Section80C       decimal.Decimal `yaml:"section_80c" json:"section80C"`
	Section80D       decimal.Decimal `yaml:"section_80d" json:"section80D"`
	HomeLoanInterest decimal.Decimal `yaml:"home_loan_interest" json:"homeLoanInterest"`
}

// RegimeRules is the full rule set for one regime in one tax year: its slab
// table, standard deduction, cess rate, and which deduction categories it
// honors. Each regime is plain data; there is no per-regime code path.
type RegimeRules struct {
	Regime            Regime          `yaml:"regime" json:"regime"`
	Year              string          `yaml:"year" json:"year"`
	Slabs             SlabTable       `yaml:"slabs" json:"slabs"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standardDeduction"`
	CessRate          decimal.Decimal `yaml:"cess_rate" json:"cessRate"`

	AllowsHRA              bool `yaml:"allows_hra" json:"allowsHRA"`
	Allows80C              bool `yaml:"allows_80c" json:"allows80C"`
	Allows80D              bool `yaml:"allows_80d" json:"allows80D"`
	AllowsHomeLoanInterest bool `yaml:"allows_home_loan_interest" json:"allowsHomeLoanInterest"`
	AllowsOtherDeductions  bool `yaml:"allows_other_deductions" json:"allowsOtherDeductions"`

	Caps DeductionCaps `yaml:"caps" json:"caps"`
}
