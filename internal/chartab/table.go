package chartab

import (
	"fmt"
	"slices"
	"strings"
)

// Row is one irreducible representation entry of a character table.
type Row struct {
	// Symbol is the lowercase Mulliken symbol ("a1g", "e2u").
	Symbol string `json:"symbol" yaml:"symbol"`

	// Chars holds one character per symmetry-operation class, parallel
	// to the table's ClassSizes.
	Chars []int `json:"chars" yaml:"chars"`

	// Degenerate is true iff the identity-class character exceeds 1.
	Degenerate bool `json:"degenerate" yaml:"degenerate"`
}

// Table is the character table of one point group.
//
// Rows are in canonical textbook order with the totally symmetric
// irrep first. ClassSizes holds the operation count of each class and
// sums to Order.
type Table struct {
	Family     string `json:"family" yaml:"family"`
	N          int    `json:"n" yaml:"n"`
	Order      int    `json:"order" yaml:"order"`
	ClassSizes []int  `json:"class_sizes" yaml:"class_sizes"`
	Rows       []Row  `json:"rows" yaml:"rows"`
}

// Name returns the conventional display name of the table's group.
func (t Table) Name() string {
	return DisplayName(t.Family, t.N)
}

// Validate checks the structural invariants of a table. It fails fast
// with a *TableError carrying ErrCodeInvalidTable.
func (t Table) Validate() error {
	name := t.Name()
	fail := func(format string, args ...any) error {
		return &TableError{
			Code:    ErrCodeInvalidTable,
			Message: fmt.Sprintf(format, args...),
			Group:   name,
		}
	}

	if t.Family == "" || !isAlpha(t.Family) {
		return fail("family %q must be lowercase letters", t.Family)
	}
	if t.N < 1 {
		return fail("n must be >= 1, got %d", t.N)
	}
	if t.Order < 1 {
		return fail("order must be >= 1, got %d", t.Order)
	}
	if len(t.Rows) == 0 {
		return fail("table has no rows")
	}
	if len(t.ClassSizes) == 0 {
		return fail("table has no class sizes")
	}

	sum := 0
	for i, size := range t.ClassSizes {
		if size < 1 {
			return fail("class size %d must be positive, got %d", i, size)
		}
		sum += size
	}
	if sum != t.Order {
		return fail("class sizes sum to %d, want order %d", sum, t.Order)
	}

	seenSymbols := make(map[string]bool, len(t.Rows))
	seenChars := make(map[string]string, len(t.Rows))
	for i, row := range t.Rows {
		if row.Symbol == "" || row.Symbol != strings.ToLower(row.Symbol) {
			return fail("row %d: symbol %q must be non-empty lowercase", i, row.Symbol)
		}
		if seenSymbols[row.Symbol] {
			return fail("duplicate symbol %q", row.Symbol)
		}
		seenSymbols[row.Symbol] = true

		if len(row.Chars) != len(t.ClassSizes) {
			return fail("row %q has %d characters, want %d", row.Symbol, len(row.Chars), len(t.ClassSizes))
		}
		key := charKey(row.Chars)
		if prev, ok := seenChars[key]; ok {
			return fail("rows %q and %q share a character vector", prev, row.Symbol)
		}
		seenChars[key] = row.Symbol

		if row.Degenerate != (row.Chars[0] > 1) {
			return fail("row %q: degenerate=%v contradicts identity character %d", row.Symbol, row.Degenerate, row.Chars[0])
		}
	}

	// The first row is the totally symmetric irrep by convention.
	for i, c := range t.Rows[0].Chars {
		if c != 1 {
			return fail("first row %q must be all ones, class %d is %d", t.Rows[0].Symbol, i, c)
		}
	}

	return nil
}

// charKey encodes a character vector for map lookup.
func charKey(chars []int) string {
	var b strings.Builder
	for i, c := range chars {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", c)
	}
	return b.String()
}

// clone returns a deep copy so registered tables cannot be mutated
// through the caller's slices.
func (t Table) clone() Table {
	out := t
	out.ClassSizes = slices.Clone(t.ClassSizes)
	out.Rows = make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = Row{
			Symbol:     row.Symbol,
			Chars:      slices.Clone(row.Chars),
			Degenerate: row.Degenerate,
		}
	}
	return out
}
