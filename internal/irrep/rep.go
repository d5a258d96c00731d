package irrep

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Rep is the sealed result type of the irrep algebra: either a single
// Irrep or a Decomposition of several. Only those two types implement
// it. A single Irrep behaves as a unit collection of itself, so callers
// can treat both cases uniformly.
type Rep interface {
	rep() // sealed

	// Len returns the number of irreducible components.
	Len() int

	// Contains reports whether an equal irrep is among the components.
	Contains(ir Irrep) bool

	// Components returns the components in canonical order.
	Components() []Irrep

	// String renders the components as Mulliken symbols.
	String() string
}

// Irrep is one irreducible representation of a point group: a character
// vector bound to its owning group plus a degeneracy flag. The zero
// value is invalid; obtain irreps from a PointGroup or an algebra
// operation. Irreps are immutable.
type Irrep struct {
	pg         *PointGroup
	chars      []int
	degenerate bool
	pos        int
}

func (Irrep) rep() {}

// Group returns the owning point group.
func (i Irrep) Group() *PointGroup { return i.pg }

// Chars returns a copy of the character vector, one entry per
// symmetry-operation class.
func (i Irrep) Chars() []int { return slices.Clone(i.chars) }

// Degenerate reports whether the irrep is more than one-dimensional
// (identity-class character > 1).
func (i Irrep) Degenerate() bool { return i.degenerate }

// Dim returns the dimension of the representation, its identity-class
// character.
func (i Irrep) Dim() int { return i.chars[0] }

// Equal reports whether two irreps belong to equal point groups and
// carry identical character vectors.
func (i Irrep) Equal(other Irrep) bool {
	return i.pg.Equal(other.pg) && slices.Equal(i.chars, other.chars)
}

// Len returns 1: a bare irrep is a unit collection of itself.
func (i Irrep) Len() int { return 1 }

// Contains reports whether the argument equals this irrep.
func (i Irrep) Contains(other Irrep) bool { return i.Equal(other) }

// Components returns the irrep as a one-element slice.
func (i Irrep) Components() []Irrep { return []Irrep{i} }

// String returns the Mulliken symbol ("b3u"). Irreps whose vector is
// not a table entry of their group render as "?".
func (i Irrep) String() string {
	if i.pg == nil {
		return "?"
	}
	if s := i.pg.Symbol(i); s != "" {
		return s
	}
	return "?"
}

// GoString returns the diagnostic rendering with the full character
// vector and degeneracy flag.
func (i Irrep) GoString() string {
	if i.pg == nil {
		return "irrep.Irrep{}"
	}
	return fmt.Sprintf("irrep.Irrep{pg: %s, chars: %v, degenerate: %v}", i.pg.Name(), i.chars, i.degenerate)
}

// valid reports whether the irrep was produced by a point group.
func (i Irrep) valid() bool { return i.pg != nil }

// Decomposition is a canonically sorted multiset of irreps of one point
// group. Multiplicities are preserved as repeated adjacent elements.
type Decomposition []Irrep

func (Decomposition) rep() {}

// Len returns the number of components, counting multiplicity.
func (d Decomposition) Len() int { return len(d) }

// Contains reports whether an equal irrep is among the components.
func (d Decomposition) Contains(ir Irrep) bool {
	for _, c := range d {
		if c.Equal(ir) {
			return true
		}
	}
	return false
}

// Components returns a copy of the component slice.
func (d Decomposition) Components() []Irrep {
	return slices.Clone([]Irrep(d))
}

// String joins the component symbols: "a1g + a2g + e2g".
func (d Decomposition) String() string {
	parts := make([]string, len(d))
	for i, c := range d {
		parts[i] = c.String()
	}
	return strings.Join(parts, " + ")
}

// sortCanonical stable-sorts components by canonical table position,
// keeping equal irreps adjacent in insertion order. All components must
// share one point group; callers enforce that before sorting.
func (d Decomposition) sortCanonical() {
	sort.SliceStable(d, func(a, b int) bool {
		return d[a].pos < d[b].pos
	})
}
