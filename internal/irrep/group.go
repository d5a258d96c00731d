package irrep

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/symm/internal/chartab"
)

// PointGroup is a molecular symmetry point group backed by one
// character table. Identity is (family, n): two PointGroup values are
// equal iff both match, regardless of which registry built them.
type PointGroup struct {
	family     string
	n          int
	order      int
	classSizes []int
	irreps     []Irrep
	symbols    []string
	bySymbol   map[string]int
	byChars    map[string]int
}

// New constructs a point group from a complete name such as "D2h".
// Plain family tags ("cn") default to order 1, matching NewWithOrder.
func New(reg *chartab.Registry, name string) (*PointGroup, error) {
	return NewWithOrder(reg, name, 1)
}

// NewWithOrder constructs a point group from a name and an explicit
// order. The order is only consulted when the name is a plain family
// tag without digits.
func NewWithOrder(reg *chartab.Registry, name string, order int) (*PointGroup, error) {
	tab, err := reg.LookupName(name, order)
	if err != nil {
		return nil, err
	}
	return fromTable(tab), nil
}

func fromTable(tab chartab.Table) *PointGroup {
	pg := &PointGroup{
		family:     tab.Family,
		n:          tab.N,
		order:      tab.Order,
		classSizes: slices.Clone(tab.ClassSizes),
		irreps:     make([]Irrep, 0, len(tab.Rows)),
		symbols:    make([]string, 0, len(tab.Rows)),
		bySymbol:   make(map[string]int, len(tab.Rows)),
		byChars:    make(map[string]int, len(tab.Rows)),
	}
	for i, row := range tab.Rows {
		pg.irreps = append(pg.irreps, Irrep{
			pg:         pg,
			chars:      slices.Clone(row.Chars),
			degenerate: row.Degenerate,
			pos:        i,
		})
		pg.symbols = append(pg.symbols, row.Symbol)
		pg.bySymbol[row.Symbol] = i
		pg.byChars[charKey(row.Chars)] = i
	}
	return pg
}

// Name returns the conventional title-cased group name ("D6h").
func (pg *PointGroup) Name() string {
	return chartab.DisplayName(pg.family, pg.n)
}

// Family returns the family tag with the order placeholder ("dnh").
func (pg *PointGroup) Family() string { return pg.family }

// N returns the order of the highest-order symmetry operation.
func (pg *PointGroup) N() int { return pg.n }

// Order returns the total number of symmetry operations in the group.
func (pg *PointGroup) Order() int { return pg.order }

// ClassSizes returns a copy of the per-class operation multiplicities.
// The sizes are parallel to every irrep's character vector and sum to
// Order.
func (pg *PointGroup) ClassSizes() []int {
	return slices.Clone(pg.classSizes)
}

// Equal reports whether two point groups denote the same (family, n).
func (pg *PointGroup) Equal(other *PointGroup) bool {
	if pg == nil || other == nil {
		return pg == other
	}
	return pg.family == other.family && pg.n == other.n
}

// Irrep looks up an irreducible representation by its Mulliken symbol,
// case-insensitively.
func (pg *PointGroup) Irrep(symbol string) (Irrep, error) {
	idx, ok := pg.bySymbol[strings.ToLower(symbol)]
	if !ok {
		return Irrep{}, &AlgebraError{
			Code:    ErrCodeUnknownSymbol,
			Message: fmt.Sprintf("character %q does not exist in point group %s", symbol, pg.Name()),
			Group:   pg.Name(),
		}
	}
	return pg.irreps[idx], nil
}

// Symbol returns the Mulliken symbol of an irrep of this group.
// The irrep must have been obtained from this group (or be equal to
// one of its table entries); otherwise the empty string is returned.
func (pg *PointGroup) Symbol(ir Irrep) string {
	if !pg.Equal(ir.pg) {
		return ""
	}
	idx, ok := pg.byChars[charKey(ir.chars)]
	if !ok {
		return ""
	}
	return pg.symbols[idx]
}

// TotallySymmetric returns the first table entry, the identity element
// of the irrep product.
func (pg *PointGroup) TotallySymmetric() Irrep {
	return pg.irreps[0]
}

// Irreps returns all irreps in canonical table order.
func (pg *PointGroup) Irreps() []Irrep {
	return slices.Clone(pg.irreps)
}

// String returns the conventional group name.
func (pg *PointGroup) String() string { return pg.Name() }

// position returns the canonical table index of a character vector.
func (pg *PointGroup) position(chars []int) (int, bool) {
	idx, ok := pg.byChars[charKey(chars)]
	return idx, ok
}

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
