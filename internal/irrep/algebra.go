package irrep

import "fmt"

// Mul computes the direct product of two representations.
//
// Irrep x Irrep with at most one degenerate operand is closed in the
// table and yields a single Irrep. Both operands degenerate yields the
// reduction of the product vector into a Decomposition. Any
// Decomposition operand distributes the product over every component,
// flattens, and sorts. Operands must share one point group.
func Mul(a, b Rep) (Rep, error) {
	if err := checkOperand(a); err != nil {
		return nil, err
	}
	if err := checkOperand(b); err != nil {
		return nil, err
	}

	ai, aOK := a.(Irrep)
	bi, bOK := b.(Irrep)
	if aOK && bOK {
		return mulIrreps(ai, bi)
	}

	// At least one side is a decomposition: distribute and flatten.
	var out Decomposition
	for _, x := range a.Components() {
		for _, y := range b.Components() {
			prod, err := mulIrreps(x, y)
			if err != nil {
				return nil, err
			}
			out = append(out, prod.Components()...)
		}
	}
	out.sortCanonical()
	return out, nil
}

// Mul multiplies the irrep by another representation of the same group.
func (i Irrep) Mul(other Rep) (Rep, error) {
	return Mul(i, other)
}

// Mul distributes a decomposition over another representation.
func (d Decomposition) Mul(other Rep) (Rep, error) {
	return Mul(d, other)
}

// Add computes the direct sum: a literal multiset union of the
// components of both sides, canonically sorted. No reduction or
// cancellation is performed.
func Add(a, b Rep) (Decomposition, error) {
	if err := checkOperand(a); err != nil {
		return nil, err
	}
	if err := checkOperand(b); err != nil {
		return nil, err
	}

	out := make(Decomposition, 0, a.Len()+b.Len())
	out = append(out, a.Components()...)
	out = append(out, b.Components()...)
	for _, c := range out[1:] {
		if !out[0].pg.Equal(c.pg) {
			return nil, newCrossGroupError(out[0].pg, c.pg)
		}
	}
	out.sortCanonical()
	return out, nil
}

// Add sums the irrep with another representation of the same group.
func (i Irrep) Add(other Rep) (Decomposition, error) {
	return Add(i, other)
}

// Add appends another representation to the decomposition.
func (d Decomposition) Add(other Rep) (Decomposition, error) {
	return Add(d, other)
}

// Pow raises an irrep to an integer power by repeated multiplication,
// left to right. Intermediate results may become decompositions once a
// degenerate self-product reduces.
//
// For k < 2 the irrep is returned unchanged, including k == 0 and k == 1.
// This preserves the established behavior of the algebra and is a
// deliberate compatibility choice: a group-theoretic zeroth power would
// be the totally symmetric irrep instead.
func Pow(a Irrep, k int) (Rep, error) {
	if !a.valid() {
		return nil, newBadOperandError("cannot exponentiate the zero Irrep")
	}
	if k < 2 {
		return a, nil
	}
	acc := Rep(a)
	for step := 1; step < k; step++ {
		next, err := Mul(acc, a)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// Pow raises the irrep to an integer power.
func (i Irrep) Pow(k int) (Rep, error) {
	return Pow(i, k)
}

// mulIrreps multiplies two single irreps of the same group.
func mulIrreps(a, b Irrep) (Rep, error) {
	if !a.pg.Equal(b.pg) {
		return nil, newCrossGroupError(a.pg, b.pg)
	}

	prod := make([]int, len(a.chars))
	for i := range a.chars {
		prod[i] = a.chars[i] * b.chars[i]
	}

	if a.degenerate && b.degenerate {
		// The product of two degenerate irreps is reducible.
		return reduce(a.pg, prod)
	}

	pos, ok := a.pg.position(prod)
	if !ok {
		return nil, &AlgebraError{
			Code:    ErrCodeBadTable,
			Message: fmt.Sprintf("product %s * %s is not an irrep of %s: character table violates closure", a, b, a.pg.Name()),
			Group:   a.pg.Name(),
		}
	}
	return Irrep{
		pg:         a.pg,
		chars:      prod,
		degenerate: a.degenerate || b.degenerate,
		pos:        pos,
	}, nil
}

// checkOperand rejects nil Reps and zero-valued irreps, the only
// invalid operands the sealed Rep type leaves expressible.
func checkOperand(r Rep) error {
	switch v := r.(type) {
	case nil:
		return newBadOperandError("operand is nil")
	case Irrep:
		if !v.valid() {
			return newBadOperandError("operand is the zero Irrep")
		}
	case Decomposition:
		if len(v) == 0 {
			return newBadOperandError("operand is an empty decomposition")
		}
		for _, c := range v {
			if !c.valid() {
				return newBadOperandError("decomposition holds the zero Irrep")
			}
		}
	}
	return nil
}
