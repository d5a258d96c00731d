// Package irrep implements the algebra of irreducible representations
// of molecular symmetry point groups.
//
// A PointGroup wraps one character table from chartab and hands out
// Irrep values bound to it. Irreps combine through Mul, Add, and Pow;
// a product of two degenerate irreps is reducible and is decomposed
// into table irreps with the standard projection formula. Results are
// the sealed Rep sum type: either a single Irrep or a canonically
// sorted Decomposition.
//
// All values are immutable after construction, so groups and irreps
// may be shared across goroutines without synchronization.
package irrep
