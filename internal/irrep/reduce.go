package irrep

import "fmt"

// reduce decomposes a reducible product vector into table irreps using
// the projection formula
//
//	a_R = (1/h) * sum_i( size_i * chi_R(i) * p(i) )
//
// where h is the group order, size_i the class multiplicity, chi_R the
// candidate irrep's character, and p the product vector. The weighted
// sum is computed exactly in integers and divided last, so no rounding
// is involved: representation theory guarantees an integral result for
// a well-formed table, and any remainder or negative coefficient is
// reported as an internal consistency failure rather than clamped.
//
// Each candidate irrep appears a_R times in the result; iterating the
// table in order makes the result canonically sorted by construction.
func reduce(pg *PointGroup, prod []int) (Decomposition, error) {
	var out Decomposition
	for _, r := range pg.irreps {
		sum := 0
		for i, size := range pg.classSizes {
			sum += size * r.chars[i] * prod[i]
		}
		if sum%pg.order != 0 {
			return nil, &AlgebraError{
				Code:    ErrCodeBadTable,
				Message: fmt.Sprintf("reduction coefficient of %s is not integral (%d/%d)", r, sum, pg.order),
				Group:   pg.Name(),
			}
		}
		coeff := sum / pg.order
		if coeff < 0 {
			return nil, &AlgebraError{
				Code:    ErrCodeBadTable,
				Message: fmt.Sprintf("reduction coefficient of %s is negative (%d)", r, coeff),
				Group:   pg.Name(),
			}
		}
		for n := 0; n < coeff; n++ {
			out = append(out, r)
		}
	}
	return out, nil
}
