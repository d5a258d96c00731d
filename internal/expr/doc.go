// Package expr parses and evaluates irrep expressions against one
// point group, for example "e2u + e1g*e2u*e2u + a1g" on D6h.
//
// Grammar (binding tightest last):
//
//	expr    := term  { "+" term }
//	term    := factor { "*" factor }
//	factor  := primary { "**" INT }
//	primary := SYMBOL | "(" expr ")"
//
// Operators map onto irrep.Add, irrep.Mul, and irrep.Pow, so "**"
// requires a single-irrep base.
package expr
