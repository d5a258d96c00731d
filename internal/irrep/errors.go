package irrep

import (
	"errors"
	"fmt"
)

// AlgebraError represents a failure in irrep lookup or combination.
type AlgebraError struct {
	// Code identifies the error category.
	Code AlgebraErrorCode

	// Message is a human-readable description.
	Message string

	// Group names the point group involved, if known.
	Group string
}

// AlgebraErrorCode categorizes algebra errors.
type AlgebraErrorCode string

const (
	// ErrCodeUnknownSymbol indicates a Mulliken symbol absent from the
	// group's character table.
	ErrCodeUnknownSymbol AlgebraErrorCode = "UNKNOWN_SYMBOL"

	// ErrCodeCrossGroup indicates an attempt to combine irreps of
	// different point groups. There is no automatic symmetry lowering.
	ErrCodeCrossGroup AlgebraErrorCode = "CROSS_GROUP"

	// ErrCodeBadOperand indicates a nil or zero-valued operand.
	ErrCodeBadOperand AlgebraErrorCode = "BAD_OPERAND"

	// ErrCodeBadTable indicates an internal consistency failure: the
	// reduction formula produced a negative or non-integral coefficient,
	// or a product left the table. The character table is malformed.
	ErrCodeBadTable AlgebraErrorCode = "BAD_TABLE"
)

// Error implements the error interface.
func (e *AlgebraError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("%s: %s (group=%s)", e.Code, e.Message, e.Group)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownSymbol returns true if the error reports a missing Mulliken
// symbol. Uses errors.As to handle wrapped errors.
func IsUnknownSymbol(err error) bool {
	var ae *AlgebraError
	if errors.As(err, &ae) {
		return ae.Code == ErrCodeUnknownSymbol
	}
	return false
}

// IsCrossGroup returns true if the error reports mixed point groups.
func IsCrossGroup(err error) bool {
	var ae *AlgebraError
	if errors.As(err, &ae) {
		return ae.Code == ErrCodeCrossGroup
	}
	return false
}

// IsBadTable returns true if the error reports an internal consistency
// failure of the character table.
func IsBadTable(err error) bool {
	var ae *AlgebraError
	if errors.As(err, &ae) {
		return ae.Code == ErrCodeBadTable
	}
	return false
}

func newCrossGroupError(a, b *PointGroup) *AlgebraError {
	return &AlgebraError{
		Code:    ErrCodeCrossGroup,
		Message: fmt.Sprintf("no automatic symmetry lowering: cannot combine irreps of point groups %s and %s", a.Name(), b.Name()),
		Group:   a.Name(),
	}
}

func newBadOperandError(msg string) *AlgebraError {
	return &AlgebraError{Code: ErrCodeBadOperand, Message: msg}
}
