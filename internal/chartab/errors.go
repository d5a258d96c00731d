package chartab

import (
	"errors"
	"fmt"
)

// TableError represents a failure in table lookup, parsing, or validation.
type TableError struct {
	// Code identifies the error category.
	Code TableErrorCode

	// Message is a human-readable description.
	Message string

	// Group names the affected point group or family, if known.
	Group string
}

// TableErrorCode categorizes table errors.
type TableErrorCode string

const (
	// ErrCodeBadGroupName indicates a name that parses as neither a plain
	// family tag nor a family with a single embedded order.
	ErrCodeBadGroupName TableErrorCode = "BAD_GROUP_NAME"

	// ErrCodeUnsupportedGroup indicates no table is registered for (family, n).
	ErrCodeUnsupportedGroup TableErrorCode = "UNSUPPORTED_GROUP"

	// ErrCodeInvalidTable indicates table data that violates a structural
	// invariant (class sizes, row lengths, symbol uniqueness, ...).
	ErrCodeInvalidTable TableErrorCode = "INVALID_TABLE"

	// ErrCodeDuplicateTable indicates a registration for an already
	// registered (family, n).
	ErrCodeDuplicateTable TableErrorCode = "DUPLICATE_TABLE"
)

// Error implements the error interface.
func (e *TableError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("%s: %s (group=%s)", e.Code, e.Message, e.Group)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnsupportedGroup returns true if the error reports a missing table.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedGroup(err error) bool {
	var te *TableError
	if errors.As(err, &te) {
		return te.Code == ErrCodeUnsupportedGroup
	}
	return false
}

// IsBadGroupName returns true if the error reports an unparseable name.
func IsBadGroupName(err error) bool {
	var te *TableError
	if errors.As(err, &te) {
		return te.Code == ErrCodeBadGroupName
	}
	return false
}

// IsInvalidTable returns true if the error reports malformed table data.
func IsInvalidTable(err error) bool {
	var te *TableError
	if errors.As(err, &te) {
		return te.Code == ErrCodeInvalidTable
	}
	return false
}
