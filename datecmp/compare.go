// Package datecmp orders and compares date inputs. The three-way Compare is
// strict and reports an error for unusable operands, because -1/0/1 has no
// room for "invalid" and a silently wrong order inside a sort is worse than
// a failure. The boolean predicates (IsBefore, IsAfter, IsEqual, IsBetween)
// follow the opposite convention and simply report false on unusable input.
package datecmp

import (
	"errors"
	"fmt"

	"github.com/ngrash/go-datemath/instant"
)

// SortOrder selects the direction of a comparison. The zero value and any
// unrecognized value order ascending; only Descending flips the sign.
// Tolerating junk here keeps Compare usable from generic sorting call sites
// that pass the direction through untyped.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ErrInvalidOperand is reported by Compare when an operand is not a
// recognized date input or does not denote a valid instant.
var ErrInvalidOperand = errors.New("operand is not a valid date")

// Compare orders two date inputs: -1 if a precedes b, 1 if a follows b, 0 if
// they denote the same instant. With Descending the nonzero results swap
// sign. Both operands are validated before either is compared; an unusable
// operand is an error, never a made-up ordering.
func Compare(a, b any, order ...SortOrder) (int, error) {
	ia, ib := instant.From(a), instant.From(b)
	if !ia.Valid() {
		return 0, fmt.Errorf("left %w: %v", ErrInvalidOperand, a)
	}
	if !ib.Valid() {
		return 0, fmt.Errorf("right %w: %v", ErrInvalidOperand, b)
	}

	var r int
	switch {
	case ia.Before(ib):
		r = -1
	case ia.After(ib):
		r = 1
	}
	if len(order) > 0 && order[0] == Descending {
		r = -r
	}
	return r, nil
}
