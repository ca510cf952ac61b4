// SPDX-License-Identifier: MIT

package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange reports a bit index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")

	// ErrLengthMismatch reports a binary operation on vectors of different lengths.
	ErrLengthMismatch = errors.New("bitvec: length mismatch")

	// ErrNegativeLength reports a negative bit-length at construction.
	ErrNegativeLength = errors.New("bitvec: negative length")
)

// violation panics with err wrapped in an operation tag. Contract violations
// are caller bugs, so they fail fast instead of returning an error.
func violation(op string, err error, format string, args ...any) {
	panic(fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err))
}
