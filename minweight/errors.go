// SPDX-License-Identifier: MIT

package minweight

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports basis vectors whose length differs from the particular solution.
	ErrLengthMismatch = errors.New("minweight: vector length mismatch")

	// ErrSearchSpaceTooLarge reports more free variables than MaxFreeVariables.
	ErrSearchSpaceTooLarge = errors.New("minweight: too many free variables")

	// ErrNilVector reports a nil particular solution or basis vector.
	ErrNilVector = errors.New("minweight: nil vector")
)

const opSearch = "Search"

func searchErrorf(err error) error {
	return fmt.Errorf("%s: %w", opSearch, err)
}
