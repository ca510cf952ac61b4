// SPDX-License-Identifier: MIT

package gf2

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasible reports that no combination of columns reaches the target.
	// It is an expected outcome, not a failure of the solver.
	ErrInfeasible = errors.New("gf2: system is infeasible")

	// ErrOperationIndex reports an operation that toggles a bit outside [0, n).
	ErrOperationIndex = errors.New("gf2: operation index out of range")

	// ErrNilSystem reports a nil *System or *Reduced argument.
	ErrNilSystem = errors.New("gf2: nil system")
)

const (
	opNewSystem = "NewSystem"
	opEliminate = "Eliminate"
)

// gf2Errorf tags err with the operation name, keeping it matchable via errors.Is.
func gf2Errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
