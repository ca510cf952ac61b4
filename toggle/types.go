// SPDX-License-Identifier: MIT

package toggle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/xorsolve/minweight"
)

// Instance is one problem: a target pattern and the operations available.
type Instance struct {
	// Target holds the required state of each bit.
	Target []bool
	// Operations lists, per operation, the bit positions it flips.
	// An empty list is a valid no-op.
	Operations [][]int
	// Aux is an auxiliary numeric vector carried from the input. The solver
	// does not interpret it.
	Aux []int64
}

// Result describes the solution of one Instance.
type Result struct {
	// Feasible is false when no combination of operations reaches Target.
	Feasible bool
	// Weight is the minimum number of operations; 0 when infeasible.
	Weight int
	// Selection lists the operations of one optimal solution, ascending.
	Selection []int
	// Rank of the coefficient matrix; 0 when infeasible.
	Rank int
	// FreeVars is the number of free variables after identical operations
	// are merged and empty ones dropped.
	FreeVars int
	// Strategy is the coset search used.
	Strategy minweight.Strategy
}

var (
	// ErrInfeasibleInstance reports an instance without solution during aggregation.
	ErrInfeasibleInstance = errors.New("toggle: instance has no solution")

	// ErrInvalidInstance reports malformed instance data.
	ErrInvalidInstance = errors.New("toggle: invalid instance")
)

const (
	opSolve    = "Solve"
	opSolveAll = "SolveAll"
	opTotal    = "Total"
)

func toggleErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
