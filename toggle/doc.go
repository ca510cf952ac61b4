// SPDX-License-Identifier: MIT

// Package toggle solves minimum-toggle instances: given a target bit pattern
// and a list of operations that each flip a fixed set of positions, find the
// fewest operations (each used at most once) whose combined flips produce the
// target.
//
// Pipeline per instance
//
//	gf2.NewSystem -> merge identical operations -> gf2.Eliminate
//	  -> gf2.Extract -> minweight.Search
//
// An unreachable target is a normal outcome: Solve returns Result{Feasible:
// false} with a nil error. Errors are reserved for malformed input (an
// operation index outside the pattern) and resource limits. A solvable
// instance that exceeds minweight.MaxFreeVariables is reported with
// Feasible=true and minweight.ErrSearchSpaceTooLarge, never as infeasible.
//
// Batches
//
//	Instances are independent, so Solver.SolveAll may run them on several
//	goroutines (WithWorkers). Each instance owns its matrix, basis and search
//	state; only the read-only input slice is shared. Solver.Total sums the
//	minimums and fails with ErrInfeasibleInstance on the first instance that
//	has no solution.
//
// Usage
//
//	w, ok := toggle.MinOperations(target, ops)
//
//	s := toggle.NewSolver(toggle.WithWorkers(4))
//	sum, err := s.Total(ctx, instances)
//	if errors.Is(err, toggle.ErrInfeasibleInstance) {
//		// one instance cannot be solved
//	}
package toggle
