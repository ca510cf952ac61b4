// SPDX-License-Identifier: MIT

package toggle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/xorsolve/bitvec"
	"github.com/katalvlaran/xorsolve/gf2"
	"github.com/katalvlaran/xorsolve/minweight"
	"github.com/sirupsen/logrus"
)

// Solver solves instances with a fixed configuration. It is safe for
// concurrent use; it holds no per-instance state.
type Solver struct {
	cfg solverConfig
}

// NewSolver returns a Solver configured by opts.
func NewSolver(opts ...Option) *Solver {
	return &Solver{cfg: newSolverConfig(opts)}
}

var defaultSolver = NewSolver()

// MinOperations returns the minimum number of operations that reproduce
// target, and false if no combination does (or the input is malformed).
//
// Panics with an error wrapping minweight.ErrSearchSpaceTooLarge when the
// instance is solvable but, after identical operations are merged, still has
// more than minweight.MaxFreeVariables free variables. Use Solver.Solve to
// receive that condition as an error instead.
func MinOperations(target []bool, ops [][]int) (int, bool) {
	res, err := defaultSolver.Solve(Instance{Target: target, Operations: ops})
	if errors.Is(err, minweight.ErrSearchSpaceTooLarge) {
		panic(err)
	}
	if err != nil || !res.Feasible {
		return 0, false
	}
	return res.Weight, true
}

// Solve finds the minimum-weight solution of inst.
//
// Stages: build the coefficient system, eliminate (infeasibility stops here),
// extract particular solution and nullspace basis, then search the coset.
//
// Operations that toggle exactly the same bits are merged into the first of
// them and no-op operations are dropped before elimination: an optimal
// selection never uses two identical operations or an empty one.
//
// Errors:
//   - ErrInvalidInstance wrapping gf2.ErrOperationIndex for bad positions.
//   - minweight.ErrSearchSpaceTooLarge when the nullspace is too large to
//     search. The instance is solvable; the returned Result has Feasible,
//     Rank and FreeVars set.
func (s *Solver) Solve(inst Instance) (Result, error) {
	res, err := s.solve(inst)
	s.cfg.metrics.observe(res, err)
	return res, err
}

func (s *Solver) solve(inst Instance) (Result, error) {
	full, err := gf2.NewSystem(inst.Target, inst.Operations)
	if err != nil {
		return Result{}, toggleErrorf(opSolve, fmt.Errorf("%w: %w", ErrInvalidInstance, err))
	}

	reps := distinctOperations(full)
	ops := make([][]int, len(reps))
	for j, rep := range reps {
		ops[j] = inst.Operations[rep]
	}
	sys, err := gf2.NewSystem(inst.Target, ops)
	if err != nil {
		return Result{}, toggleErrorf(opSolve, err)
	}

	red, err := gf2.Eliminate(sys)
	if errors.Is(err, gf2.ErrInfeasible) {
		s.cfg.log.WithFields(logrus.Fields{
			"bits": sys.Rows(), "ops": sys.Cols(),
		}).Debug("target unreachable")
		return Result{}, nil
	}
	if err != nil {
		return Result{}, toggleErrorf(opSolve, err)
	}

	cs := gf2.Extract(red)
	found, err := minweight.Search(cs.Particular, cs.Basis, s.cfg.search...)
	if err != nil {
		return Result{Feasible: true, Rank: red.Rank(), FreeVars: cs.Dim()}, toggleErrorf(opSolve, err)
	}

	chosen := found.Vector.Indices()
	for i, j := range chosen {
		chosen[i] = reps[j]
	}

	s.cfg.log.WithFields(logrus.Fields{
		"bits":     sys.Rows(),
		"ops":      full.Cols(),
		"distinct": sys.Cols(),
		"rank":     red.Rank(),
		"free":     cs.Dim(),
		"weight":   found.Weight,
		"strategy": found.Strategy,
	}).Debug("instance solved")

	return Result{
		Feasible:  true,
		Weight:    found.Weight,
		Selection: chosen,
		Rank:      red.Rank(),
		FreeVars:  cs.Dim(),
		Strategy:  found.Strategy,
	}, nil
}

// distinctOperations returns, in ascending order, the index of the first
// operation of every distinct non-empty toggle set in sys.
func distinctOperations(sys *gf2.System) []int {
	seen := make(map[string]struct{}, sys.Cols())
	reps := make([]int, 0, sys.Cols())
	for j := 0; j < sys.Cols(); j++ {
		col := sys.Column(j)
		if col.IsZero() {
			continue
		}
		key := col.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		reps = append(reps, j)
	}
	return reps
}

// Verify reports whether applying exactly the operations in selection to an
// all-zero pattern yields inst.Target. Out-of-range positions or operation
// numbers make it return false.
func Verify(inst Instance, selection []int) bool {
	n := len(inst.Target)
	state := bitvec.New(n)
	for _, j := range selection {
		if j < 0 || j >= len(inst.Operations) {
			return false
		}
		op := bitvec.New(n)
		for _, i := range inst.Operations[j] {
			if i < 0 || i >= n {
				return false
			}
			op.Set(i)
		}
		state.Xor(op)
	}
	return state.Equal(bitvec.FromBools(inst.Target))
}
