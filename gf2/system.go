// SPDX-License-Identifier: MIT

package gf2

import (
	"fmt"

	"github.com/katalvlaran/xorsolve/bitvec"
)

// System is an n x m coefficient matrix over GF(2) with its target column.
// Row i holds, for every operation j, whether j toggles target bit i.
type System struct {
	rows   []*bitvec.Vector
	target []bool
	cols   int
}

// NewSystem builds the coefficient system for a target pattern and a list of
// toggle operations. ops[j] lists the bit positions operation j flips; an
// empty list is a valid no-op. Repeated positions inside one operation count
// once.
//
// Errors:
//   - ErrOperationIndex if any position falls outside [0, len(target)).
func NewSystem(target []bool, ops [][]int) (*System, error) {
	n, m := len(target), len(ops)

	rows := make([]*bitvec.Vector, n)
	for i := range rows {
		rows[i] = bitvec.New(m)
	}

	for j, op := range ops {
		for _, i := range op {
			if i < 0 || i >= n {
				return nil, gf2Errorf(opNewSystem,
					fmt.Errorf("operation %d toggles bit %d, pattern has %d: %w", j, i, n, ErrOperationIndex))
			}
			rows[i].Set(j)
		}
	}

	t := make([]bool, n)
	copy(t, target)

	return &System{rows: rows, target: t, cols: m}, nil
}

// Rows returns n, the number of target bits.
func (s *System) Rows() int { return len(s.rows) }

// Cols returns m, the number of operations.
func (s *System) Cols() int { return s.cols }

// Row returns a copy of coefficient row i.
func (s *System) Row(i int) *bitvec.Vector { return s.rows[i].Clone() }

// Target returns target bit i.
func (s *System) Target(i int) bool { return s.target[i] }

// Column returns the bits toggled by operation j as a length-n vector.
func (s *System) Column(j int) *bitvec.Vector {
	col := bitvec.New(len(s.rows))
	for i, row := range s.rows {
		if row.Test(j) {
			col.Set(i)
		}
	}
	return col
}

// Apply returns the pattern produced by applying the operations whose bits are
// set in x to an all-zero pattern. x must have length Cols().
func (s *System) Apply(x *bitvec.Vector) []bool {
	out := make([]bool, len(s.rows))
	for i, row := range s.rows {
		r := row.Clone()
		for j := 0; j < s.cols; j++ {
			if !x.Test(j) {
				r.Clear(j)
			}
		}
		out[i] = r.PopCount()%2 == 1
	}
	return out
}

// Satisfies reports whether x solves the system exactly.
func (s *System) Satisfies(x *bitvec.Vector) bool {
	got := s.Apply(x)
	for i := range got {
		if got[i] != s.target[i] {
			return false
		}
	}
	return true
}
