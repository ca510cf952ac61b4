// SPDX-License-Identifier: MIT

// Package gf2 - Gauss-Jordan elimination over GF(2).
//
// This file reduces a System to reduced row-echelon form and records, per
// column, the row holding its pivot.
//
// Determinism:
//   - Pivots are chosen as the first eligible row, so equal inputs give equal
//     Reduced values.
//
// Concurrency:
//   - Eliminate owns its copies; a Reduced may be read from many goroutines.
package gf2

import (
	"fmt"

	"github.com/katalvlaran/xorsolve/bitvec"
	"github.com/sirupsen/logrus"
)

// freeColumn marks a column without a pivot in Reduced.pivotRow.
const freeColumn = -1

// Reduced is a System in reduced row-echelon form. It is read-only once
// returned by Eliminate.
type Reduced struct {
	rows     []*bitvec.Vector
	target   []bool
	cols     int
	rank     int
	pivotRow []int // column -> pivot row, or freeColumn
}

// Eliminate row-reduces sys over GF(2) and checks feasibility.
// sys is left untouched; elimination runs on copies of its rows.
//
// Implementation:
//   - For c = 0..m-1 find the first row i >= r with bit c set.
//   - Swap it into row r, then XOR row r (and its target bit) into every
//     other row with bit c set, clearing column c outside the pivot row.
//   - Record pivotRow[c] = r and advance r; stop once r == n.
//   - Any row left with no coefficients but target 1 proves infeasibility.
//
// Errors:
//   - ErrNilSystem if sys is nil.
//   - ErrInfeasible (wrapped with the offending row) if the target is unreachable.
//     The returned *Reduced is nil in that case.
//
// Complexity:
//   - Time O(min(n, m) * n * m/64) word operations, Space O(n * m/64).
func Eliminate(sys *System) (*Reduced, error) {
	if sys == nil {
		return nil, gf2Errorf(opEliminate, ErrNilSystem)
	}

	n, m := len(sys.rows), sys.cols
	rows := make([]*bitvec.Vector, n)
	for i, row := range sys.rows {
		rows[i] = row.Clone()
	}
	target := make([]bool, n)
	copy(target, sys.target)

	pivotRow := make([]int, m)
	for c := range pivotRow {
		pivotRow[c] = freeColumn
	}

	r := 0
	for c := 0; c < m && r < n; c++ {
		sel := -1
		for i := r; i < n; i++ {
			if rows[i].Test(c) {
				sel = i
				break
			}
		}
		if sel < 0 {
			continue
		}

		rows[r], rows[sel] = rows[sel], rows[r]
		target[r], target[sel] = target[sel], target[r]

		pivot, pivotBit := rows[r], target[r]
		for i := 0; i < n; i++ {
			if i != r && rows[i].Test(c) {
				rows[i].Xor(pivot)
				target[i] = target[i] != pivotBit
			}
		}
		pivotRow[c] = r
		r++
	}

	for i := 0; i < n; i++ {
		if target[i] && rows[i].IsZero() {
			log.WithField("row", i).Debug("inconsistent row after elimination")
			return nil, gf2Errorf(opEliminate, fmt.Errorf("row %d reads 0 = 1: %w", i, ErrInfeasible))
		}
	}

	log.WithFields(logrus.Fields{
		"rows": n, "cols": m, "rank": r,
	}).Debug("system reduced")

	return &Reduced{rows: rows, target: target, cols: m, rank: r, pivotRow: pivotRow}, nil
}

// Rank returns the number of pivot columns.
func (red *Reduced) Rank() int { return red.rank }

// Rows returns the number of rows (target bits).
func (red *Reduced) Rows() int { return len(red.rows) }

// Cols returns the number of columns (operations).
func (red *Reduced) Cols() int { return red.cols }

// Nullity returns the number of free columns, m - rank.
func (red *Reduced) Nullity() int { return red.cols - red.rank }

// PivotRow returns the row holding column c's pivot, or ok=false if c is free.
func (red *Reduced) PivotRow(c int) (row int, ok bool) {
	row = red.pivotRow[c]
	return row, row != freeColumn
}

// PivotColumns returns the pivot columns in ascending order.
func (red *Reduced) PivotColumns() []int {
	out := make([]int, 0, red.rank)
	for c, r := range red.pivotRow {
		if r != freeColumn {
			out = append(out, c)
		}
	}
	return out
}

// FreeColumns returns the columns without a pivot in ascending order.
func (red *Reduced) FreeColumns() []int {
	out := make([]int, 0, red.Nullity())
	for c, r := range red.pivotRow {
		if r == freeColumn {
			out = append(out, c)
		}
	}
	return out
}

// Row returns a copy of reduced row i.
func (red *Reduced) Row(i int) *bitvec.Vector { return red.rows[i].Clone() }

// Target returns reduced target bit i.
func (red *Reduced) Target(i int) bool { return red.target[i] }
