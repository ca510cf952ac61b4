// SPDX-License-Identifier: MIT

package gf2

import "github.com/katalvlaran/xorsolve/bitvec"

// Coset is the full solution set of a feasible system:
// { Particular XOR (XOR of any subset of Basis) }.
type Coset struct {
	// Particular is one solution; free variables are 0.
	Particular *bitvec.Vector
	// Basis spans the nullspace; one vector per free column, in column order.
	Basis []*bitvec.Vector

	// free[i] is the free column owned by Basis[i].
	free []int
}

// Extract derives a particular solution and a nullspace basis from a reduced
// system. red must come from a successful Eliminate.
//
//   - Particular: bit c of every pivot column c at row r equals target bit r.
//   - Basis: for free column f, v_f has bit f set plus bit c for every pivot
//     column c whose row has bit f set; toggling f forces exactly those
//     pivot variables to flip as well.
//
// Complexity: O(m * (rank + k)) bit tests, k = m - rank.
func Extract(red *Reduced) *Coset {
	m := red.cols

	x := bitvec.New(m)
	for c, r := range red.pivotRow {
		if r != freeColumn && red.target[r] {
			x.Set(c)
		}
	}

	basis := make([]*bitvec.Vector, 0, red.Nullity())
	free := make([]int, 0, red.Nullity())
	for f, fr := range red.pivotRow {
		if fr != freeColumn {
			continue
		}
		v := bitvec.New(m)
		v.Set(f)
		for c, r := range red.pivotRow {
			if r != freeColumn && red.rows[r].Test(f) {
				v.Set(c)
			}
		}
		basis = append(basis, v)
		free = append(free, f)
	}

	return &Coset{Particular: x, Basis: basis, free: free}
}

// Dim returns the number of basis vectors (free variables).
func (cs *Coset) Dim() int { return len(cs.Basis) }

// Combine returns Particular XOR the basis vectors selected by mask
// (bit i of mask selects Basis[i]). mask may only use the low Dim() bits.
func (cs *Coset) Combine(mask uint64) *bitvec.Vector {
	x := cs.Particular.Clone()
	for i, b := range cs.Basis {
		if mask&(1<<uint(i)) != 0 {
			x.Xor(b)
		}
	}
	return x
}

// Contains reports whether x solves the system cs was extracted from, i.e.
// x XOR Particular lies in the span of Basis. Each basis vector is the only
// one holding its free column, so the combination is read off the free bits
// of x XOR Particular. cs must come from Extract.
//
// Complexity: O(k * m/64).
func (cs *Coset) Contains(x *bitvec.Vector) bool {
	if x == nil || x.Len() != cs.Particular.Len() {
		return false
	}
	y := x.Clone()
	y.Xor(cs.Particular)
	for i, f := range cs.free {
		if y.Test(f) {
			y.Xor(cs.Basis[i])
		}
	}
	return y.IsZero()
}
