// SPDX-License-Identifier: MIT

// Package minweight - exhaustive coset walk.
//
// Gray-code enumeration changes one basis vector per step, so every candidate
// costs a single in-place XOR and a popcount.
package minweight

import (
	"math/bits"

	"github.com/katalvlaran/xorsolve/bitvec"
)

// exhaustive visits all 2^k subsets in Gray-code order. Step i flips basis
// vector tz(i), so the running vector always equals x XOR basis[gray(i)].
// It stops early once a zero-weight vector is found.
//
// Complexity:
//   - Time O(2^k * m/64), Space O(m/64).
func exhaustive(x *bitvec.Vector, basis []*bitvec.Vector) Result {
	k := len(basis)
	cur := x.Clone()

	bestW := cur.PopCount()
	bestMask := uint64(0)
	evaluated := uint64(1)

	total := uint64(1) << uint(k)
	for i := uint64(1); i < total && bestW > 0; i++ {
		cur.Xor(basis[bits.TrailingZeros64(i)])
		evaluated++
		if w := cur.PopCount(); w < bestW {
			bestW = w
			bestMask = gray(i)
		}
	}

	return Result{Weight: bestW, Vector: combine(x, basis, bestMask), Evaluated: evaluated}
}
