// SPDX-License-Identifier: MIT

// Package minweight - meet-in-the-middle coset search.
//
// The basis is split in two halves. Every pattern of the left half is stored
// once with its cheapest mask; every pattern of the right half is checked
// against them with an exact XOR popcount.
//
// Notes:
//   - Weights never add: popcount(a XOR b) is recomputed for each pair.
package minweight

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/xorsolve/bitvec"
)

// leftPattern is one distinct XOR pattern reachable from the left half.
type leftPattern struct {
	vec    *bitvec.Vector
	weight int
	mask   uint64
}

// leftPatterns enumerates every subset of left and keeps, per distinct
// pattern, the smallest weight that produced it. The result is sorted by
// weight (ties by mask) so callers can scan outward from a target weight.
//
// Complexity:
//   - Time O(2^h * m/64 + p log p), Space O(p * m/64), h = len(left),
//     p <= 2^h distinct patterns.
func leftPatterns(m int, left []*bitvec.Vector) []leftPattern {
	total := uint64(1) << uint(len(left))
	index := make(map[string]int, total)
	out := make([]leftPattern, 0, total)

	cur := bitvec.New(m)
	for i := uint64(0); i < total; i++ {
		if i > 0 {
			cur.Xor(left[bits.TrailingZeros64(i)])
		}
		w, g := cur.PopCount(), gray(i)
		key := cur.Key()
		if at, ok := index[key]; ok {
			if w < out[at].weight {
				out[at].weight, out[at].mask = w, g
			}
			continue
		}
		index[key] = len(out)
		out = append(out, leftPattern{vec: cur.Clone(), weight: w, mask: g})
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].weight != out[b].weight {
			return out[a].weight < out[b].weight
		}
		return out[a].mask < out[b].mask
	})
	return out
}

// meetInTheMiddle splits basis into ceil(k/2) left and floor(k/2) right
// vectors. For each right subset it forms y = x XOR right and evaluates
// popcount(y XOR L) exactly against stored left patterns L. Patterns are
// visited outward from weight(y); since popcount(y XOR L) is at least
// |weight(y) - weight(L)|, each direction stops once that bound reaches the
// incumbent.
//
// Complexity:
//   - Time O(2^(k-h) * (log p + s) * m/64), s = patterns inside the weight
//     window; s <= p = O(2^h) in the worst case.
//   - Space dominated by leftPatterns.
func meetInTheMiddle(x *bitvec.Vector, basis []*bitvec.Vector) Result {
	k := len(basis)
	h := (k + 1) / 2
	left, right := basis[:h], basis[h:]

	patterns := leftPatterns(x.Len(), left)

	bestW := x.PopCount()
	bestLeft, bestRight := uint64(0), uint64(0)
	evaluated := uint64(0)

	y := x.Clone()
	total := uint64(1) << uint(len(right))
	for j := uint64(0); j < total && bestW > 0; j++ {
		if j > 0 {
			y.Xor(right[bits.TrailingZeros64(j)])
		}
		wy := y.PopCount()
		start := sort.Search(len(patterns), func(i int) bool { return patterns[i].weight >= wy })

		consider := func(p *leftPattern) {
			evaluated++
			if w := y.XorPopCount(p.vec); w < bestW {
				bestW, bestLeft, bestRight = w, p.mask, gray(j)
			}
		}
		for i := start; i < len(patterns) && patterns[i].weight-wy < bestW; i++ {
			consider(&patterns[i])
		}
		for i := start - 1; i >= 0 && wy-patterns[i].weight < bestW; i-- {
			consider(&patterns[i])
		}
	}

	vec := combine(x, left, bestLeft)
	for i, b := range right {
		if bestRight&(1<<uint(i)) != 0 {
			vec.Xor(b)
		}
	}
	return Result{Weight: bestW, Vector: vec, Evaluated: evaluated}
}
