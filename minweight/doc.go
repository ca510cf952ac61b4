// SPDX-License-Identifier: MIT

// Package minweight finds the minimum-weight vector in an affine GF(2) coset:
//
//	min over S ⊆ {0..k-1} of popcount(x XOR (XOR_{i in S} basis[i]))
//
// where x is a particular solution and basis spans the nullspace of the
// system. The weight of a vector is its population count, i.e. the number of
// toggle operations it uses.
//
// Strategies
//
//   - Exhaustive: walks all 2^k subsets in Gray-code order so each step costs
//     a single XOR. Used when k <= ExhaustiveLimit (default 24).
//   - MeetInTheMiddle: splits the basis into a left half of ceil(k/2) vectors
//     and a right half of floor(k/2). Every left subset pattern is stored with
//     the smallest weight that produced it. For every right subset
//     y = x XOR right, each stored left pattern L is combined and the exact
//     popcount(y XOR L) is computed.
//
// Weights do not add under XOR: bits set in both halves cancel, so
// popcount(a XOR b) is generally not popcount(a) + popcount(b). The search
// always recomputes the exact popcount of the combined vector. The stored
// left weight only feeds the bound popcount(y XOR L) >= |popcount(y) -
// popcount(L)|, which lets the scan over left patterns (sorted by weight)
// stop once no remaining pattern can beat the incumbent. The result is
// exact either way.
//
// Guarantees
//
//	Search never reports infeasibility; infeasible systems are rejected earlier
//	by gf2.Eliminate. The answer is at most popcount(x) (the empty subset).
//
// Complexity (k basis vectors of m bits, w = ceil(m/64))
//
//   - Exhaustive:       O(2^k * w) time, O(w) space.
//   - MeetInTheMiddle:  O(2^ceil(k/2) * w) space; time O(2^k * w) worst case,
//     usually far less thanks to the weight bound.
package minweight
