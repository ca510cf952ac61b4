// SPDX-License-Identifier: MIT

package minweight

import (
	"fmt"

	"github.com/katalvlaran/xorsolve/bitvec"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "minweight")

// Result is the outcome of a Search.
type Result struct {
	// Weight is the minimum popcount over the coset.
	Weight int
	// Vector is one coset element achieving Weight.
	Vector *bitvec.Vector
	// Strategy is the algorithm that produced the result.
	Strategy Strategy
	// Evaluated counts candidate vectors whose weight was computed.
	Evaluated uint64
}

// Search returns the minimum-weight element of
// { particular XOR (XOR of any subset of basis) }.
//
// Errors:
//   - ErrNilVector if particular or any basis vector is nil.
//   - ErrLengthMismatch if a basis vector's length differs from particular's.
//   - ErrSearchSpaceTooLarge if more than MaxFreeVariables basis vectors
//     remain after pruning (see prune).
//
// Complexity: O(2^k * m/64) time and O(m/64) extra space for the exhaustive
// walk; O(2^ceil(k/2) * m/64) space and at most O(2^k * m/64) time for
// meet-in-the-middle, usually far less after weight-bound pruning.
func Search(particular *bitvec.Vector, basis []*bitvec.Vector, opts ...Option) (Result, error) {
	if particular == nil {
		return Result{}, searchErrorf(ErrNilVector)
	}
	for i, b := range basis {
		if b == nil {
			return Result{}, searchErrorf(fmt.Errorf("basis[%d]: %w", i, ErrNilVector))
		}
		if b.Len() != particular.Len() {
			return Result{}, searchErrorf(fmt.Errorf("basis[%d] has %d bits, particular has %d: %w",
				i, b.Len(), particular.Len(), ErrLengthMismatch))
		}
	}
	basis = prune(particular, basis)
	k := len(basis)
	if k > MaxFreeVariables {
		return Result{}, searchErrorf(fmt.Errorf("k=%d > %d: %w", k, MaxFreeVariables, ErrSearchSpaceTooLarge))
	}

	o := gatherOptions(opts)
	strategy := o.resolve(k)

	var res Result
	switch strategy {
	case Direct:
		res = Result{Weight: particular.PopCount(), Vector: particular.Clone(), Evaluated: 1}
	case Exhaustive:
		res = exhaustive(particular, basis)
	default:
		res = meetInTheMiddle(particular, basis)
	}
	res.Strategy = strategy

	log.WithFields(logrus.Fields{
		"free":      k,
		"strategy":  strategy,
		"weight":    res.Weight,
		"evaluated": res.Evaluated,
	}).Debug("coset search finished")

	return res, nil
}

// prune drops basis vectors that can only add weight: a vector with a single
// set bit i, where i is clear in x and set in no other basis vector. Every
// coset element that uses such a vector has bit i set, and dropping it
// clears that bit without touching any other.
//
// Complexity: O(k * m) time.
func prune(x *bitvec.Vector, basis []*bitvec.Vector) []*bitvec.Vector {
	touched := make(map[int]int)
	for _, b := range basis {
		for _, i := range b.Indices() {
			touched[i]++
		}
	}
	kept := make([]*bitvec.Vector, 0, len(basis))
	for _, b := range basis {
		if b.PopCount() == 1 {
			i := b.Indices()[0]
			if !x.Test(i) && touched[i] == 1 {
				continue
			}
		}
		kept = append(kept, b)
	}
	return kept
}

// gray returns the i-th Gray code; consecutive codes differ in bit tz(i).
func gray(i uint64) uint64 { return i ^ (i >> 1) }

// combine returns x XOR the vectors of basis selected by mask.
func combine(x *bitvec.Vector, basis []*bitvec.Vector, mask uint64) *bitvec.Vector {
	out := x.Clone()
	for i, b := range basis {
		if mask&(1<<uint(i)) != 0 {
			out.Xor(b)
		}
	}
	return out
}
