// Package xorsolve finds the fewest toggle operations that reproduce a target
// bit pattern, or proves that no combination can.
//
// Every operation flips a fixed set of bits. Flips commute and cancel in
// pairs, so each operation is either used once or not at all, and the task is
// a linear system over GF(2) followed by a minimum-weight search over its
// solution set.
//
// Packages, leaves first:
//
//	bitvec/    - fixed-length packed bit vectors (set/test/xor/popcount/key)
//	gf2/       - coefficient system, Gaussian elimination, nullspace basis
//	minweight/ - minimum-popcount search over particular ⊕ span(basis):
//	             exhaustive Gray-code walk or meet-in-the-middle split
//	toggle/    - per-instance orchestration, batch solving, metrics
//	parse/     - the "[.##.] (0,1) (2) {..}" line format
//	builder/   - seeded random instance generator for tests and benchmarks
//	cmd/xorsolve - CLI: solve files, generate instances
//
// Quick example:
//
//	target .#.#   ops: A={1}  B={3}  C={1,3}
//	A·B and C both reach the target; C alone is the minimum (1 operation).
//
//	w, ok := toggle.MinOperations(
//		[]bool{false, true, false, true},
//		[][]int{{1}, {3}, {1, 3}},
//	) // w == 1, ok == true
//
//	go get github.com/katalvlaran/xorsolve
package xorsolve
