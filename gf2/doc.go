// SPDX-License-Identifier: MIT

// Package gf2 builds and reduces linear systems over GF(2), the two-element
// field where addition is XOR and multiplication is AND.
//
// Pipeline
//
//	NewSystem  -> *System   (n rows x m columns + target column b)
//	Eliminate  -> *Reduced  (reduced row-echelon form, rank, pivot map)
//	Extract    -> *Coset    (particular solution + nullspace basis)
//
// Each stage consumes the previous stage's output and produces a new
// read-only value; no stage mutates its input.
//
// Model
//
//	Column j is a toggle operation, row i is a target bit. Entry (i, j) is 1
//	iff operation j flips bit i. A solution x (one bit per operation) solves
//	A·x = b, i.e. XOR-ing the selected columns reproduces the target.
//
// Elimination
//
//	For every column c (left to right) the first row at or below the current
//	pivot row r with bit c set is swapped into r, then XOR-ed (with its target
//	bit) into every other row that has bit c set, above and below. The result
//	is fully reduced: each pivot column has exactly one set bit. Elimination
//	stops early once every row holds a pivot. Columns that never receive a
//	pivot are free.
//
// Feasibility
//
//	A reduced row with no coefficients but target bit 1 reads 0 = 1, so the
//	system has no solution and Eliminate returns ErrInfeasible. A system with
//	no columns is feasible iff its target is all zero.
//
// Solution set
//
//	With k = m - rank free columns, every solution is
//	particular XOR (XOR of any subset of the k basis vectors), and any two
//	solutions differ by an element of that span.
//
// Complexity (n rows, m columns, w = ceil(m/64))
//
//   - NewSystem: O(n*w + total operation indices)
//   - Eliminate: O(min(n,m) * n * w)
//   - Extract:   O(k * m)
package gf2
