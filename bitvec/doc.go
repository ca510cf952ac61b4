// SPDX-License-Identifier: MIT

// Package bitvec provides Vector, a fixed-length packed bit container used as
// the atomic unit of GF(2) algebra throughout xorsolve.
//
// What
//
//   - Fixed bit-length chosen at construction; never grows or shrinks.
//   - Set / Clear / Flip / Test single bits.
//   - Xor another vector of equal length in place (GF(2) addition).
//   - PopCount (Hamming weight), IsZero, Equal.
//   - Key: a comparable string derived from the packed words, suitable as a
//     Go map key. Equal-length vectors have equal keys iff their bits match.
//
// Contract
//
//	Every index must satisfy 0 <= i < Len(). An out-of-range index is a
//	programming error in the caller (for example a bad matrix build) and
//	panics with an error wrapping ErrIndexOutOfRange. Xor on vectors of
//	different lengths panics with ErrLengthMismatch. Nothing is silently
//	truncated or wrapped.
//
// Storage
//
//	Bits are packed 64 per word by github.com/prysmaticlabs/go-bitfield
//	(Bitlist64). Bit i lives in word i/64 at position i%64.
//
// Complexity (b = Len())
//
//   - Set/Clear/Flip/Test: O(1)
//   - Xor, PopCount, IsZero, Equal, Key, Clone: O(b/64)
//
// Concurrency
//
//	A Vector is not safe for concurrent mutation. Concurrent reads are safe.
package bitvec
