// SPDX-License-Identifier: MIT

// Package bitvec - Vector over go-bitfield's Bitlist64.
//
// Every index is checked against the fixed length before reaching the
// backing list; whole-vector operations (Xor, XorPopCount, Equal) run one
// word at a time.
package bitvec

import (
	"strings"

	"github.com/prysmaticlabs/go-bitfield"
)

// Vector is a fixed-length packed bit container.
// The zero value is not usable; construct with New or FromIndices.
type Vector struct {
	bits int
	data *bitfield.Bitlist64
}

// New returns an all-zero Vector of the given bit-length.
// Panics if bits < 0.
func New(bits int) *Vector {
	if bits < 0 {
		violation("New", ErrNegativeLength, "bits=%d", bits)
	}
	return &Vector{bits: bits, data: bitfield.NewBitlist64(uint64(bits))}
}

// FromIndices returns a Vector of length bits with exactly the given
// positions set. Repeated indices set the bit once.
func FromIndices(bits int, idx ...int) *Vector {
	v := New(bits)
	for _, i := range idx {
		v.Set(i)
	}
	return v
}

// FromBools returns a Vector whose bit i is set iff b[i] is true.
func FromBools(b []bool) *Vector {
	v := New(len(b))
	for i, on := range b {
		if on {
			v.Set(i)
		}
	}
	return v
}

// Len returns the fixed bit-length.
func (v *Vector) Len() int { return v.bits }

func (v *Vector) check(op string, i int) {
	if i < 0 || i >= v.bits {
		violation(op, ErrIndexOutOfRange, "i=%d len=%d", i, v.bits)
	}
}

func (v *Vector) checkLen(op string, o *Vector) {
	if o.bits != v.bits {
		violation(op, ErrLengthMismatch, "len=%d other=%d", v.bits, o.bits)
	}
}

// Set sets bit i to 1.
func (v *Vector) Set(i int) {
	v.check("Set", i)
	v.data.SetBitAt(uint64(i), true)
}

// Clear sets bit i to 0.
func (v *Vector) Clear(i int) {
	v.check("Clear", i)
	v.data.SetBitAt(uint64(i), false)
}

// Flip toggles bit i.
func (v *Vector) Flip(i int) {
	v.check("Flip", i)
	v.data.SetBitAt(uint64(i), !v.data.BitAt(uint64(i)))
}

// Test reports whether bit i is set.
func (v *Vector) Test(i int) bool {
	v.check("Test", i)
	return v.data.BitAt(uint64(i))
}

// Xor replaces v with v XOR o. Both vectors must have the same length.
func (v *Vector) Xor(o *Vector) {
	v.checkLen("Xor", o)
	if v.bits == 0 {
		return
	}
	if err := v.data.NoAllocXor(o.data, v.data); err != nil {
		// Lengths were checked above, so the library can only fail on a
		// corrupted vector.
		violation("Xor", ErrLengthMismatch, "%v", err)
	}
}

// PopCount returns the number of set bits (Hamming weight).
func (v *Vector) PopCount() int {
	return int(v.data.Count())
}

// XorPopCount returns popcount(v XOR o) without modifying either vector.
//
// Complexity: O(len/64), no allocation.
func (v *Vector) XorPopCount(o *Vector) int {
	v.checkLen("XorPopCount", o)
	n, err := v.data.XorCount(o.data)
	if err != nil {
		violation("XorPopCount", ErrLengthMismatch, "%v", err)
	}
	return int(n)
}

// IsZero reports whether no bit is set.
func (v *Vector) IsZero() bool {
	return v.data.Count() == 0
}

// Equal reports whether v and o have the same length and bits.
func (v *Vector) Equal(o *Vector) bool {
	if o == nil || v.bits != o.bits {
		return false
	}
	n, err := v.data.XorCount(o.data)
	return err == nil && n == 0
}

// Clone returns an independent copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{bits: v.bits, data: v.data.Clone()}
}

// Key returns the little-endian packed bytes (trailing zero bytes trimmed)
// as a string, usable as a map key. Vectors of equal length share a key iff
// they are Equal; keys of different lengths must not be mixed in one map.
func (v *Vector) Key() string {
	return string(v.data.Bytes())
}

// Indices returns the positions of set bits in ascending order.
func (v *Vector) Indices() []int {
	out := make([]int, 0, v.PopCount())
	for i := 0; i < v.bits; i++ {
		if v.data.BitAt(uint64(i)) {
			out = append(out, i)
		}
	}
	return out
}

// String renders the vector as '0'/'1' characters, bit 0 first.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.bits)
	for i := 0; i < v.bits; i++ {
		if v.data.BitAt(uint64(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
