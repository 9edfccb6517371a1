// ZP7 (Zach's Peppy Parallel-Prefix-Popcountin' PEXT/PDEP Polyfill)
//
// Copyright (c) 2020 Zach Wegner
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package zp7

// nBits is the number of parallel-prefix-popcount planes. Six planes drive
// shifts of 1, 2, 4, 8, 16 and 32 bits, composing any shift in [0,63].
const nBits = 6

// Masks holds the parallel-prefix-popcount planes derived from a single
// mask. It is an immutable value: build it with Preprocess and share it
// freely, including across goroutines and between Pext and Pdep calls.
//
// Bit b of plane i is set iff bit i of the count of unset mask bits below
// position b is set. The planes are only meaningful as a set; never combine
// planes built from different masks.
type Masks struct {
	mask uint64
	bit  [nBits]uint64
}

// Mask returns the mask this plane set was built from.
func (m Masks) Mask() uint64 {
	return m.mask
}

// Preprocess computes the parallel-prefix-popcount planes for mask.
//
// The plane set can be cached and reused if the same mask is applied more
// than once; both Pext and Pdep accept it. One-shot callers can use the
// package-level Pext and Pdep instead.
func Preprocess(mask uint64) Masks {
	m := Masks{mask: mask}

	// Count *unset* bits: they are exactly the positions a selected bit
	// hops over on its way to its packed slot.
	u := ^mask

	step := funclist.prefixShift
	for i := 0; i < nBits; i++ {
		// One digit of the running sum: a 1-bit parallel prefix
		// popcount, shifted left by one.
		bit := step(u)
		m.bit[i] = bit

		// The carries of that 1-bit sum feed the next digit.
		u &= bit
	}
	return m
}
