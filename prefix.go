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

import "math/bits"

// This file holds the two interchangeable implementations of the prefix
// step used by Preprocess. Both compute the leftward parallel prefix XOR of
// x shifted left by one: bit b of the result is the XOR of bits 0..b-1 of x.
// They must agree for every input; prefix_test.go checks the identity.

// prefixXorShift is the shift-XOR form: six doubling-stride XOR steps
// spread each bit across everything above it, then the shift aligns the
// running parity one position up.
func prefixXorShift(x uint64) uint64 {
	for i := 0; i < nBits; i++ {
		x ^= x << (1 << i)
	}
	return x << 1
}

// prefixXorCLMUL computes the same value as a carry-less multiply by -2.
// In GF(2)[x], multiplying by the all-ones-except-bit-0 pattern XORs
// together every left shift of x by 1..63, which is the prefix XOR already
// shifted up by one.
func prefixXorCLMUL(x uint64) uint64 {
	return clmul64(x, ^uint64(1))
}

// clmul64 returns the low 64 bits of the carry-less (GF(2)[x]) product of
// a and b.
func clmul64(a, b uint64) uint64 {
	var r uint64
	for b != 0 {
		r ^= a << uint(bits.TrailingZeros64(b))
		b &= b - 1
	}
	return r
}
