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

// Pext gathers the bits of a selected by the precomputed plane set and
// packs them contiguously from bit 0, preserving their order. All higher
// result bits are zero.
func (m Masks) Pext(a uint64) uint64 {
	// Unselected bits would collide with selected ones during the
	// shifts, so drop them first.
	a &= m.mask

	// Shift in increasing order (1, 2, ... 32) so bits moved by an
	// earlier step never land on bits still waiting for a later one.
	for i := 0; i < nBits; i++ {
		shift := uint(1) << i
		bit := m.bit[i]
		a = (a &^ bit) | ((a & bit) >> shift)
	}
	return a
}

// Pext gathers the bits of a selected by mask and packs them contiguously
// from bit 0. Equivalent to the BMI2 PEXT instruction for every input.
//
// The mask is preprocessed on each call; use Preprocess and Masks.Pext to
// amortize that cost over repeated calls with one mask.
func Pext(a, mask uint64) uint64 {
	return Preprocess(mask).Pext(a)
}
