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

// Pdep scatters the low popcount(mask) bits of a into the positions set in
// the precomputed plane set's mask, in the same bit order Pext packs them.
// All other result bits are zero.
func (m Masks) Pdep(a uint64) uint64 {
	// Only the low P bits can land in the result, where P is the
	// popcount of the mask; anything above them would collide. The
	// masking primitive handles P == 64, where a plain (1<<P)-1 breaks
	// on machines with modulo-64 shifts.
	p := funclist.popcount(m.mask)
	a = funclist.zeroHigh(a, p)

	// Opposite shift order from Pext: the 32-bit shift goes first to
	// make room for the smaller ones. Each plane records where bits end
	// up rather than where they start, so shift it backwards before
	// selecting the moving bits.
	for i := nBits - 1; i >= 0; i-- {
		shift := uint(1) << i
		bit := m.bit[i] >> shift
		// The moving and stationary groups are disjoint at every
		// step, so an add works in place of an OR and lets the 1-
		// and 2-bit shifts fold into LEAs.
		a = (a &^ bit) + ((a & bit) << shift)
	}
	return a
}

// Pdep scatters the low popcount(mask) bits of a into the positions set in
// mask. Equivalent to the BMI2 PDEP instruction for every input.
//
// The mask is preprocessed on each call; use Preprocess and Masks.Pdep to
// amortize that cost over repeated calls with one mask.
func Pdep(a, mask uint64) uint64 {
	return Preprocess(mask).Pdep(a)
}
