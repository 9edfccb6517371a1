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

// Package zp7 is a branch-free software replacement for the PEXT and PDEP
// bit manipulation instructions.
//
// PEXT (parallel bit extract) gathers the bits of a value selected by a mask
// and packs them contiguously at the low end of the result. PDEP (parallel
// bit deposit) is the inverse: it scatters the low contiguous bits of a value
// into the positions marked by the mask. These behave like bitwise
// gather/scatter and were introduced by Intel with the BMI2 extension on
// Haswell. Some AMD generations implement them in microcode taking 18 to
// ~300 cycles depending on the mask, and most non-x86 processors lack them
// entirely. This package is a polyfill for those processors, producing
// bit-identical results to the native instructions for every 64-bit input
// and mask.
//
// # Algorithm
//
// The implementation uses a "parallel prefix popcount" (PPP for short): for
// every bit of the mask, determine how many bits below it are *unset*. That
// count is exactly how far a selected input bit must travel to reach its
// packed position, since unset mask bits are the positions it hops over.
//
// Rather than filling a 64-entry array in a loop, the counts are stored
// "vertically" across six 64-bit planes: one plane holds bit 0 of each of
// the 64 counts, the next holds bit 1, and so on. Each plane is computed
// with a parallel prefix XOR, which acts as a carry-discarding 1-bit adder.
// Shifting the prefix XOR left by one and ANDing it with the input bits
// recovers the carries, which feed the next-significant plane; the left
// shift is wanted anyway, because each count must cover the bits strictly
// below a position, not the position itself.
//
// Once the six planes exist, each one drives a masked shift by a power of
// two: bits selected by plane 0 move by 1, plane 1 by 2, then 4, 8, 16 and
// 32. Composed, the six shifts move every bit by any distance in [0,63].
// PEXT applies them in increasing order so partial results never collide;
// PDEP goes in decreasing order, making room with the biggest shift first,
// and shifts each plane backwards beforehand because in the scatter
// direction a plane records where bits end up rather than where they start.
//
// # Usage
//
// One-shot calls preprocess the mask internally:
//
//	packed := zp7.Pext(value, mask)
//	spread := zp7.Pdep(value, mask)
//
// Callers reusing one mask across many calls should build the plane set once
// and share it between both directions:
//
//	m := zp7.Preprocess(mask)
//	packed := m.Pext(value)
//	spread := m.Pdep(packed)
//
// All functions are total over the full 64-bit domain, never allocate, and
// are safe for concurrent use without synchronization.
package zp7
