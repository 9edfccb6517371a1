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

// Both functions clear every bit of a at position n or above, for n in
// [0,64]. n == 64 must leave a untouched: BZHI gets this right in hardware,
// but a plain (1<<n)-1 mask breaks on machines where shifts are modulo 64.
// They mirror each other the same way the popcount pair does and must agree
// for all inputs.

// zeroHighBranch is the obvious form with an explicit wide-shift guard.
func zeroHighBranch(a uint64, n int) uint64 {
	if n >= 64 {
		return a
	}
	return a & (uint64(1)<<uint(n) - 1)
}

// zeroHighMask is the branch-free form matching BZHI semantics. n>>6 is 1
// exactly when n == 64, so the AND turns 1<<(n&63) into 0 for that one
// case, and the subtraction then yields an all-ones mask.
func zeroHighMask(a uint64, n int) uint64 {
	un := uint64(n)
	popMask := (uint64(1) << (un & 63)) &^ (un >> 6)
	return a & (popMask - 1)
}
