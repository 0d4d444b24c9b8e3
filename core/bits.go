// Bit-set iteration utilities.
//
// ForEachSetBit iterates the set bits of a TerminalSubset in ascending
// order by repeatedly isolating and clearing the lowest set bit, the
// standard trick documented at https://lemire.me/blog/2018/02/21/ —
// t := s & -s isolates the lowest set bit, bits.TrailingZeros32 converts it
// to an index in one instruction, and s ^= t clears it for the next round.
package core

import "math/bits"

// ForEachSetBit calls f once for every terminal index below n that is a
// member of s, in ascending order. n bounds the number of meaningful bits
// (non-root terminals never exceed MaxTerminals-1); bits at or above n are
// ignored even if set.
func ForEachSetBit(s TerminalSubset, n int, f func(TerminalIndex)) {
	mask := TerminalSubset(1)<<uint(n) - 1
	word := uint32(s & mask)
	for word != 0 {
		lowest := word & -word
		idx := bits.TrailingZeros32(word)
		f(TerminalIndex(idx))
		word ^= lowest
	}
}
