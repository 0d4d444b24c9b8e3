// This file declares the scalar types used throughout the solver: Coord,
// Cost, TerminalIndex, VertexIndex, TerminalSubset, and the compile-time
// size constants NumDimensions and MaxTerminals.
package core

const (
	// NumDimensions is the compile-time dimensionality of the integer grid.
	// The reference configuration is 3-D; changing this requires recompiling
	// every package that embeds a [NumDimensions]TerminalIndex array.
	NumDimensions = 3

	// MaxTerminals bounds the number of terminals a single search may hold.
	// TerminalSubset is a bit set of this width, so MaxTerminals must not
	// exceed the bit width of its backing integer (32).
	MaxTerminals = 20
)

// Coord is a single non-negative axis coordinate.
type Coord int64

// Cost is a non-negative sum of Coords (an L1 length, or a sum thereof).
// It is wide enough that twice the maximum possible tree cost still fits,
// so Lemma-15 bounds may be added together without overflow risk.
type Cost int64

// InvalidCost is the "unknown / infinite" sentinel for Cost-valued fields.
// InvalidCost/2 is used for Lemma-15 bounds specifically, so that summing
// two still-unknown bounds during the merge step never overflows or wraps
// past InvalidCost.
const InvalidCost Cost = 1 << 61

// UnknownLemma15Bound is the initial value of a Lemma-15 bound: an upper
// bound so large it never prunes anything until tightened by real data.
const UnknownLemma15Bound = InvalidCost / 2

// TerminalIndex identifies one terminal, in [0, MaxTerminals).
type TerminalIndex int

// VertexIndex densely numbers a vertex of the Hanan grid.
type VertexIndex int

// TerminalSubset is a bit set of width MaxTerminals: bit i set means
// terminal i is a member. Equality is ordinary integer equality, so
// TerminalSubset is safe to use as a map key.
type TerminalSubset uint32

// Bit returns the subset containing exactly terminal i.
func Bit(i TerminalIndex) TerminalSubset {
	return TerminalSubset(1) << uint(i)
}

// Test reports whether terminal i is a member of s.
func (s TerminalSubset) Test(i TerminalIndex) bool {
	return s&Bit(i) != 0
}

// With returns s with terminal i added.
func (s TerminalSubset) With(i TerminalIndex) TerminalSubset {
	return s | Bit(i)
}

// Count returns the number of terminals in s (population count).
func (s TerminalSubset) Count() int {
	count := 0
	for t := s; t != 0; t &= t - 1 {
		count++
	}
	return count
}

// Complement returns the bits of s not set, masked to the lowest n bits.
func (s TerminalSubset) Complement(n int) TerminalSubset {
	full := TerminalSubset(1)<<uint(n) - 1
	return ^s & full
}

// Disjoint reports whether s and other share no terminal.
func (s TerminalSubset) Disjoint(other TerminalSubset) bool {
	return s&other == 0
}
