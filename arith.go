package bigint

import "math/bits"

// Word is a single limb of a magnitude: W bits wide, little-endian within
// a nat. A dword (implemented here as plain uint64, twice Word's width) is
// used for carries and widening products.
type Word = uint32

const (
	_W = 32 // bits per Word
	_B = 1 << _W
)

// addWW returns the sum x+y+carry and the carry out of the addition (0 or
// 1). carry must be 0 or 1.
func addWW(x, y, carry Word) (sum, carryOut Word) {
	s, c := bits.Add32(x, y, carry)
	return s, c
}

// subWW returns the difference x-y-borrow and the borrow out of the
// subtraction (0 or 1). borrow must be 0 or 1.
func subWW(x, y, borrow Word) (diff, borrowOut Word) {
	d, b := bits.Sub32(x, y, borrow)
	return d, b
}

// mulWW returns the W-bit pair (hi, lo) such that hi*_B+lo == x*y.
func mulWW(x, y Word) (hi, lo Word) {
	return bits.Mul32(x, y)
}

// divWW returns (q, r) such that hi*_B+lo == q*y+r, 0 <= r < y. It panics
// if y is zero or if the quotient does not fit in a Word (hi >= y).
func divWW(hi, lo, y Word) (q, r Word) {
	return bits.Div32(hi, lo, y)
}

// deBruijnPosition maps the top bit index of a de Bruijn sequence to a bit
// position, the classic constant-time "find first set bit" trick (see
// https://graphics.stanford.edu/~seander/bithacks.html). The division
// normalization step (spec: Algorithm D, normalize) uses it instead of
// math/bits.LeadingZeros32 to stay faithful to the reference algorithm,
// which relies on exactly this construction.
var deBruijnPosition = [32]uint{
	0, 9, 1, 10, 13, 21, 2, 29, 11, 14, 16, 18, 22, 25, 3, 30,
	8, 12, 20, 28, 15, 17, 24, 7, 19, 27, 23, 6, 26, 5, 4, 31,
}

// deBruijnLog2 returns floor(log2(n)) for n != 0 using the de Bruijn
// sequence lookup above.
func deBruijnLog2(n Word) uint {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return deBruijnPosition[(n*0x07C4ACDD)>>27]
}

// nlz returns the number of leading zero bits in x's top limb representation,
// i.e. _W-1-floor(log2(x)) for x != 0. Used to compute the normalization
// shift in Algorithm D.
func nlz(x Word) uint {
	return _W - 1 - deBruijnLog2(x)
}
