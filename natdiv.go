package bigint

// divWordTo divides x by the single limb y, writing the quotient into z
// (len(z) >= len(x)) and returning the quotient's normalized length and
// the remainder.
//
// The `if hi >= y` check inside the loop is a seemingly redundant inner
// fallback: the preceding divWW call already guarantees hi < y, so the
// branch never fires in practice. It is kept verbatim rather than
// removed, since removing it would mean inventing new semantics instead
// of reproducing known-correct ones.
func divWordTo(z, x []Word, y Word) (size int, rem Word) {
	n := len(x)
	hi := x[n-1] % y
	z[n-1] = x[n-1] / y
	for i := n - 2; i >= 0; i-- {
		q, r := divWW(hi, x[i], y)
		z[i] = q
		hi = r
		if hi >= y {
			z[i] = hi / y
			hi %= y
		}
	}
	if n > 1 && z[n-1] == 0 {
		return n - 1, hi
	}
	return n, hi
}

// modWord divides x by the single limb y and returns only the remainder.
func modWord(x []Word, y Word) Word {
	n := len(x)
	hi := x[n-1] % y
	for i := n - 2; i >= 0; i-- {
		_, r := divWW(hi, x[i], y)
		hi = r
		if hi >= y {
			hi %= y
		}
	}
	return hi
}

// divLarge implements Knuth's Algorithm D in full: normalize, the main
// quotient-digit loop with three-limb correction and add-back, and
// denormalization of the remainder. Preconditions: rhsSize >= 2 and
// rhs's top limb is nonzero; violating either is a programming error.
// Neither is asserted: div/mod below send single-limb divisors to
// divWordTo/modWord and rely on y being normalized.
//
// quotient must have capacity for lhsSize-rhsSize+1 limbs when
// wantQuotient is true; remainder must have capacity for rhsSize limbs
// when wantRemainder is true. The boolean flags let callers skip
// computing whichever of quotient/remainder they don't need without a
// pair of generated near-duplicate routines; the branch cost here is
// negligible next to the surrounding O(n^2) work (see DESIGN.md).
func divLarge(lhs, rhs []Word, wantQuotient bool, quotient []Word, wantRemainder bool, remainder []Word) (qSize, rSize int) {
	lhsSize, rhsSize := len(lhs), len(rhs)
	shift := nlz(rhs[rhsSize-1])

	rhsNorm := allocWords(rhsSize)
	defer freeWords(rhsNorm)
	for i := rhsSize - 1; i > 0; i-- {
		rhsNorm[i] = (rhs[i] << shift) | Word(uint64(rhs[i-1])>>(_W-shift))
	}
	rhsNorm[0] = rhs[0] << shift

	lhsNorm := allocWords(lhsSize + 1)
	defer freeWords(lhsNorm)
	lhsNorm[lhsSize] = Word(uint64(lhs[lhsSize-1]) >> (_W - shift))
	for i := lhsSize - 1; i > 0; i-- {
		lhsNorm[i] = (lhs[i] << shift) | Word(uint64(lhs[i-1])>>(_W-shift))
	}
	lhsNorm[0] = lhs[0] << shift

	top := uint64(rhsNorm[rhsSize-1])
	for j := lhsSize - rhsSize; j >= 0; j-- {
		num := uint64(lhsNorm[j+rhsSize])<<_W | uint64(lhsNorm[j+rhsSize-1])
		qhat := num / top
		rhat := num % top

		for qhat >= _B || qhat*uint64(rhsNorm[rhsSize-2]) > uint64(_B)*rhat+uint64(lhsNorm[j+rhsSize-2]) {
			qhat--
			rhat += top
			if rhat >= _B {
				break
			}
		}

		var borrow int64
		var sum int64
		for i := 0; i < rhsSize; i++ {
			product := qhat * uint64(rhsNorm[i])
			sum = int64(lhsNorm[j+i]) - borrow - int64(product&(_B-1))
			lhsNorm[j+i] = Word(sum)
			borrow = int64(product>>_W) - (sum >> _W)
		}
		sum = int64(lhsNorm[j+rhsSize]) - borrow
		lhsNorm[j+rhsSize] = Word(sum)

		if wantQuotient {
			quotient[j] = Word(qhat)
		}

		if sum < 0 {
			if wantQuotient {
				quotient[j]--
			}
			var carry int64
			for i := 0; i < rhsSize; i++ {
				s := int64(lhsNorm[j+i]) + int64(rhsNorm[i]) + carry
				lhsNorm[j+i] = Word(s)
				carry = s >> _W
			}
			lhsNorm[j+rhsSize] += Word(carry)
		}
	}

	if wantRemainder {
		for i := 0; i < rhsSize-1; i++ {
			remainder[i] = (lhsNorm[i] >> shift) | Word(uint64(lhsNorm[i+1])<<(_W-shift))
		}
		remainder[rhsSize-1] = lhsNorm[rhsSize-1] >> shift
		rSize = rhsSize
		for rSize > 1 && remainder[rSize-1] == 0 {
			rSize--
		}
	}
	if wantQuotient {
		qSize = lhsSize - rhsSize + 1
		if qSize > 1 && quotient[qSize-1] == 0 {
			qSize--
		}
	}
	return qSize, rSize
}

// div sets z = x div y (quotient only), including the two fast paths (x
// shorter than y; y single-limb).
func (z nat) div(x, y nat) nat {
	if debug && rawIsZero(y) {
		panic("bigint: division by zero")
	}
	if cmp(x, y) < 0 {
		z = z.make(1)
		z[0] = 0
		return z
	}
	if len(y) == 1 {
		z = z.make(len(x))
		n, _ := divWordTo(z, x, y[0])
		return z[:n]
	}
	z = z.make(len(x) - len(y) + 1)
	qSize, _ := divLarge(x, y, true, z, false, nil)
	return z[:qSize]
}

// mod sets z = x mod y (remainder only), including the same two fast
// paths as div.
func (z nat) mod(x, y nat) nat {
	if debug && rawIsZero(y) {
		panic("bigint: division by zero")
	}
	if cmp(x, y) < 0 {
		return z.set(x)
	}
	if len(y) == 1 {
		z = z.make(1)
		z[0] = modWord(x, y[0])
		return z
	}
	z = z.make(len(y))
	_, rSize := divLarge(x, y, false, nil, true, z)
	return z[:rSize]
}
