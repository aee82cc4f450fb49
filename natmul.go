package bigint

// karatsubaThreshold is the operand-length cutoff above which both
// operands must sit for Karatsuba to be used in place of schoolbook
// multiplication.
const karatsubaThreshold = 30

// rawIsZero reports whether a raw limb slice (not necessarily a nat in
// normal form, but always at least length 1 by convention here)
// represents zero.
func rawIsZero(x []Word) bool {
	return len(x) == 1 && x[0] == 0
}

// mul sets z = x*y. z's storage is grown to hold len(x)+len(y) limbs;
// scratch space for Karatsuba, when needed, is obtained from the
// installed Allocator sized 2*(len(x)+len(y)) and released on the
// single return path.
func (z nat) mul(x, y nat) nat {
	total := len(x) + len(y)
	z = z.make(total)

	if len(x) > karatsubaThreshold && len(y) > karatsubaThreshold {
		mem := allocWords(2 * total)
		defer freeWords(mem)
		n := mulTo(z, x, y, mem)
		return z[:n]
	}
	n := mulTo(z, x, y, nil)
	return z[:n]
}

// mulTo is the dispatcher's raw-buffer core: z must have capacity for
// at least len(x)+len(y) limbs. mem is Karatsuba
// scratch; it may be nil when neither basicMulTo nor the single/zero
// limb fast paths need it.
func mulTo(z, x, y []Word, mem []Word) (size int) {
	if rawIsZero(x) || rawIsZero(y) {
		z[0] = 0
		return 1
	}
	if len(x) == 1 && len(y) == 1 {
		hi, lo := mulWW(x[0], y[0])
		z[0] = lo
		z[1] = hi
		if hi == 0 {
			return 1
		}
		return 2
	}
	if len(x) > karatsubaThreshold && len(y) > karatsubaThreshold {
		return karatsubaTo(z, x, y, mem)
	}
	return basicMulTo(z, x, y)
}

// basicMulTo is schoolbook multiplication: zero-initializes the
// len(x)+len(y) output region, then for each i accumulates x[i]*y[*]
// into z[i..] using a uint64 running product as the widening double-limb
// intermediate, and writes the final carry into z[i+len(y)].
func basicMulTo(z, x, y []Word) (size int) {
	nx, ny := len(x), len(y)
	for i := 0; i < nx+ny; i++ {
		z[i] = 0
	}
	for i := 0; i < nx; i++ {
		xi := uint64(x[i])
		if xi == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < ny; j++ {
			prod := uint64(z[i+j]) + carry + xi*uint64(y[j])
			z[i+j] = Word(prod)
			carry = prod >> _W
		}
		z[i+ny] = Word(carry)
	}
	if z[nx+ny-1] == 0 {
		return nx + ny - 1
	}
	return nx + ny
}

// karatsubaTo implements the recursive-split Karatsuba multiplication
// algorithm. z must have capacity for len(x)+len(y) limbs; mem is
// scratch space threaded through the recursion: each level reserves a
// prefix sized for its local z1 product, then reclaims the unused tail
// (mem = mem[z1Size:]) once the actual product size is known, so
// sibling z0/z2 sub-multiplications reuse that freed scratch. The
// ordering matters: sums are built in z, consumed by the z1
// multiplication, then overwritten by z0/z2; reordering it breaks
// correctness, not just performance.
func karatsubaTo(z, x, y, mem []Word) (size int) {
	m := len(x)
	if len(y) > m {
		m = len(y)
	}
	m2 := m / 2

	low1, low2 := x, y
	high1, high2 := []Word{0}, []Word{0}
	low1Size := min(m2, len(x))
	low2Size := min(m2, len(y))
	high1Size := min(m-m2, len(x)-m2)
	high2Size := min(m-m2, len(y)-m2)

	for low1Size > 1 && low1[low1Size-1] == 0 {
		low1Size--
	}
	for low2Size > 1 && low2[low2Size-1] == 0 {
		low2Size--
	}

	if high1Size <= 0 {
		high1Size = 1
	} else {
		high1 = x[m2:]
	}
	if high2Size <= 0 {
		high2Size = 1
	} else {
		high2 = y[m2:]
	}

	low1 = low1[:low1Size]
	low2 = low2[:low2Size]
	high1 = high1[:high1Size]
	high2 = high2[:high2Size]

	total := len(x) + len(y)
	z = z[:total]

	z1Lhs := z[:m2+2]
	z1Rhs := z[m2+2:]

	z1LhsSize := addTo(z1Lhs, low1, high1)
	z1RhsSize := addTo(z1Rhs, low2, high2)

	z1Buf := mem[:z1LhsSize+z1RhsSize]
	z1Size := mulTo(z1Buf, z1Lhs[:z1LhsSize], z1Rhs[:z1RhsSize], mem[z1LhsSize+z1RhsSize:])
	z1 := z1Buf[:z1Size]
	mem = mem[z1Size:]

	z0 := z[:low1Size+low2Size]
	z2 := z[m2*2 : m2*2+high1Size+high2Size]

	z0Size := mulTo(z0, low1, low2, mem)
	z2Size := mulTo(z2, high1, high2, mem)

	z1Size = subTo(z1, z1, z2[:z2Size])
	z1Size = subTo(z1, z1, z0[:z0Size])

	resultSize := z0Size
	if !rawIsZero(z2[:z2Size]) {
		resultSize = m2*2 + z2Size
		for i := z0Size; i < m2*2; i++ {
			z[i] = 0
		}
	}
	if !rawIsZero(z1[:z1Size]) {
		n := addTo(z[m2:], z[m2:resultSize], z1[:z1Size])
		resultSize = n + m2
	}
	return resultSize
}
