package bigint

import "fmt"

// Int is an arbitrary-precision signed integer. The zero value for Int
// represents the value 0 and is ready to use without further
// initialization — like math/big.Int, it holds no allocation: abs is
// nil for zero and otherwise a normalized, nonzero nat (see DESIGN.md
// for why a nil magnitude, rather than a shared static zero limb, is
// the natural Go/GC equivalent here).
//
// Operations follow math/big's conventions: for a method with receiver
// z, the receiver is the result and is also a valid argument; x and y
// name the operands. Div truncates toward zero; Mod takes the
// dividend's sign.
type Int struct {
	abs nat
	neg bool
}

// intAbs promotes a possibly-nil Int magnitude to the kernel's natZero
// representation; nat-level routines never accept a zero-length slice.
func intAbs(x nat) nat {
	if len(x) == 0 {
		return natZero
	}
	return x
}

// normalize collapses a zero magnitude back to the canonical nil/false
// representation after a nat-level operation.
func (z *Int) normalize() *Int {
	if len(z.abs) == 0 || z.abs.isZero() {
		z.abs = nil
		z.neg = false
	}
	return z
}

// NewIntFromWords builds an Int directly from little-endian limbs,
// bypassing decimal/hex parsing. words is copied; neg is ignored (and
// forced to false) when the resulting magnitude is zero, matching the
// canonical-zero invariant.
func NewIntFromWords(words []Word, neg bool) *Int {
	z := new(Int)
	if len(words) == 0 {
		return z
	}
	z.abs = nat(nil).set(nat(words).norm())
	z.neg = neg
	return z.normalize()
}

// Clone returns a new Int with the same value as x.
func (x *Int) Clone() *Int {
	return new(Int).Set(x)
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
		z.normalize()
	}
	return z
}

// Sign returns -1, 0 or +1 depending on whether x is negative, zero or
// positive.
func (x *Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.abs = z.abs.set(x.abs)
	z.neg = !x.neg
	return z.normalize()
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.abs = z.abs.set(x.abs)
	z.neg = false
	return z.normalize()
}

// Cmp compares x and y and returns -1, 0 or +1 according to whether
// x < y, x == y or x > y.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	r := cmp(x.abs, y.abs)
	if x.neg {
		return -r
	}
	return r
}

// Add sets z = x + y.
func (z *Int) Add(x, y *Int) *Int {
	xa, ya := intAbs(x.abs), intAbs(y.abs)
	if x.neg == y.neg {
		z.abs = z.abs.add(xa, ya)
		z.neg = x.neg
	} else {
		switch cmp(xa, ya) {
		case 1:
			z.abs = z.abs.sub(xa, ya)
			z.neg = x.neg
		case -1:
			z.abs = z.abs.sub(ya, xa)
			z.neg = y.neg
		default:
			z.abs = nil
			z.neg = false
			return z
		}
	}
	return z.normalize()
}

// Sub sets z = x - y.
func (z *Int) Sub(x, y *Int) *Int {
	xa, ya := intAbs(x.abs), intAbs(y.abs)
	if x.neg != y.neg {
		z.abs = z.abs.add(xa, ya)
		z.neg = x.neg
	} else {
		switch cmp(xa, ya) {
		case 1:
			z.abs = z.abs.sub(xa, ya)
			z.neg = x.neg
		case -1:
			z.abs = z.abs.sub(ya, xa)
			z.neg = !x.neg
		default:
			z.abs = nil
			z.neg = false
			return z
		}
	}
	return z.normalize()
}

// Mul sets z = x * y.
func (z *Int) Mul(x, y *Int) *Int {
	zabs := z.abs
	if z == x || z == y {
		// nat.mul clears its output before reading the operands, so it
		// must not write into an operand's storage.
		zabs = nil
	}
	z.abs = zabs.mul(intAbs(x.abs), intAbs(y.abs))
	z.neg = x.neg != y.neg
	return z.normalize()
}

// Div sets z = x / y, truncated toward zero. Panics with
// ErrDivideByZero if y is zero.
func (z *Int) Div(x, y *Int) *Int {
	if y.Sign() == 0 {
		panic(ErrDivideByZero)
	}
	z.abs = z.abs.div(intAbs(x.abs), intAbs(y.abs))
	z.neg = x.neg != y.neg
	return z.normalize()
}

// Mod sets z = x % y, taking the dividend's (x's) sign. Panics with
// ErrDivideByZero if y is zero.
func (z *Int) Mod(x, y *Int) *Int {
	if y.Sign() == 0 {
		panic(ErrDivideByZero)
	}
	z.abs = z.abs.mod(intAbs(x.abs), intAbs(y.abs))
	z.neg = x.neg
	return z.normalize()
}

// SetString interprets s in the given base (10 or 16) and sets z to
// that value. An optional
// leading "-" denotes a negative value; leading "+" is not accepted. It
// returns (z, true) on success, or (nil, false) with z left unchanged
// on malformed input.
func (z *Int) SetString(s string, base int) (*Int, bool) {
	if len(s) == 0 {
		return nil, false
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, false
	}
	var abs nat
	var ok bool
	switch base {
	case 10:
		abs, ok = nat(nil).fromBase10(s)
	case 16:
		abs, ok = nat(nil).fromBase16(s)
	default:
		return nil, false
	}
	if !ok {
		return nil, false
	}
	z.abs = abs
	z.neg = neg
	return z.normalize(), true
}

// Append appends the base-10 (base == 10) or base-16 (base == 16)
// textual representation of x to buf and returns the extended buffer,
// prefixing a "-" for negative values.
func (x *Int) Append(buf []byte, base int) []byte {
	if x.neg {
		buf = append(buf, '-')
	}
	switch base {
	case 10:
		return appendBase10(buf, intAbs(x.abs))
	case 16:
		return appendBase16(buf, intAbs(x.abs))
	default:
		panic(fmt.Sprintf("bigint: unsupported base %d", base))
	}
}

// Text returns the textual representation of x in the given base (10
// or 16).
func (x *Int) Text(base int) string {
	return string(x.Append(nil, base))
}

// String implements fmt.Stringer, returning x's base-10 representation.
func (x *Int) String() string {
	return x.Text(10)
}
