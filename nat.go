package bigint

import "sync"

// nat is an unsigned magnitude x of the form
//
//	x = x[n-1]*B^(n-1) + x[n-2]*B^(n-2) + ... + x[1]*B + x[0]
//
// with B = 2^_W and 0 <= x[i] < B, stored little-endian in a slice of
// length n. A nat is normalized when either len(x) == 1, or the top
// limb x[len(x)-1] is nonzero. Denormalized
// values may exist transiently during arithmetic but are always
// normalized before being handed back to a caller.
//
// The empty nat (len == 0) is never normal form for the *kernel*; it is
// only ever produced by Int's zero value (see int.go), which only passes
// it to nat.set; before any arithmetic routine Int promotes it to natZero.
type nat []Word

// natZero is the canonical representation of zero: a single zero limb.
// Int's zero value uses a nil nat instead (no allocation at all — see
// DESIGN.md), but every kernel routine that needs an explicit zero
// magnitude to operate on (e.g. Karatsuba's empty high half) uses this.
var natZero = nat{0}

// norm strips leading zero limbs, leaving at least one limb.
func (x nat) norm() nat {
	i := len(x)
	for i > 1 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// isZero reports whether x, assumed normalized, equals zero.
func (x nat) isZero() bool {
	return len(x) == 1 && x[0] == 0
}

// make returns a nat of length n, reusing z's storage if it has enough
// capacity. Contents are not zeroed.
func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	const e = 4 // extra capacity to absorb a following carry limb
	return make(nat, n, n+e)
}

// set copies x into z, resizing z as needed.
func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// cmp returns a total ordering by magnitude: -1, 0, or 1 as x<y, x==y,
// or x>y. Assumes both x and y are normalized.
func cmp(x, y nat) int {
	switch {
	case len(x) > len(y):
		return 1
	case len(x) < len(y):
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}

// natPool recycles nat backing arrays for getNat/putNat. The default
// Allocator (alloc.go) keeps a pool of its own and does not use this one.
var natPool sync.Pool

// getNat returns a nat of length n from the pool (or freshly allocated);
// its contents are not zeroed.
func getNat(n int) nat {
	if v := natPool.Get(); v != nil {
		z := v.(*nat)
		*z = z.make(n)
		r := *z
		return r
	}
	return make(nat, n)
}

// putNat returns x's storage to the pool for reuse.
func putNat(x nat) {
	natPool.Put(&x)
}
