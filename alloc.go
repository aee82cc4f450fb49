package bigint

import "sync"

// Allocator is the pluggable scratch-memory hook: callers that want to
// control where Karatsuba and Algorithm D get their scratch limbs (e.g.
// to use an arena, or to avoid touching the default pool from multiple
// goroutines with different size profiles) can install one of these.
// Get returns a slice of length n
// whose contents are unspecified; Put returns a slice previously
// obtained from Get on the same Allocator back for reuse.
type Allocator interface {
	Get(n int) []Word
	Put(w []Word)
}

// poolAllocator is the default Allocator, backed by the same sync.Pool
// machinery as nat's own getNat/putNat (nat.go).
type poolAllocator struct {
	pool sync.Pool
}

func (p *poolAllocator) Get(n int) []Word {
	if v := p.pool.Get(); v != nil {
		s := v.(*[]Word)
		if cap(*s) >= n {
			return (*s)[:n]
		}
	}
	return make([]Word, n)
}

func (p *poolAllocator) Put(w []Word) {
	p.pool.Put(&w)
}

var defaultAllocator Allocator = &poolAllocator{}

// allocMu guards the package-level allocator pointer; SetAllocator is
// expected to be called during setup, not on arithmetic's hot path, but
// arithmetic running concurrently with a SetAllocator call must still
// observe a consistent value.
var allocMu sync.RWMutex

// SetAllocator installs a as the package-wide scratch allocator for
// Karatsuba and Algorithm D. Passing nil restores the default
// pool-backed allocator.
func SetAllocator(a Allocator) {
	allocMu.Lock()
	defer allocMu.Unlock()
	if a == nil {
		a = &poolAllocator{}
	}
	defaultAllocator = a
}

// allocWords obtains n scratch limbs from the installed Allocator.
func allocWords(n int) []Word {
	allocMu.RLock()
	a := defaultAllocator
	allocMu.RUnlock()
	return a.Get(n)
}

// freeWords returns scratch limbs obtained from allocWords.
func freeWords(w []Word) {
	allocMu.RLock()
	a := defaultAllocator
	allocMu.RUnlock()
	a.Put(w)
}
