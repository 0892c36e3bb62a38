package problemgen

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Rand is the random source every generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// NewRand returns a PCG-backed source. A zero seed is replaced by the
// current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// LockedRand serializes access to an underlying source so one source can be
// shared across goroutines.
type LockedRand struct {
	mu  sync.Mutex
	src Rand
}

// NewLockedRand wraps src.
func NewLockedRand(src Rand) *LockedRand {
	return &LockedRand{src: src}
}

func (r *LockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.IntN(n)
}

func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// between returns a uniform integer in [lo, hi].
func between(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// pick returns a uniform element of xs.
func pick[T any](r Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

// coin returns true with probability 1/2.
func coin(r Rand) bool {
	return r.IntN(2) == 1
}

// signed negates v with probability 1/2.
func signed(r Rand, v int) int {
	if coin(r) {
		return -v
	}
	return v
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// clock is swapped in tests.
var clock = time.Now

// newID mints "<prefix>-<unix millis>-<6 random base36 chars>". It draws
// from r, so generators call it after all parameters are sampled.
func newID(r Rand, prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(clock().UnixMilli(), 10))
	b.WriteByte('-')
	for range 6 {
		b.WriteByte(idAlphabet[r.IntN(len(idAlphabet))])
	}
	return b.String()
}
