package scene

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
)

// IDGen produces unique scene identities: a monotonic counter plus a
// random suffix. The generator is owned by the host application and passed
// into construction; there is no ambient global counter. Safe for
// concurrent use.
type IDGen struct {
	counter atomic.Uint64
	mu      sync.Mutex
	rnd     *rand.Rand
}

func NewIDGen(seed int64) *IDGen {
	return &IDGen{rnd: rand.New(rand.NewSource(seed))}
}

// Next returns an id of the form "scene-<n>-<suffix>".
func (g *IDGen) Next() string {
	n := g.counter.Add(1)
	g.mu.Lock()
	suffix := g.rnd.Uint32() & 0xFFFF
	g.mu.Unlock()
	return fmt.Sprintf("scene-%d-%04x", n, suffix)
}
