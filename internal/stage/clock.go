package stage

// Tick carries per-frame timing to clock callbacks.
type Tick struct {
	Frame   uint64
	Delta   float64 // seconds since the previous frame
	Elapsed float64 // seconds since the clock started
}

// FrameFunc is a per-frame callback.
type FrameFunc func(Tick)

// Handle is an opaque registration token returned by Register.
type Handle uint64

// Clock is the shared per-frame clock the host drives once per rendered
// frame. Callbacks run one at a time, in registration order.
//
// Unregister called from inside a callback takes effect only after the
// current pass finishes: a callback registered later in the pass still
// fires even if it was unregistered moments earlier. Consumers that tear
// themselves down mid-pass must therefore guard their own callback; see
// scene.Lifecycle. Unregistering an unknown or already-removed handle is a
// no-op.
//
// Clock is not safe for concurrent use; all driving happens on the render
// goroutine.
type Clock struct {
	entries   []clockEntry
	next      Handle
	frame     uint64
	elapsed   float64
	advancing bool
	pending   []Handle
}

type clockEntry struct {
	h  Handle
	fn FrameFunc
}

func NewClock() *Clock {
	return &Clock{next: 1}
}

// Register adds fn to the end of the callback order and returns its handle.
func (c *Clock) Register(fn FrameFunc) Handle {
	h := c.next
	c.next++
	c.entries = append(c.entries, clockEntry{h: h, fn: fn})
	return h
}

// Unregister removes the callback registered under h. Inside an Advance
// pass the removal is deferred until the pass completes.
func (c *Clock) Unregister(h Handle) {
	if c.advancing {
		c.pending = append(c.pending, h)
		return
	}
	c.remove(h)
}

func (c *Clock) remove(h Handle) {
	for i, e := range c.entries {
		if e.h == h {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered callbacks, counting ones whose
// removal is still pending.
func (c *Clock) Len() int { return len(c.entries) }

// Advance fires one frame: every callback registered at the start of the
// pass runs exactly once, in registration order. delta is the frame time
// in seconds.
func (c *Clock) Advance(delta float64) {
	c.frame++
	c.elapsed += delta
	tick := Tick{Frame: c.frame, Delta: delta, Elapsed: c.elapsed}

	snapshot := make([]clockEntry, len(c.entries))
	copy(snapshot, c.entries)

	c.advancing = true
	for _, e := range snapshot {
		e.fn(tick)
	}
	c.advancing = false

	for _, h := range c.pending {
		c.remove(h)
	}
	c.pending = c.pending[:0]
}
