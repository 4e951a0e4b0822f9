package scene

import (
	"fmt"

	"github.com/tomaspre/physviz/internal/stage"
)

// Host is what a scene needs from the rendering application: a live
// scene-graph node to parent its layers into, the current viewport size,
// and the shared per-frame clock.
type Host interface {
	Root() *stage.Node
	Clock() *stage.Clock
	Size() (w, h int)
}

// Renderer holds the scene-specific hooks a Lifecycle drives. Setup runs
// once, synchronously, during construction; Animate runs every frame.
type Renderer interface {
	Setup(lc *Lifecycle)
	Animate(lc *Lifecycle, tick stage.Tick)
}

// VariableWatcher is implemented by renderers that recompute cached layout
// when the variable snapshot is replaced. Optional.
type VariableWatcher interface {
	VariablesChanged(lc *Lifecycle)
}

// ResizeWatcher is implemented by renderers that react to viewport changes
// beyond the background redraw the lifecycle already does. Optional.
type ResizeWatcher interface {
	Resized(lc *Lifecycle)
}

// Sampler is implemented by renderers that expose one scalar trace for the
// UI history graph. Optional.
type Sampler interface {
	Sample() (label string, value float64)
}

// Option configures a Lifecycle at construction.
type Option func(*Lifecycle)

// WithGrid enables the decorative drifting grid overlay on the background
// layer, with the given spacing in dots.
func WithGrid(spacing int) Option {
	return func(lc *Lifecycle) {
		if spacing > 1 {
			lc.grid = spacing
		}
	}
}

// WithVariables sets the initial variable snapshot.
func WithVariables(vars Variables) Option {
	return func(lc *Lifecycle) { lc.vars = vars.Clone() }
}

// Lifecycle owns one scene's construction, per-frame animation, variable
// updates, resizing, and teardown. It goes through three states:
// constructing, active, destroyed. Destroyed is terminal; Update and
// Resize become no-ops there, and the frame callback only attempts to
// unregister itself.
//
// Width, height and the derived centers are in dot coordinates (the
// braille sub-pixel space the canvases draw in).
type Lifecycle struct {
	id       string
	host     Host
	renderer Renderer

	width  int
	height int
	vars   Variables

	background *stage.Node
	content    *stage.Node

	grid   int
	handle stage.Handle

	destroyed   bool
	cleanupErrs []error
}

// New constructs a scene: allocates its id, captures the host viewport,
// creates the owned background and content layers, runs the renderer's
// Setup, then registers the per-frame callback with the host clock. The
// host is assumed live.
func New(host Host, r Renderer, ids *IDGen, opts ...Option) *Lifecycle {
	lc := &Lifecycle{
		id:       ids.Next(),
		host:     host,
		renderer: r,
		vars:     Variables{},
	}
	for _, opt := range opts {
		opt(lc)
	}

	lc.readViewport()
	lc.background, _ = host.Root().NewChild(lc.id + "/background")
	lc.content, _ = host.Root().NewChild(lc.id + "/content")
	lc.drawBackground()

	r.Setup(lc)

	lc.handle = host.Clock().Register(lc.frame)
	return lc
}

// ID returns the scene's unique identity.
func (lc *Lifecycle) ID() string { return lc.id }

// Width returns the viewport width in dots.
func (lc *Lifecycle) Width() int { return lc.width }

// Height returns the viewport height in dots.
func (lc *Lifecycle) Height() int { return lc.height }

// CenterX is half the current width.
func (lc *Lifecycle) CenterX() int { return lc.width / 2 }

// CenterY is half the current height.
func (lc *Lifecycle) CenterY() int { return lc.height / 2 }

// Destroyed reports whether Destroy has run.
func (lc *Lifecycle) Destroyed() bool { return lc.destroyed }

// Background returns the lifecycle-owned background layer.
func (lc *Lifecycle) Background() *stage.Node { return lc.background }

// Content returns the layer scene renderers draw into.
func (lc *Lifecycle) Content() *stage.Node { return lc.content }

// Vars returns the current variable snapshot. Callers must not mutate it;
// use Update to replace it.
func (lc *Lifecycle) Vars() Variables { return lc.vars }

// Var reads one variable, falling back to def when the key is absent from
// the snapshot.
func (lc *Lifecycle) Var(name string, def float64) float64 {
	return lc.vars.Get(name, def)
}

// Update replaces the stored variable snapshot wholesale, with no merging
// against the previous snapshot, then gives the renderer a chance to recompute
// cached values. No-op once destroyed.
func (lc *Lifecycle) Update(vars Variables) {
	if lc.destroyed {
		return
	}
	lc.vars = vars.Clone()
	if w, ok := lc.renderer.(VariableWatcher); ok {
		w.VariablesChanged(lc)
	}
}

// Resize re-reads the host viewport, resizes the owned layers, redraws the
// background, and notifies the renderer. No-op once destroyed.
func (lc *Lifecycle) Resize() {
	if lc.destroyed {
		return
	}
	lc.readViewport()
	w, h := lc.host.Size()
	lc.background.Resize(w, h)
	lc.content.Resize(w, h)
	lc.drawBackground()
	if r, ok := lc.renderer.(ResizeWatcher); ok {
		r.Resized(lc)
	}
}

// Destroy tears the scene down: marks it destroyed, unregisters the frame
// callback, and releases the owned layers. Each cleanup step runs
// independently; a failure in one (clock already gone, layer already
// disposed) never prevents the others. Failures are recorded for
// inspection and otherwise ignored; Destroy never returns or throws them.
// Calling Destroy again is a no-op.
func (lc *Lifecycle) Destroy() {
	if lc.destroyed {
		return
	}
	lc.destroyed = true
	lc.cleanupErrs = bestEffort(
		func() {
			if c := lc.host.Clock(); c != nil {
				c.Unregister(lc.handle)
			}
		},
		func() { lc.background.Destroy() },
		func() { lc.content.Destroy() },
	)
}

// CleanupErrors returns failures swallowed during Destroy, for diagnostics.
func (lc *Lifecycle) CleanupErrors() []error { return lc.cleanupErrs }

// frame is the per-frame callback registered with the host clock. The
// clock may fire it after Destroy when the deregistration was deferred to
// the end of a pass; the destroyed check below is the guard for exactly
// that case and must stay even for clocks that never defer.
func (lc *Lifecycle) frame(tick stage.Tick) {
	if lc.destroyed {
		if c := lc.host.Clock(); c != nil {
			c.Unregister(lc.handle)
		}
		return
	}
	if lc.grid > 0 {
		lc.drawGrid(tick.Elapsed)
	}
	lc.renderer.Animate(lc, tick)
}

func (lc *Lifecycle) readViewport() {
	w, h := lc.host.Size()
	lc.width = w * 2
	lc.height = h * 4
}

// drawBackground renders the static background: the grid at rest when
// enabled, otherwise an empty layer.
func (lc *Lifecycle) drawBackground() {
	c := lc.background.Canvas()
	if c == nil {
		return
	}
	c.Clear()
	if lc.grid > 0 {
		lc.drawGrid(0)
	}
}

// gridDriftSpeed is how fast the overlay scrolls, in dots per second.
const gridDriftSpeed = 4.0

func (lc *Lifecycle) drawGrid(elapsed float64) {
	c := lc.background.Canvas()
	if c == nil {
		return
	}
	c.Clear()
	offset := int(elapsed*gridDriftSpeed) % lc.grid
	for x := offset; x < lc.width; x += lc.grid {
		for y := 0; y < lc.height; y += 3 {
			c.Set(x, y)
		}
	}
	for y := offset; y < lc.height; y += lc.grid {
		for x := 0; x < lc.width; x += 3 {
			c.Set(x, y)
		}
	}
}

// bestEffort runs each cleanup step in isolation, converting panics from
// already-disposed resources into recorded errors instead of letting one
// step abort the rest.
func bestEffort(steps ...func()) []error {
	var errs []error
	for i, step := range steps {
		func() {
			defer func() {
				if r := recover(); r != nil {
					errs = append(errs, fmt.Errorf("cleanup step %d: %v", i, r))
				}
			}()
			step()
		}()
	}
	return errs
}
