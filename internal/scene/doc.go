// Package scene implements the lifecycle contract every animated physics
// scene shares: uniform construction and teardown, a per-frame callback on
// the host's shared clock, wholesale variable updates, and resizing.
//
// A concrete scene supplies a [Renderer] (Setup + Animate, with optional
// [VariableWatcher] and [ResizeWatcher] hooks) and the [Lifecycle] does the
// rest: it owns the background and content layers, the clock registration,
// and the destroyed-state guard that makes stale clock callbacks after
// teardown harmless.
//
//	lc := scene.New(host, renderer, ids)
//	lc.Update(scene.Variables{"mass": 2})
//	lc.Resize()
//	lc.Destroy()
//
// All four calls above are the entire surface product code needs.
package scene
