// Package stage provides the host-side rendering surface for scenes: a
// braille-cell canvas, a composable scene-graph of canvas layers, and the
// shared per-frame clock that drives animation.
//
//   - [Canvas]: 2x4-dot braille drawing surface
//   - [Node]: scene-graph layer with ordered children and recursive teardown
//   - [Clock]: per-frame callback registry with opaque handles
//   - [Stage]: root node + viewport size + clock, handed to scenes as host
//
// The clock deliberately defers removals requested during a frame pass, so
// a callback can observe one extra tick after its owner decided to tear it
// down. Scene code guards against that; see the scene package.
package stage
