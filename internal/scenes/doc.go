// Package scenes is the formula catalog: one renderer per physics formula,
// each implementing scene.Renderer and redrawing itself every frame from
// closed-form expressions of its variables. Absent variables fall back to
// the documented defaults at the top of each file.
package scenes
