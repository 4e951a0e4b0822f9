package scenes

import (
	"math"

	"github.com/tomaspre/physviz/internal/scene"
	"github.com/tomaspre/physviz/internal/stage"
)

const (
	defaultQ1         = 1.0
	defaultQ2         = -1.0
	defaultSeparation = 0.5
)

// EField traces the field lines of a two-point-charge system. Lines are
// cached (they only depend on the variables and viewport) and redrawn
// every frame with a pulse running along each line to show direction.
type EField struct {
	lines [][]struct{ x, y int }
}

func NewEField() *EField { return &EField{} }

func (e *EField) Setup(lc *scene.Lifecycle) {
	e.trace(lc)
}

func (e *EField) VariablesChanged(lc *scene.Lifecycle) {
	e.trace(lc)
}

func (e *EField) Resized(lc *scene.Lifecycle) {
	e.trace(lc)
}

type charge struct {
	x, y, q float64
}

func (e *EField) charges(lc *scene.Lifecycle) [2]charge {
	sep := lc.Var("separation", defaultSeparation)
	if sep < 0.1 {
		sep = 0.1
	}
	half := sep * float64(lc.Width()) * 0.4
	cx, cy := float64(lc.CenterX()), float64(lc.CenterY())
	return [2]charge{
		{x: cx - half, y: cy, q: lc.Var("q1", defaultQ1)},
		{x: cx + half, y: cy, q: lc.Var("q2", defaultQ2)},
	}
}

// trace follows the field direction from seed points around each positive
// charge, stepping until the line leaves the viewport or lands on a
// negative charge.
func (e *EField) trace(lc *scene.Lifecycle) {
	e.lines = e.lines[:0]
	ch := e.charges(lc)
	const seeds = 12
	const maxSteps = 600

	for _, c := range ch {
		if c.q <= 0 {
			continue
		}
		for s := 0; s < seeds; s++ {
			a := 2 * math.Pi * float64(s) / seeds
			x := c.x + 3*math.Cos(a)
			y := c.y + 3*math.Sin(a)
			var line []struct{ x, y int }
			for step := 0; step < maxSteps; step++ {
				ex, ey := fieldAt(ch, x, y)
				norm := math.Hypot(ex, ey)
				if norm < 1e-9 {
					break
				}
				x += ex / norm
				y += ey / norm
				if x < 0 || y < 0 || x >= float64(lc.Width()) || y >= float64(lc.Height()) {
					break
				}
				line = append(line, struct{ x, y int }{int(x), int(y)})
				if near(ch, x, y) {
					break
				}
			}
			if len(line) > 2 {
				e.lines = append(e.lines, line)
			}
		}
	}
}

func fieldAt(ch [2]charge, x, y float64) (float64, float64) {
	var ex, ey float64
	for _, c := range ch {
		dx, dy := x-c.x, y-c.y
		r2 := dx*dx + dy*dy
		if r2 < 1 {
			r2 = 1
		}
		r := math.Sqrt(r2)
		ex += c.q * dx / (r2 * r)
		ey += c.q * dy / (r2 * r)
	}
	return ex, ey
}

// near reports whether (x, y) sits on a negative charge.
func near(ch [2]charge, x, y float64) bool {
	for _, c := range ch {
		if c.q < 0 && math.Hypot(x-c.x, y-c.y) < 3 {
			return true
		}
	}
	return false
}

func (e *EField) Animate(lc *scene.Lifecycle, tick stage.Tick) {
	cv := lc.Content().Canvas()
	if cv == nil {
		return
	}
	cv.Clear()

	// Sparse line dots, with a brighter pulse sliding along each line.
	pulse := int(tick.Elapsed*30) % 24
	for _, line := range e.lines {
		for i, pt := range line {
			if i%4 == 0 {
				cv.Set(pt.x, pt.y)
			}
			if i%24 == pulse {
				cv.Dot(pt.x, pt.y, 1)
			}
		}
	}

	ch := e.charges(lc)
	for _, c := range ch {
		x, y := int(c.x), int(c.y)
		if c.q >= 0 {
			cv.Dot(x, y, 3)
		} else {
			cv.Circle(x, y, 3)
		}
	}
}
