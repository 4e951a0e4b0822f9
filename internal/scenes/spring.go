package scenes

import (
	"math"

	"github.com/tomaspre/physviz/internal/scene"
	"github.com/tomaspre/physviz/internal/stage"
)

const (
	defaultStiffness = 12.0
	defaultMass      = 1.0
	defaultAmpl      = 0.6
)

// Spring animates simple harmonic motion x(t) = A·cos(ωt) with
// ω = sqrt(k/m), drawn as a wall, a coil spring, and a block.
type Spring struct {
	omega float64 // cached; recomputed on variable changes
	ext   float64
}

func NewSpring() *Spring { return &Spring{} }

func (s *Spring) Setup(lc *scene.Lifecycle) {
	s.recompute(lc)
}

func (s *Spring) VariablesChanged(lc *scene.Lifecycle) {
	s.recompute(lc)
}

func (s *Spring) recompute(lc *scene.Lifecycle) {
	k := lc.Var("stiffness", defaultStiffness)
	m := lc.Var("mass", defaultMass)
	if k < 0.01 {
		k = 0.01
	}
	if m < 0.01 {
		m = 0.01
	}
	s.omega = math.Sqrt(k / m)
}

func (s *Spring) Animate(lc *scene.Lifecycle, tick stage.Tick) {
	cv := lc.Content().Canvas()
	if cv == nil {
		return
	}
	amp := lc.Var("amplitude", defaultAmpl)
	s.ext = amp * math.Cos(s.omega*tick.Elapsed)

	cy := lc.CenterY()
	wallX := 8
	restX := lc.CenterX()
	massX := restX + int(s.ext*float64(lc.Width())*0.3)

	cv.Clear()
	cv.Line(wallX, cy-12, wallX, cy+12)

	// Coils, zig-zagging from the wall to the block.
	numCoils := 10
	span := massX - 5 - wallX
	step := float64(span) / float64(numCoils)
	prevX, prevY := wallX, cy
	for i := 1; i <= numCoils; i++ {
		x := wallX + int(float64(i)*step)
		y := cy + 5
		if i%2 == 0 {
			y = cy - 5
		}
		cv.Line(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
	cv.Line(prevX, prevY, massX-5, cy)

	cv.Rect(massX-5, cy-5, massX+5, cy+5)

	// Equilibrium marker.
	for y := cy + 8; y < cy+14; y += 2 {
		cv.Set(restX, y)
	}
}

func (s *Spring) Sample() (string, float64) {
	return "extension", s.ext
}
