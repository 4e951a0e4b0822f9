package scenes

import (
	"math"

	"github.com/tomaspre/physviz/internal/scene"
	"github.com/tomaspre/physviz/internal/stage"
)

const (
	defaultAmplitude  = 0.8
	defaultWavelength = 40.0 // dots
	defaultFrequency  = 0.5  // Hz
	defaultPhase      = 0.0  // radians, applied to the counter wave
)

// Wave draws two counter-propagating sinusoids and their superposition:
// y = A·sin(kx − ωt) + A·sin(kx + ωt + φ). With φ = 0 this is a standing
// wave; other phases slide the interference pattern.
type Wave struct {
	center float64
}

func NewWave() *Wave { return &Wave{} }

func (w *Wave) Setup(lc *scene.Lifecycle) {}

func (w *Wave) Animate(lc *scene.Lifecycle, tick stage.Tick) {
	cv := lc.Content().Canvas()
	if cv == nil {
		return
	}
	amp := lc.Var("amplitude", defaultAmplitude)
	lambda := lc.Var("wavelength", defaultWavelength)
	if lambda < 4 {
		lambda = 4
	}
	freq := lc.Var("frequency", defaultFrequency)
	phase := lc.Var("phase", defaultPhase)

	k := 2 * math.Pi / lambda
	omega := 2 * math.Pi * freq
	t := tick.Elapsed
	cy := lc.CenterY()
	scale := float64(lc.Height()) * 0.2

	cv.Clear()
	cv.Line(0, cy, lc.Width()-1, cy)

	prevY := 0
	for x := 0; x < lc.Width(); x++ {
		fx := float64(x)
		y1 := amp * math.Sin(k*fx-omega*t)
		y2 := amp * math.Sin(k*fx+omega*t+phase)

		// Component waves as sparse dots, superposition as a solid curve.
		if x%3 == 0 {
			cv.Set(x, cy-int(y1*scale))
			cv.Set(x, cy-int(y2*scale))
		}
		py := cy - int((y1+y2)*scale)
		if x > 0 {
			cv.Line(x-1, prevY, x, py)
		}
		prevY = py

		if x == lc.CenterX() {
			w.center = y1 + y2
		}
	}
}

func (w *Wave) Sample() (string, float64) {
	return "midpoint", w.center
}
