package scenes

import (
	"math"

	"github.com/tomaspre/physviz/internal/scene"
	"github.com/tomaspre/physviz/internal/stage"
)

const (
	defaultLength   = 1.0
	defaultGravityP = 9.81
	defaultTheta0   = 0.6
	defaultDamping  = 0.15
)

// Pendulum animates the damped small-angle solution
// θ(t) = θ₀·cos(ωt)·e^(−γt), ω = sqrt(g/L).
type Pendulum struct {
	omega float64
	theta float64
	trail []struct{ x, y int }
}

func NewPendulum() *Pendulum { return &Pendulum{} }

func (p *Pendulum) Setup(lc *scene.Lifecycle) {
	p.recompute(lc)
}

func (p *Pendulum) VariablesChanged(lc *scene.Lifecycle) {
	p.recompute(lc)
	p.trail = p.trail[:0]
}

func (p *Pendulum) Resized(lc *scene.Lifecycle) {
	p.trail = p.trail[:0]
}

func (p *Pendulum) recompute(lc *scene.Lifecycle) {
	g := lc.Var("gravity", defaultGravityP)
	l := lc.Var("length", defaultLength)
	if g < 0.01 {
		g = 0.01
	}
	if l < 0.01 {
		l = 0.01
	}
	p.omega = math.Sqrt(g / l)
}

func (p *Pendulum) Animate(lc *scene.Lifecycle, tick stage.Tick) {
	cv := lc.Content().Canvas()
	if cv == nil {
		return
	}
	theta0 := lc.Var("theta0", defaultTheta0)
	gamma := lc.Var("damping", defaultDamping)

	t := tick.Elapsed
	p.theta = theta0 * math.Cos(p.omega*t) * math.Exp(-gamma*t)

	pivotX, pivotY := lc.CenterX(), 6
	rod := float64(lc.Height()) * 0.7
	bx := pivotX + int(rod*math.Sin(p.theta))
	by := pivotY + int(rod*math.Cos(p.theta))

	p.trail = append(p.trail, struct{ x, y int }{bx, by})
	if len(p.trail) > 120 {
		p.trail = p.trail[1:]
	}

	cv.Clear()
	for _, pt := range p.trail {
		cv.Set(pt.x, pt.y)
	}
	cv.Set(pivotX, pivotY)
	cv.Line(pivotX, pivotY, bx, by)
	cv.Dot(bx, by, 2)
}

func (p *Pendulum) Sample() (string, float64) {
	return "theta", p.theta
}
