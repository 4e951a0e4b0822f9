package scenes

import (
	"math"

	"github.com/tomaspre/physviz/internal/scene"
	"github.com/tomaspre/physviz/internal/stage"
)

const (
	defaultSpeed   = 18.0
	defaultAngle   = 60.0 // degrees
	defaultGravity = 9.81
)

// Projectile animates the closed-form ballistic trajectory
// x = v·cosθ·t, y = v·sinθ·t − g·t²/2, relaunching when the shot lands.
type Projectile struct {
	t     float64
	trail []struct{ x, y int }
	y     float64 // latest height, model space
}

func NewProjectile() *Projectile { return &Projectile{} }

func (p *Projectile) Setup(lc *scene.Lifecycle) {
	p.t = 0
	p.trail = p.trail[:0]
}

func (p *Projectile) VariablesChanged(lc *scene.Lifecycle) {
	// A new launch parameterization restarts the shot.
	p.t = 0
	p.trail = p.trail[:0]
}

func (p *Projectile) Resized(lc *scene.Lifecycle) {
	// Trail points are in screen space, useless after a resize.
	p.trail = p.trail[:0]
}

func (p *Projectile) Animate(lc *scene.Lifecycle, tick stage.Tick) {
	cv := lc.Content().Canvas()
	if cv == nil {
		return
	}
	v := lc.Var("speed", defaultSpeed)
	theta := lc.Var("angle", defaultAngle) * math.Pi / 180
	g := lc.Var("gravity", defaultGravity)
	if g < 0.1 {
		g = 0.1
	}

	p.t += tick.Delta
	x := v * math.Cos(theta) * p.t
	y := v*math.Sin(theta)*p.t - 0.5*g*p.t*p.t
	p.y = y
	if y < 0 {
		p.t = 0
		p.trail = p.trail[:0]
		x, y = 0, 0
	}

	// Scale so the full range and apex fit the viewport.
	rang := v * v * math.Sin(2*theta) / g
	apex := v * v * math.Sin(theta) * math.Sin(theta) / (2 * g)
	if rang < 1 {
		rang = 1
	}
	if apex < 1 {
		apex = 1
	}
	groundY := lc.Height() - 5
	sx := float64(lc.Width()-10) / rang
	sy := float64(groundY-4) / apex

	px := 5 + int(x*sx)
	py := groundY - int(y*sy)
	p.trail = append(p.trail, struct{ x, y int }{px, py})
	if len(p.trail) > 400 {
		p.trail = p.trail[1:]
	}

	cv.Clear()
	cv.Line(0, groundY+1, lc.Width()-1, groundY+1)
	// Launcher barrel.
	cv.Line(5, groundY, 5+int(8*math.Cos(theta)), groundY-int(8*math.Sin(theta)))
	for _, pt := range p.trail {
		cv.Set(pt.x, pt.y)
	}
	cv.Dot(px, py, 1)
}

func (p *Projectile) Sample() (string, float64) {
	return "height", p.y
}
