package scenes

import (
	"math"

	"github.com/tomaspre/physviz/internal/scene"
	"github.com/tomaspre/physviz/internal/stage"
)

// Collision defaults, used when a variable is absent from the snapshot.
const (
	defaultM1 = 2.0
	defaultM2 = 1.0
	defaultV1 = 3.0
	defaultV2 = -1.0
)

// Collision animates a 1D elastic collision between two blocks. Post-
// collision velocities come straight from momentum and kinetic energy
// conservation; between contacts the blocks just translate.
type Collision struct {
	m1, m2 float64 // masses, cached at reset
	x1, x2 float64 // positions, model space 0..10
	v1, v2 float64 // current velocities
	hits   int
}

func NewCollision() *Collision { return &Collision{} }

func (c *Collision) Setup(lc *scene.Lifecycle) {
	c.reset(lc)
}

func (c *Collision) VariablesChanged(lc *scene.Lifecycle) {
	c.reset(lc)
}

func (c *Collision) reset(lc *scene.Lifecycle) {
	c.m1 = lc.Var("m1", defaultM1)
	c.m2 = lc.Var("m2", defaultM2)
	c.x1, c.x2 = 2.0, 8.0
	c.v1 = lc.Var("v1", defaultV1)
	c.v2 = lc.Var("v2", defaultV2)
	c.hits = 0
}

func (c *Collision) Animate(lc *scene.Lifecycle, tick stage.Tick) {
	cv := lc.Content().Canvas()
	if cv == nil {
		return
	}
	m1, m2 := c.m1, c.m2

	c.x1 += c.v1 * tick.Delta
	c.x2 += c.v2 * tick.Delta

	r1 := blockHalf(m1)
	r2 := blockHalf(m2)

	// Elastic collision between the blocks.
	if c.x2-c.x1 <= r1+r2 && c.v1 > c.v2 {
		u1, u2 := c.v1, c.v2
		c.v1 = ((m1-m2)*u1 + 2*m2*u2) / (m1 + m2)
		c.v2 = ((m2-m1)*u2 + 2*m1*u1) / (m1 + m2)
		c.hits++
	}
	// Walls.
	if c.x1-r1 <= 0 && c.v1 < 0 {
		c.v1 = -c.v1
	}
	if c.x2+r2 >= 10 && c.v2 > 0 {
		c.v2 = -c.v2
	}

	cv.Clear()
	floorY := lc.Height() - 6
	cv.Line(0, floorY+1, lc.Width()-1, floorY+1)

	c.drawBlock(cv, lc, c.x1, m1, floorY)
	c.drawBlock(cv, lc, c.x2, m2, floorY)
	c.drawArrow(cv, lc, c.x1, c.v1, floorY-int(blockDots(lc, m1))-4)
	c.drawArrow(cv, lc, c.x2, c.v2, floorY-int(blockDots(lc, m2))-4)
}

// Sample exposes total momentum, which should hold flat through every hit.
func (c *Collision) Sample() (string, float64) {
	return "momentum", c.m1*c.v1 + c.m2*c.v2
}

// blockHalf is a block's half-width in model space; heavier blocks are
// drawn larger.
func blockHalf(m float64) float64 {
	return 0.25 + 0.1*math.Cbrt(m)
}

func blockDots(lc *scene.Lifecycle, m float64) float64 {
	return blockHalf(m) * float64(lc.Width()) / 10.0
}

func (c *Collision) drawBlock(cv *stage.Canvas, lc *scene.Lifecycle, x, m float64, floorY int) {
	px := int(x * float64(lc.Width()) / 10.0)
	half := int(blockDots(lc, m))
	cv.Rect(px-half, floorY-2*half, px+half, floorY)
}

func (c *Collision) drawArrow(cv *stage.Canvas, lc *scene.Lifecycle, x, v float64, y int) {
	if math.Abs(v) < 1e-9 {
		return
	}
	px := int(x * float64(lc.Width()) / 10.0)
	length := int(v * 4)
	cv.Line(px, y, px+length, y)
	tip := 2
	if length < 0 {
		tip = -2
	}
	cv.Line(px+length, y, px+length-tip, y-2)
	cv.Line(px+length, y, px+length-tip, y+2)
}
