package scenes

import (
	"math"

	"github.com/tomaspre/physviz/internal/scene"
	"github.com/tomaspre/physviz/internal/stage"
)

const (
	defaultLightFreq    = 6.0 // units of 10^14 Hz
	defaultIntensity    = 5.0 // photons per second
	defaultWorkfunction = 2.0 // eV

	// Planck's constant in eV·s, scaled for frequency in 10^14 Hz.
	planckEV = 4.1357e-15 * 1e14
)

// Photoelectric animates photons streaming onto a metal plate. When the
// photon energy hf exceeds the work function, each absorbed photon ejects
// an electron whose speed follows the surplus kinetic energy; below the
// threshold nothing comes off no matter the intensity.
type Photoelectric struct {
	photons   []particle
	electrons []particle
	emitAcc   float64
	emitted   int
}

type particle struct {
	x, y   float64
	vx, vy float64
	live   bool
}

const poolSize = 64

func NewPhotoelectric() *Photoelectric {
	return &Photoelectric{
		photons:   make([]particle, poolSize),
		electrons: make([]particle, poolSize),
	}
}

func (p *Photoelectric) Setup(lc *scene.Lifecycle) {
	for i := range p.photons {
		p.photons[i].live = false
	}
	for i := range p.electrons {
		p.electrons[i].live = false
	}
	p.emitAcc = 0
	p.emitted = 0
}

func (p *Photoelectric) VariablesChanged(lc *scene.Lifecycle) {
	p.emitted = 0
}

func (p *Photoelectric) Animate(lc *scene.Lifecycle, tick stage.Tick) {
	cv := lc.Content().Canvas()
	if cv == nil {
		return
	}
	freq := lc.Var("frequency", defaultLightFreq)
	intensity := lc.Var("intensity", defaultIntensity)
	phi := lc.Var("workfunction", defaultWorkfunction)

	plateX := float64(lc.Width()) * 0.7
	energy := planckEV * freq
	surplus := energy - phi

	// Emission timer: spawn photons at the configured rate.
	p.emitAcc += intensity * tick.Delta
	for p.emitAcc >= 1 {
		p.emitAcc--
		p.spawnPhoton(lc, freq)
	}

	for i := range p.photons {
		ph := &p.photons[i]
		if !ph.live {
			continue
		}
		ph.x += ph.vx * tick.Delta
		ph.y += ph.vy * tick.Delta
		if ph.x >= plateX {
			ph.live = false
			if surplus > 0 {
				p.spawnElectron(ph.x, ph.y, surplus)
				p.emitted++
			}
		}
	}

	for i := range p.electrons {
		el := &p.electrons[i]
		if !el.live {
			continue
		}
		el.x += el.vx * tick.Delta
		el.y += el.vy * tick.Delta
		if el.x >= float64(lc.Width()) || el.y < 0 || el.y >= float64(lc.Height()) {
			el.live = false
		}
	}

	cv.Clear()
	px := int(plateX)
	cv.Line(px, 4, px, lc.Height()-5)
	cv.Line(px+1, 4, px+1, lc.Height()-5)

	for _, ph := range p.photons {
		if ph.live {
			// Short wiggle so photons read as waves, not dots.
			y := int(ph.y + 1.5*math.Sin(ph.x/3))
			cv.Set(int(ph.x), y)
			cv.Set(int(ph.x)-2, y)
		}
	}
	for _, el := range p.electrons {
		if el.live {
			cv.Dot(int(el.x), int(el.y), 1)
		}
	}
}

func (p *Photoelectric) spawnPhoton(lc *scene.Lifecycle, freq float64) {
	// Lane span collapses on very small viewports; keep the modulus legal.
	span := lc.Height() - 16
	if span < 1 {
		span = 1
	}
	for i := range p.photons {
		if p.photons[i].live {
			continue
		}
		lane := float64((p.emitted*7+i*13)%span + 8)
		p.photons[i] = particle{
			x:    0,
			y:    lane,
			vx:   20 + 4*freq,
			live: true,
		}
		return
	}
}

func (p *Photoelectric) spawnElectron(x, y, surplus float64) {
	for i := range p.electrons {
		if p.electrons[i].live {
			continue
		}
		speed := 12 * math.Sqrt(surplus)
		p.electrons[i] = particle{
			x:    x + 3,
			y:    y,
			vx:   speed,
			vy:   -speed * 0.3,
			live: true,
		}
		return
	}
}

func (p *Photoelectric) Sample() (string, float64) {
	return "emitted", float64(p.emitted)
}
