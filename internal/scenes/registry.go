package scenes

import (
	"fmt"
	"sort"

	"github.com/tomaspre/physviz/internal/scene"
)

// Entry describes one formula scene: how to build its renderer, its
// default variables, and the one-line blurb the menu shows.
type Entry struct {
	Name     string
	Blurb    string
	Defaults scene.Variables
	Grid     bool // scene variant carries the drifting grid overlay
	New      func() scene.Renderer
}

var entries = map[string]Entry{
	"collision": {
		Name:     "collision",
		Blurb:    "elastic collision, momentum conservation",
		Defaults: scene.Variables{"m1": 2.0, "m2": 1.0, "v1": 3.0, "v2": -1.0},
		New:      func() scene.Renderer { return NewCollision() },
	},
	"projectile": {
		Name:     "projectile",
		Blurb:    "ballistic trajectory",
		Defaults: scene.Variables{"speed": 18.0, "angle": 60.0, "gravity": 9.81},
		Grid:     true,
		New:      func() scene.Renderer { return NewProjectile() },
	},
	"wave": {
		Name:     "wave",
		Blurb:    "superposition and interference",
		Defaults: scene.Variables{"amplitude": 0.8, "wavelength": 40.0, "frequency": 0.5, "phase": 0.0},
		New:      func() scene.Renderer { return NewWave() },
	},
	"spring": {
		Name:     "spring",
		Blurb:    "Hooke's law oscillator",
		Defaults: scene.Variables{"stiffness": 12.0, "mass": 1.0, "amplitude": 0.6},
		New:      func() scene.Renderer { return NewSpring() },
	},
	"pendulum": {
		Name:     "pendulum",
		Blurb:    "damped small-angle pendulum",
		Defaults: scene.Variables{"length": 1.0, "gravity": 9.81, "theta0": 0.6, "damping": 0.15},
		New:      func() scene.Renderer { return NewPendulum() },
	},
	"efield": {
		Name:     "efield",
		Blurb:    "field lines of two point charges",
		Defaults: scene.Variables{"q1": 1.0, "q2": -1.0, "separation": 0.5},
		Grid:     true,
		New:      func() scene.Renderer { return NewEField() },
	},
	"photoelectric": {
		Name:     "photoelectric",
		Blurb:    "photoelectric effect, E = hf",
		Defaults: scene.Variables{"frequency": 6.0, "intensity": 5.0, "workfunction": 2.0},
		New:      func() scene.Renderer { return NewPhotoelectric() },
	},
}

// Get returns the catalog entry for name.
func Get(name string) (Entry, error) {
	e, ok := entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("unknown scene: %s", name)
	}
	return e, nil
}

// List returns all entries sorted by name.
func List() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted scene names.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options builds the lifecycle options for an entry, overlaying vars on
// top of the entry defaults. A nil vars map keeps the defaults as-is.
func (e Entry) Options(vars scene.Variables) []scene.Option {
	merged := e.Defaults.Clone()
	for k, v := range vars {
		merged[k] = v
	}
	opts := []scene.Option{scene.WithVariables(merged)}
	if e.Grid {
		opts = append(opts, scene.WithGrid(10))
	}
	return opts
}
