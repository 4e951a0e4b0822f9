package config

import "sort"

// Presets are named variable bundles per scene, for quick starts from the
// CLI (`physviz run wave --preset standing`).
var Presets = map[string]map[string]map[string]float64{
	"pendulum": {
		"gentle":   {"theta0": 0.2, "damping": 0.05},
		"wide":     {"theta0": 1.0, "damping": 0.1},
		"moon":     {"theta0": 0.6, "gravity": 1.62},
		"unforced": {"theta0": 0.6, "damping": 0.0},
	},
	"spring": {
		"soft":  {"stiffness": 3.0, "mass": 1.0, "amplitude": 0.8},
		"stiff": {"stiffness": 40.0, "mass": 1.0, "amplitude": 0.4},
		"heavy": {"stiffness": 12.0, "mass": 8.0, "amplitude": 0.6},
	},
	"wave": {
		"standing": {"phase": 0.0, "frequency": 0.5},
		"sliding":  {"phase": 1.57, "frequency": 0.5},
		"tight":    {"wavelength": 16.0, "frequency": 1.0},
	},
	"collision": {
		"equal":   {"m1": 1.0, "m2": 1.0, "v1": 2.0, "v2": -2.0},
		"freight": {"m1": 10.0, "m2": 1.0, "v1": 2.0, "v2": 0.0},
		"chase":   {"m1": 1.0, "m2": 2.0, "v1": 4.0, "v2": 1.0},
	},
	"projectile": {
		"flat":  {"speed": 24.0, "angle": 20.0},
		"lob":   {"speed": 14.0, "angle": 75.0},
		"lunar": {"speed": 10.0, "angle": 45.0, "gravity": 1.62},
	},
	"efield": {
		"dipole": {"q1": 1.0, "q2": -1.0, "separation": 0.5},
		"twin":   {"q1": 1.0, "q2": 1.0, "separation": 0.5},
		"close":  {"q1": 1.0, "q2": -1.0, "separation": 0.2},
	},
	"photoelectric": {
		"below":  {"frequency": 4.0, "intensity": 8.0, "workfunction": 2.0},
		"above":  {"frequency": 8.0, "intensity": 5.0, "workfunction": 2.0},
		"bright": {"frequency": 8.0, "intensity": 20.0, "workfunction": 2.0},
	},
}

// GetPreset returns the variables for a named preset, or nil when either
// the scene or the preset does not exist.
func GetPreset(sceneName, preset string) map[string]float64 {
	byScene, ok := Presets[sceneName]
	if !ok {
		return nil
	}
	vars, ok := byScene[preset]
	if !ok {
		return nil
	}
	return vars
}

// ListPresets returns the sorted preset names for a scene, or nil for an
// unknown scene.
func ListPresets(sceneName string) []string {
	byScene, ok := Presets[sceneName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byScene))
	for name := range byScene {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
