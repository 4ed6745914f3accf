package config

import "sort"

// Preset is a named viewing setup: a body subset from the builtin dataset
// plus starting values tuned for that subset's orbital scales.
type Preset struct {
	Bodies       []string // nil keeps the whole dataset
	TimeScale    float64
	CameraHeight float64
}

var Presets = map[string]*Preset{
	"inner": {
		Bodies:       []string{"Mercury", "Venus", "Earth", "Mars"},
		TimeScale:    5.0,
		CameraHeight: 400,
	},
	"giants": {
		Bodies:       []string{"Jupiter", "Saturn", "Uranus", "Neptune"},
		TimeScale:    50.0,
		CameraHeight: 6500,
	},
	"all": {
		TimeScale:    10.0,
		CameraHeight: DefaultCameraHeight,
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Preset {
	return Presets[name]
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply overlays the preset onto a config.
func (p *Preset) Apply(cfg *Config) {
	if p.TimeScale > 0 {
		cfg.TimeScale = p.TimeScale
	}
	if p.CameraHeight > 0 {
		cfg.Camera.Height = p.CameraHeight
	}
}
