package config

// Presets are the built-in themed effects. Each is a complete config; CLI
// flags and config files override individual fields.
var Presets = map[string]*Config{
	"cosmic": {
		Theme:        "cosmic",
		MaxParticles: 300,
		Size:         RangeConfig{Min: 1, Max: 3},
		Lifespan:     RangeConfig{Min: 120, Max: 300},
		EmissionRate: 2,
		EmissionArea: RectConfig{X: 0, Y: 0, W: DefaultWidth, H: DefaultHeight},
		Friction:     0.995,
		Turbulence:   0.05,
		ColorMode:    "gradient",
		Gradient: []StopConfig{
			{Pos: 0, Color: ColorConfig{R: 180, G: 120, B: 255, A: 255}},
			{Pos: 0.5, Color: ColorConfig{R: 80, G: 160, B: 255, A: 255}},
			{Pos: 1, Color: ColorConfig{R: 20, G: 30, B: 120, A: 255}},
		},
		Behavior:  "swarm",
		SwarmTurn: RangeConfig{Min: -0.15, Max: 0.15},
		Boundary:  "wrap",
		Blend:     "additive",
		Bindings: []BindingConfig{
			{Band: "bass", Target: "emission_rate", Min: 0.5, Max: 8},
			{Band: "mid", Target: "size_scale", Min: 0.8, Max: 2.2},
		},
		BeatBurst: &BurstConfig{
			Count: 24, Speed: 4, Size: 2, Lifespan: 40,
			Color: ColorConfig{R: 255, G: 230, B: 160, A: 255},
		},
	},
	"nightsky": {
		Theme:        "nightsky",
		MaxParticles: 400,
		Size:         RangeConfig{Min: 0.5, Max: 2},
		Lifespan:     RangeConfig{Min: 200, Max: 600},
		EmissionRate: 1.2,
		EmissionArea: RectConfig{X: 0, Y: 0, W: DefaultWidth, H: DefaultHeight / 2},
		Wind:         VecConfig{X: 0.02},
		Friction:     1,
		ColorMode:    "random",
		StaticColor:  ColorConfig{A: 255},
		Behavior:     "standard",
		Boundary:     "wrap",
		Blend:        "alpha",
		Bindings: []BindingConfig{
			{Band: "high", Target: "size_scale", Min: 0.9, Max: 1.6},
			{Band: "mid", Target: "wind_x", Min: -0.1, Max: 0.1},
		},
	},
	"concert": {
		Theme:        "concert",
		MaxParticles: 500,
		Size:         RangeConfig{Min: 2, Max: 5},
		Lifespan:     RangeConfig{Min: 40, Max: 90},
		EmissionRate: 4,
		EmissionArea: RectConfig{X: DefaultWidth / 4, Y: DefaultHeight - 20, W: DefaultWidth / 2, H: 20},
		Gravity:      VecConfig{Y: -0.08},
		Friction:     0.97,
		Turbulence:   0.3,
		ColorMode:    "gradient",
		Gradient: []StopConfig{
			{Pos: 0, Color: ColorConfig{R: 255, G: 60, B: 60, A: 255}},
			{Pos: 1, Color: ColorConfig{R: 255, G: 220, B: 60, A: 0}},
		},
		Behavior: "explosion",
		Boundary: "bounce",
		Blend:    "additive",
		Bindings: []BindingConfig{
			{Band: "bass", Target: "emission_rate", Min: 1, Max: 14},
			{Band: "bass", Target: "size_scale", Min: 1, Max: 2.5},
			{Band: "mid", Target: "gravity_y", Min: -0.15, Max: -0.02},
		},
		BeatBurst: &BurstConfig{
			Count: 40, Speed: 6, Size: 3, Lifespan: 30,
			Color: ColorConfig{R: 255, G: 255, B: 255, A: 255},
		},
	},
	"galaxy": {
		Theme:        "galaxy",
		MaxParticles: 600,
		Size:         RangeConfig{Min: 0.5, Max: 2.5},
		Lifespan:     RangeConfig{Min: 150, Max: 400},
		EmissionRate: 3,
		EmissionArea: RectConfig{X: DefaultWidth/2 - 40, Y: DefaultHeight/2 - 40, W: 80, H: 80},
		Friction:     0.999,
		ColorMode:    "gradient",
		Gradient: []StopConfig{
			{Pos: 0, Color: ColorConfig{R: 255, G: 255, B: 255, A: 255}},
			{Pos: 0.3, Color: ColorConfig{R: 200, G: 180, B: 255, A: 255}},
			{Pos: 1, Color: ColorConfig{R: 60, G: 20, B: 90, A: 0}},
		},
		Behavior:  "swarm",
		SwarmTurn: RangeConfig{Min: 0.02, Max: 0.08},
		Boundary:  "wrap",
		Blend:     "additive",
		Bindings: []BindingConfig{
			{Band: "mid", Target: "emission_rate", Min: 1, Max: 10},
			{Band: "high", Target: "size_scale", Min: 0.8, Max: 1.8},
		},
	},
	"fractal": {
		Theme:        "fractal",
		MaxParticles: 250,
		Size:         RangeConfig{Min: 1, Max: 2},
		Lifespan:     RangeConfig{Min: 80, Max: 160},
		EmissionRate: 2.5,
		EmissionArea: RectConfig{X: DefaultWidth / 2, Y: DefaultHeight / 2, W: 0, H: 0},
		Friction:     0.99,
		Turbulence:   0.15,
		ColorMode:    "gradient",
		Gradient: []StopConfig{
			{Pos: 0, Color: ColorConfig{R: 0, G: 255, B: 180, A: 255}},
			{Pos: 1, Color: ColorConfig{R: 0, G: 60, B: 80, A: 0}},
		},
		Behavior:    "trail",
		TrailLength: 14,
		Boundary:    "bounce",
		Blend:       "alpha",
		Bindings: []BindingConfig{
			{Band: "high", Target: "emission_rate", Min: 0.5, Max: 6},
			{Band: "bass", Target: "wind_x", Min: -0.2, Max: 0.2},
		},
		BeatBurst: &BurstConfig{
			Count: 12, Speed: 3, Size: 1.5, Lifespan: 50,
			Color: ColorConfig{R: 120, G: 255, B: 220, A: 255},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown. Scalar
// fields are safe to override; gradient and binding slices are shared.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
