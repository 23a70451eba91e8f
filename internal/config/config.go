package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pulsefx/pulsefx/internal/audio"
	"github.com/pulsefx/pulsefx/internal/particle"
	"github.com/pulsefx/pulsefx/internal/reactive"
)

const (
	DefaultMaxParticles = 200
	DefaultEmission     = 2.0
	DefaultFriction     = 0.98
	DefaultWidth        = 800.0
	DefaultHeight       = 600.0
)

type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColorConfig struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

type StopConfig struct {
	Pos   float64     `yaml:"pos"`
	Color ColorConfig `yaml:"color"`
}

type BindingConfig struct {
	Band   string  `yaml:"band"`   // bass | mid | high
	Target string  `yaml:"target"` // emission_rate | size_scale | gravity_y | wind_x
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

type BurstConfig struct {
	Count    int         `yaml:"count"`
	Speed    float64     `yaml:"speed"`
	Size     float64     `yaml:"size"`
	Lifespan float64     `yaml:"lifespan"`
	Color    ColorConfig `yaml:"color"`
}

// Config is the YAML surface for one visual effect. Unknown enum strings fall
// back to defaults rather than failing, matching the engine's
// degrade-don't-crash posture.
type Config struct {
	Theme        string          `yaml:"theme"`
	MaxParticles int             `yaml:"max_particles"`
	Size         RangeConfig     `yaml:"particle_size"`
	Lifespan     RangeConfig     `yaml:"particle_lifespan"`
	EmissionRate float64         `yaml:"emission_rate"`
	EmissionArea RectConfig      `yaml:"emission_area"`
	Gravity      VecConfig       `yaml:"gravity"`
	Wind         VecConfig       `yaml:"wind"`
	Friction     float64         `yaml:"friction"`
	Turbulence   float64         `yaml:"turbulence"`
	ColorMode    string          `yaml:"color_mode"` // static | random | gradient
	StaticColor  ColorConfig     `yaml:"static_color"`
	Gradient     []StopConfig    `yaml:"gradient"`
	Behavior     string          `yaml:"behavior"` // standard | swarm | trail | explosion
	TrailLength  int             `yaml:"trail_length"`
	SwarmTurn    RangeConfig     `yaml:"swarm_turn"`
	Boundary     string          `yaml:"boundary"` // wrap | bounce
	Blend        string          `yaml:"blend"`    // alpha | additive
	Seed         int64           `yaml:"seed"`
	Bindings     []BindingConfig `yaml:"audio_bindings"`
	BeatBurst    *BurstConfig    `yaml:"beat_burst"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:        "cosmic",
		MaxParticles: DefaultMaxParticles,
		Size:         RangeConfig{Min: 1, Max: 4},
		Lifespan:     RangeConfig{Min: 60, Max: 180},
		EmissionRate: DefaultEmission,
		EmissionArea: RectConfig{X: 0, Y: 0, W: DefaultWidth, H: DefaultHeight},
		Friction:     DefaultFriction,
		ColorMode:    "static",
		StaticColor:  ColorConfig{R: 255, G: 255, B: 255, A: 255},
		Behavior:     "standard",
		Boundary:     "wrap",
		Blend:        "alpha",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c ColorConfig) color() particle.Color {
	return particle.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Particle converts the YAML config to an engine config. Numeric sanitizing
// happens inside particle.New; this only resolves enum strings.
func (c *Config) Particle() particle.Config {
	p := particle.Config{
		MaxParticles: c.MaxParticles,
		Size:         particle.Range{Min: c.Size.Min, Max: c.Size.Max},
		Lifespan:     particle.Range{Min: c.Lifespan.Min, Max: c.Lifespan.Max},
		EmissionRate: c.EmissionRate,
		EmissionArea: particle.Rect{X: c.EmissionArea.X, Y: c.EmissionArea.Y, W: c.EmissionArea.W, H: c.EmissionArea.H},
		Gravity:      particle.Vec2{X: c.Gravity.X, Y: c.Gravity.Y},
		Wind:         particle.Vec2{X: c.Wind.X, Y: c.Wind.Y},
		Friction:     c.Friction,
		Turbulence:   c.Turbulence,
		StaticColor:  c.StaticColor.color(),
		Seed:         c.Seed,
		Options: particle.BehaviorOptions{
			TrailLength: c.TrailLength,
			SwarmTurn:   particle.Range{Min: c.SwarmTurn.Min, Max: c.SwarmTurn.Max},
		},
	}

	switch c.ColorMode {
	case "random":
		p.ColorMode = particle.ColorRandom
	case "gradient":
		p.ColorMode = particle.ColorGradient
		p.Gradient = make([]particle.GradientStop, len(c.Gradient))
		for i, s := range c.Gradient {
			p.Gradient[i] = particle.GradientStop{Pos: s.Pos, Color: s.Color.color()}
		}
	default:
		p.ColorMode = particle.ColorStatic
	}

	switch c.Behavior {
	case "swarm":
		p.Behavior = particle.Swarm
	case "trail":
		p.Behavior = particle.Trail
	case "explosion":
		p.Behavior = particle.Explosion
	default:
		p.Behavior = particle.Standard
	}

	if c.Boundary == "bounce" {
		p.Boundary = particle.BoundaryBounce
	}
	if c.Blend == "additive" {
		p.Blend = particle.BlendAdditive
	}
	return p
}

// Reactive converts the audio binding section to mapper inputs. Unknown band
// or target names are skipped.
func (c *Config) Reactive() ([]reactive.Binding, *reactive.BeatBurst) {
	var bindings []reactive.Binding
	for _, b := range c.Bindings {
		var band audio.Band
		switch b.Band {
		case "bass":
			band = audio.Bass
		case "mid":
			band = audio.Mid
		case "high":
			band = audio.High
		default:
			continue
		}

		var target reactive.Target
		switch b.Target {
		case "emission_rate":
			target = reactive.TargetEmissionRate
		case "size_scale":
			target = reactive.TargetSizeScale
		case "gravity_y":
			target = reactive.TargetGravityY
		case "wind_x":
			target = reactive.TargetWindX
		default:
			continue
		}

		bindings = append(bindings, reactive.Binding{Band: band, Target: target, Min: b.Min, Max: b.Max})
	}

	var burst *reactive.BeatBurst
	if c.BeatBurst != nil && c.BeatBurst.Count > 0 {
		burst = &reactive.BeatBurst{
			Count:    c.BeatBurst.Count,
			Speed:    c.BeatBurst.Speed,
			Size:     c.BeatBurst.Size,
			Lifespan: c.BeatBurst.Lifespan,
			Color:    c.BeatBurst.Color.color(),
		}
	}
	return bindings, burst
}
