package particle

import (
	"math"
	"time"
)

// Vec2 is a 2D vector in simulation units (pixels for position, pixels/tick
// for velocity and forces).
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Bounds is the simulation area. Positions live in [0,Width)x[0,Height)
// under the wrap policy and [0,Width]x[0,Height] under bounce.
type Bounds struct {
	Width, Height float64
}

// Color is an RGBA color with channels on the 0-255 scale. Channels are
// floats so gradient interpolation carries no quantization drift.
type Color struct {
	R, G, B, A float64
}

// Range is a closed interval used for uniform sampling.
type Range struct {
	Min, Max float64
}

type BehaviorKind uint8

const (
	Standard BehaviorKind = iota
	Swarm
	Trail
	Explosion
)

func (k BehaviorKind) String() string {
	switch k {
	case Swarm:
		return "swarm"
	case Trail:
		return "trail"
	case Explosion:
		return "explosion"
	default:
		return "standard"
	}
}

type ColorMode uint8

const (
	ColorStatic ColorMode = iota
	ColorRandom
	ColorGradient
)

type BoundaryPolicy uint8

const (
	BoundaryWrap BoundaryPolicy = iota
	BoundaryBounce
)

// BlendMode is a hint for render adapters; the engine never reads it.
type BlendMode uint8

const (
	BlendAlpha BlendMode = iota
	BlendAdditive
)

// GradientStop is one stop of a life-progress gradient. Stops must be sorted
// ascending by Pos in [0,1].
type GradientStop struct {
	Pos   float64
	Color Color
}

// BehaviorOptions carries the per-kind tuning knobs.
type BehaviorOptions struct {
	// TrailLength bounds the position history kept by trail particles.
	TrailLength int
	// SwarmTurn is the range angular speed (radians/tick) is sampled from
	// when a swarm particle spawns.
	SwarmTurn Range
}

// Particle is one pooled simulation record. Records are reused in place; no
// field holds state that survives a recycle except the History backing array,
// which keeps its capacity.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Life    float64 // ticks remaining
	MaxLife float64
	Color   Color
	Alpha   float64 // behavior-driven fade multiplier, 1 at birth
	SizeMul float64 // behavior-driven size multiplier, 1 at birth
	Kind    BehaviorKind

	// Swarm scratch.
	Angle        float64
	AngularSpeed float64
	Speed        float64

	// Explosion scratch: velocity at birth, decayed toward zero over life.
	VX0, VY0 float64

	// Trail scratch: previous positions, oldest first.
	History []Vec2
}

// Progress is the particle's normalized age in [0,1].
func (p *Particle) Progress() float64 {
	if p.MaxLife <= 0 {
		return 1
	}
	pr := 1 - p.Life/p.MaxLife
	if pr < 0 {
		return 0
	}
	if pr > 1 {
		return 1
	}
	return pr
}

// Config describes one engine instance. Invalid numeric fields are replaced
// with safe defaults at construction; a malformed config degrades visuals,
// it never fails.
type Config struct {
	MaxParticles int
	Size         Range
	Lifespan     Range // in ticks
	EmissionRate float64
	EmissionArea Rect
	Gravity      Vec2
	Wind         Vec2
	Friction     float64 // velocity retained per tick, (0,1]
	Turbulence   float64
	ColorMode    ColorMode
	StaticColor  Color
	Gradient     []GradientStop
	Behavior     BehaviorKind
	Options      BehaviorOptions
	Boundary     BoundaryPolicy
	Blend        BlendMode
	Seed         int64 // 0 means time-seeded
}

// Defaults used when a config field is missing or not a finite number.
const (
	DefaultMaxParticles = 200
	DefaultTrailLength  = 10
	Restitution         = 0.7
)

var (
	defaultSize     = Range{1, 4}
	defaultLifespan = Range{60, 180}
	defaultColor    = Color{R: 255, G: 255, B: 255, A: 255}
)

func saneFloat(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

func saneRange(r, def Range) Range {
	r.Min = saneFloat(r.Min, def.Min)
	r.Max = saneFloat(r.Max, def.Max)
	if r.Min < 0 {
		r.Min = def.Min
	}
	if r.Max < 0 {
		r.Max = def.Max
	}
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

func saneVec(v Vec2) Vec2 {
	return Vec2{X: saneFloat(v.X, 0), Y: saneFloat(v.Y, 0)}
}

// sanitized returns the config with every invalid numeric field replaced by
// its documented default.
func (c Config) sanitized() Config {
	if c.MaxParticles <= 0 {
		c.MaxParticles = DefaultMaxParticles
	}
	c.Size = saneRange(c.Size, defaultSize)
	c.Lifespan = saneRange(c.Lifespan, defaultLifespan)
	if c.Lifespan.Max <= 0 {
		c.Lifespan = defaultLifespan
	}
	c.EmissionRate = saneFloat(c.EmissionRate, 0)
	if c.EmissionRate < 0 {
		c.EmissionRate = 0
	}
	c.EmissionArea.X = saneFloat(c.EmissionArea.X, 0)
	c.EmissionArea.Y = saneFloat(c.EmissionArea.Y, 0)
	c.EmissionArea.W = saneFloat(c.EmissionArea.W, 0)
	c.EmissionArea.H = saneFloat(c.EmissionArea.H, 0)
	if c.EmissionArea.W < 0 {
		c.EmissionArea.W = 0
	}
	if c.EmissionArea.H < 0 {
		c.EmissionArea.H = 0
	}
	c.Gravity = saneVec(c.Gravity)
	c.Wind = saneVec(c.Wind)
	c.Friction = saneFloat(c.Friction, 1)
	if c.Friction <= 0 || c.Friction > 1 {
		c.Friction = 1
	}
	c.Turbulence = saneFloat(c.Turbulence, 0)
	if c.Turbulence < 0 {
		c.Turbulence = 0
	}
	if c.ColorMode == ColorGradient && len(c.Gradient) < 2 {
		// Degenerate gradient: fall back to a static color.
		c.ColorMode = ColorStatic
		if len(c.Gradient) == 1 {
			c.StaticColor = c.Gradient[0].Color
		} else if c.StaticColor == (Color{}) {
			c.StaticColor = defaultColor
		}
	}
	if c.ColorMode == ColorStatic && c.StaticColor == (Color{}) {
		c.StaticColor = defaultColor
	}
	if c.ColorMode == ColorRandom && c.StaticColor.A <= 0 {
		c.StaticColor.A = 255
	}
	if c.Options.TrailLength <= 0 {
		c.Options.TrailLength = DefaultTrailLength
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}
