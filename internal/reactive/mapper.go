// Package reactive maps audio feature frames onto live simulation
// parameters. The mapping is stateless per tick — no smoothing or hysteresis;
// callers wanting smoother response low-pass the frames upstream.
package reactive

import (
	"github.com/pulsefx/pulsefx/internal/audio"
	"github.com/pulsefx/pulsefx/internal/particle"
)

// Target names an engine parameter a band can drive.
type Target uint8

const (
	TargetEmissionRate Target = iota
	TargetSizeScale
	TargetGravityY
	TargetWindX
)

func (t Target) String() string {
	switch t {
	case TargetSizeScale:
		return "size_scale"
	case TargetGravityY:
		return "gravity_y"
	case TargetWindX:
		return "wind_x"
	default:
		return "emission_rate"
	}
}

// Binding maps one band onto one target: the parameter becomes
// min + (energy/255)*(max-min), recomputed every tick.
type Binding struct {
	Band   audio.Band
	Target Target
	Min    float64
	Max    float64
}

// BeatBurst describes the one-shot radial burst fired on each beat edge,
// centered on the engine's emission area.
type BeatBurst struct {
	Count    int
	Speed    float64
	Size     float64
	Lifespan float64
	Color    particle.Color
}

// Mapper applies bindings to an engine once per tick. It keeps only the
// previous beat flag, so a burst fires exactly once per false-to-true
// transition and never re-fires while the flag stays up.
type Mapper struct {
	bindings []Binding
	burst    *BeatBurst
	lastBeat bool
}

func NewMapper(bindings []Binding, burst *BeatBurst) *Mapper {
	return &Mapper{bindings: bindings, burst: burst}
}

// Apply maps the frame onto the engine. A nil frame (dropped tick) leaves
// every previously mapped parameter unchanged.
func (m *Mapper) Apply(e *particle.Engine, f *audio.Frame) {
	if f == nil {
		return
	}

	for _, b := range m.bindings {
		v := b.Min + f.Energy(b.Band)/255*(b.Max-b.Min)
		switch b.Target {
		case TargetEmissionRate:
			e.SetEmissionRate(v)
		case TargetSizeScale:
			e.SetSizeScale(v)
		case TargetGravityY:
			e.SetGravityY(v)
		case TargetWindX:
			e.SetWindX(v)
		}
	}

	if m.burst != nil && f.Beat && !m.lastBeat {
		cx, cy := e.EmissionArea().Center()
		e.Explode(cx, cy, m.burst.Count, m.burst.Speed, m.burst.Size, m.burst.Lifespan, m.burst.Color)
	}
	m.lastBeat = f.Beat
}
