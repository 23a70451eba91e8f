package reactive

import (
	"testing"

	"github.com/pulsefx/pulsefx/internal/audio"
	"github.com/pulsefx/pulsefx/internal/particle"
)

func testEngine() *particle.Engine {
	return particle.New(particle.Config{
		MaxParticles: 32,
		EmissionArea: particle.Rect{X: 0, Y: 0, W: 100, H: 50},
		Friction:     1,
		Seed:         1,
	})
}

func TestBindingFormula(t *testing.T) {
	tests := []struct {
		name   string
		energy float64
		min    float64
		max    float64
		want   float64
	}{
		{"zero energy maps to min", 0, 1, 9, 1},
		{"full energy maps to max", 255, 1, 9, 9},
		{"midpoint", 127.5, 0, 10, 5},
		{"inverted range", 255, 10, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEngine()
			m := NewMapper([]Binding{
				{Band: audio.Bass, Target: TargetEmissionRate, Min: tt.min, Max: tt.max},
			}, nil)

			m.Apply(e, &audio.Frame{Bass: tt.energy})
			if got := e.EmissionRate(); got != tt.want {
				t.Errorf("emission rate %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllTargetsMapped(t *testing.T) {
	e := testEngine()
	m := NewMapper([]Binding{
		{Band: audio.Bass, Target: TargetEmissionRate, Min: 0, Max: 10},
		{Band: audio.Mid, Target: TargetSizeScale, Min: 1, Max: 3},
		{Band: audio.Bass, Target: TargetGravityY, Min: 0, Max: 0.5},
		{Band: audio.High, Target: TargetWindX, Min: -1, Max: 1},
	}, nil)

	m.Apply(e, &audio.Frame{Bass: 255, Mid: 127.5, High: 0})

	if got := e.EmissionRate(); got != 10 {
		t.Errorf("emission rate %v, want 10", got)
	}
	if got := e.SizeScale(); got != 2 {
		t.Errorf("size scale %v, want 2", got)
	}
	if got := e.Config().Gravity.Y; got != 0.5 {
		t.Errorf("gravity.y %v, want 0.5", got)
	}
	if got := e.Config().Wind.X; got != -1 {
		t.Errorf("wind.x %v, want -1", got)
	}
}

func TestNilFrameLeavesParametersUnchanged(t *testing.T) {
	e := testEngine()
	m := NewMapper([]Binding{
		{Band: audio.Bass, Target: TargetEmissionRate, Min: 0, Max: 10},
	}, nil)

	m.Apply(e, &audio.Frame{Bass: 204}) // rate = 8
	m.Apply(e, nil)

	if got := e.EmissionRate(); got != 8 {
		t.Errorf("emission rate %v after dropped frame, want 8 (unchanged)", got)
	}
}

func TestBeatBurstFiresOncePerEdge(t *testing.T) {
	e := testEngine()
	m := NewMapper(nil, &BeatBurst{Count: 5, Speed: 3, Size: 2, Lifespan: 20})

	m.Apply(e, &audio.Frame{Beat: true})
	if e.Live() != 5 {
		t.Fatalf("live %d after beat edge, want 5", e.Live())
	}

	// Sustained flag across following ticks must not re-fire.
	m.Apply(e, &audio.Frame{Beat: true})
	m.Apply(e, &audio.Frame{Beat: true})
	if e.Live() != 5 {
		t.Errorf("live %d while beat held, want 5 (no re-fire)", e.Live())
	}

	// Flag drops, next rise fires again.
	m.Apply(e, &audio.Frame{Beat: false})
	m.Apply(e, &audio.Frame{Beat: true})
	if e.Live() != 10 {
		t.Errorf("live %d after second edge, want 10", e.Live())
	}
}

func TestBeatBurstCenteredOnEmissionArea(t *testing.T) {
	e := testEngine()
	m := NewMapper(nil, &BeatBurst{Count: 3, Speed: 1, Size: 1, Lifespan: 10})

	m.Apply(e, &audio.Frame{Beat: true})

	e.ForEach(func(p *particle.Particle) {
		if p.X != 50 || p.Y != 25 {
			t.Errorf("burst particle at (%v, %v), want emission-area center (50, 25)", p.X, p.Y)
		}
	})
}

func TestDroppedFrameDoesNotResetBeatEdge(t *testing.T) {
	e := testEngine()
	m := NewMapper(nil, &BeatBurst{Count: 2, Speed: 1, Size: 1, Lifespan: 10})

	m.Apply(e, &audio.Frame{Beat: true})
	m.Apply(e, nil) // dropped tick keeps edge state
	m.Apply(e, &audio.Frame{Beat: true})

	if e.Live() != 2 {
		t.Errorf("live %d, want 2 (sustained beat across a dropped frame must not re-fire)", e.Live())
	}
}
