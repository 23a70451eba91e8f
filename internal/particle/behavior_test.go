package particle

import (
	"math"
	"testing"
)

func TestStandardQuadraticFade(t *testing.T) {
	e := New(testConfig())

	tests := []struct {
		progress float64
		alpha    float64
	}{
		{0, 1},
		{0.5, 0.75},
		{0.9, 1 - 0.81},
		{1, 0},
	}

	for _, tt := range tests {
		p := &Particle{Kind: Standard}
		e.applyBehavior(p, tt.progress, 1)
		if math.Abs(p.Alpha-tt.alpha) > 1e-12 {
			t.Errorf("progress %v: alpha %v, want %v", tt.progress, p.Alpha, tt.alpha)
		}
	}
}

func TestSwarmOrbitsAndFadesLate(t *testing.T) {
	e := New(testConfig())

	p := &Particle{Kind: Swarm, Angle: 0, AngularSpeed: 0.5, Speed: 2}
	e.applyBehavior(p, 0.5, 1)

	if p.Angle != 0.5 {
		t.Errorf("angle %v after one tick, want 0.5", p.Angle)
	}
	if want := math.Cos(0.5) * 2; math.Abs(p.VX-want) > 1e-12 {
		t.Errorf("vx %v, want %v", p.VX, want)
	}
	if want := math.Sin(0.5) * 2; math.Abs(p.VY-want) > 1e-12 {
		t.Errorf("vy %v, want %v", p.VY, want)
	}
	if p.Alpha != 1 {
		t.Errorf("alpha %v at progress 0.5, want 1 (fade starts at 0.8)", p.Alpha)
	}

	e.applyBehavior(p, 0.9, 1)
	if want := (1 - 0.9) * 5; math.Abs(p.Alpha-want) > 1e-12 {
		t.Errorf("alpha %v at progress 0.9, want %v", p.Alpha, want)
	}
}

func TestTrailHistoryIsBounded(t *testing.T) {
	cfg := testConfig()
	cfg.Behavior = Trail
	cfg.Options.TrailLength = 3
	e := New(cfg)

	p := &Particle{Kind: Trail}
	for i := 0; i < 5; i++ {
		p.X = float64(i)
		e.applyBehavior(p, 0.1, 1)
	}

	if len(p.History) != 3 {
		t.Fatalf("history length %d, want 3", len(p.History))
	}
	// Oldest entries dropped: positions 2, 3, 4 remain.
	for i, want := range []float64{2, 3, 4} {
		if p.History[i].X != want {
			t.Errorf("history[%d].X = %v, want %v", i, p.History[i].X, want)
		}
	}
}

func TestTrailAlpha(t *testing.T) {
	e := New(testConfig())

	tests := []struct {
		progress float64
		alpha    float64
	}{
		{0, 1},
		{0.25, 1}, // 2*(1-0.25) = 1.5, clamped
		{0.75, 0.5},
		{1, 0},
	}

	for _, tt := range tests {
		p := &Particle{Kind: Trail}
		e.applyBehavior(p, tt.progress, 1)
		if math.Abs(p.Alpha-tt.alpha) > 1e-12 {
			t.Errorf("progress %v: alpha %v, want %v", tt.progress, p.Alpha, tt.alpha)
		}
	}
}

func TestExplosionDecayAndShrink(t *testing.T) {
	e := New(testConfig())

	p := &Particle{Kind: Explosion, VX0: 4, VY0: -2}

	e.applyBehavior(p, 0.25, 1)
	if p.VX != 2 || p.VY != -1 {
		t.Errorf("velocity (%v, %v) at progress 0.25, want (2, -1)", p.VX, p.VY)
	}

	e.applyBehavior(p, 0.5, 1)
	if p.VX != 0 || p.VY != 0 {
		t.Errorf("velocity (%v, %v) at progress 0.5, want (0, 0)", p.VX, p.VY)
	}
	if p.SizeMul != 0.75 {
		t.Errorf("sizeMultiplier %v at progress 0.5, want 0.75", p.SizeMul)
	}
	if p.Alpha != 0.5 {
		t.Errorf("alpha %v at progress 0.5, want 0.5", p.Alpha)
	}

	// Decay clamps: velocity stays zero past half-life.
	e.applyBehavior(p, 0.8, 1)
	if p.VX != 0 {
		t.Errorf("velocity %v at progress 0.8, want 0", p.VX)
	}
}

func TestExplosionVelocityMonotoneDecay(t *testing.T) {
	e := New(testConfig())

	initial := math.Hypot(4, -2)
	last := initial
	for pr := 0.0; pr <= 1.0; pr += 0.05 {
		p := &Particle{Kind: Explosion, VX0: 4, VY0: -2}
		e.applyBehavior(p, pr, 1)
		mag := math.Hypot(p.VX, p.VY)
		if mag > initial {
			t.Fatalf("progress %v: speed %v exceeds initial %v", pr, mag, initial)
		}
		if mag > last+1e-12 {
			t.Fatalf("progress %v: speed %v increased from %v", pr, mag, last)
		}
		last = mag
	}
}
