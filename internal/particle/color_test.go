package particle

import "testing"

var (
	red  = Color{R: 255, A: 255}
	blue = Color{B: 255, A: 255}
)

func TestGradientMidpointIsExact(t *testing.T) {
	stops := []GradientStop{{0, red}, {1, blue}}

	got := gradientAt(stops, 0.5)
	want := Color{R: 127.5, G: 0, B: 127.5, A: 255}
	if got != want {
		t.Errorf("midpoint %+v, want %+v", got, want)
	}
}

func TestGradientEndpointsResolveExactly(t *testing.T) {
	stops := []GradientStop{{0, red}, {0.5, Color{G: 255, A: 255}}, {1, blue}}

	if got := gradientAt(stops, 0); got != red {
		t.Errorf("progress 0: %+v, want first stop %+v", got, red)
	}
	if got := gradientAt(stops, 1); got != blue {
		t.Errorf("progress 1: %+v, want last stop %+v", got, blue)
	}
	if got := gradientAt(stops, 0.5); (got != Color{G: 255, A: 255}) {
		t.Errorf("progress at interior stop: %+v, want exact stop color", got)
	}
}

func TestGradientBracketsInteriorStops(t *testing.T) {
	stops := []GradientStop{{0, red}, {0.5, Color{G: 255, A: 255}}, {1, blue}}

	got := gradientAt(stops, 0.25)
	want := Color{R: 127.5, G: 127.5, B: 0, A: 255}
	if got != want {
		t.Errorf("progress 0.25: %+v, want %+v", got, want)
	}
}

func TestGradientZeroWidthSegment(t *testing.T) {
	stops := []GradientStop{{0, red}, {0.5, red}, {0.5, blue}, {1, blue}}

	// Equal stop positions must not divide by zero; segment progress is 0.
	got := gradientAt(stops, 0.5)
	if got != red && got != blue {
		t.Errorf("progress at zero-width segment: %+v, want a stop color", got)
	}
}

func TestGradientOutOfRangeProgressClamps(t *testing.T) {
	stops := []GradientStop{{0.2, red}, {0.8, blue}}

	if got := gradientAt(stops, 0); got != red {
		t.Errorf("progress below first stop: %+v, want %+v", got, red)
	}
	if got := gradientAt(stops, 1); got != blue {
		t.Errorf("progress above last stop: %+v, want %+v", got, blue)
	}
}

func TestSingleStopGradientFallsBackToStatic(t *testing.T) {
	cfg := testConfig()
	cfg.ColorMode = ColorGradient
	cfg.Gradient = []GradientStop{{0, red}}
	e := New(cfg)

	if got := e.Config().ColorMode; got != ColorStatic {
		t.Fatalf("color mode %v, want fallback to static", got)
	}
	p := e.AddParticle()
	if p.Color != red {
		t.Errorf("particle color %+v, want first stop %+v", p.Color, red)
	}
}

func TestEmptyGradientFallsBackToNeutral(t *testing.T) {
	cfg := testConfig()
	cfg.ColorMode = ColorGradient
	e := New(cfg)

	p := e.AddParticle()
	if p.Color != defaultColor {
		t.Errorf("particle color %+v, want neutral default %+v", p.Color, defaultColor)
	}
}

func TestRandomColorKeepsConfiguredAlpha(t *testing.T) {
	cfg := testConfig()
	cfg.ColorMode = ColorRandom
	cfg.StaticColor = Color{A: 128}
	e := New(cfg)

	for i := 0; i < 20; i++ {
		p := e.AddParticle()
		if p.Color.A != 128 {
			t.Fatalf("alpha %v, want configured 128", p.Color.A)
		}
		for _, ch := range []float64{p.Color.R, p.Color.G, p.Color.B} {
			if ch < 0 || ch > 255 {
				t.Fatalf("channel %v outside 0-255", ch)
			}
		}
	}
}

func TestGradientParticleRecolorsOverLife(t *testing.T) {
	cfg := testConfig()
	cfg.ColorMode = ColorGradient
	cfg.Gradient = []GradientStop{{0, red}, {1, blue}}
	e := New(cfg)

	p := e.AddParticle(WithLifespan(10), WithVelocity(0, 0))
	if p.Color != red {
		t.Fatalf("birth color %+v, want %+v", p.Color, red)
	}

	for i := 0; i < 5; i++ {
		e.Update(1, Bounds{100, 100})
	}
	want := Color{R: 127.5, B: 127.5, A: 255}
	if p.Color != want {
		t.Errorf("color at progress 0.5: %+v, want %+v", p.Color, want)
	}
}
