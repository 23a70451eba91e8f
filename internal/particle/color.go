package particle

// resolveColor picks a particle's color for the configured mode at the given
// life progress.
func (e *Engine) resolveColor(progress float64) Color {
	switch e.cfg.ColorMode {
	case ColorRandom:
		return Color{
			R: e.rng.Float64() * 255,
			G: e.rng.Float64() * 255,
			B: e.rng.Float64() * 255,
			A: e.cfg.StaticColor.A,
		}
	case ColorGradient:
		return gradientAt(e.cfg.Gradient, progress)
	default:
		return e.cfg.StaticColor
	}
}

// gradientAt interpolates the two stops bracketing progress. Exact stop
// positions resolve to the stop color itself, and a zero-width segment is
// treated as segment progress 0 so no NaN can escape.
func gradientAt(stops []GradientStop, progress float64) Color {
	if len(stops) == 0 {
		return defaultColor
	}
	if progress <= stops[0].Pos {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if progress >= last.Pos {
		return last.Color
	}
	for i := 0; i < len(stops)-1; i++ {
		lo, hi := stops[i], stops[i+1]
		if progress < lo.Pos || progress > hi.Pos {
			continue
		}
		span := hi.Pos - lo.Pos
		t := 0.0
		if span > 0 {
			t = (progress - lo.Pos) / span
		}
		return lerpColor(lo.Color, hi.Color, t)
	}
	return last.Color
}

func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
