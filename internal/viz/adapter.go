package viz

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pulsefx/pulsefx/internal/particle"
)

// TerminalAdapter projects world coordinates onto a braille canvas.
// It implements particle.RenderAdapter.
type TerminalAdapter struct {
	canvas         *Canvas
	worldW, worldH float64
}

func NewTerminalAdapter(c *Canvas, worldW, worldH float64) *TerminalAdapter {
	if worldW <= 0 {
		worldW = 1
	}
	if worldH <= 0 {
		worldH = 1
	}
	return &TerminalAdapter{canvas: c, worldW: worldW, worldH: worldH}
}

// Resize swaps the backing canvas, keeping the world mapping.
func (a *TerminalAdapter) Resize(c *Canvas) {
	a.canvas = c
}

// Draw renders one particle as a filled disc, with its trail drawn as a
// faded polyline when history is present.
func (a *TerminalAdapter) Draw(p *particle.Particle, size float64) {
	x, y := a.project(p.X, p.Y)

	if len(p.History) > 1 {
		a.drawTrail(p)
	}

	// Disc radius in sub-pixels, derived from the horizontal scale.
	r := int(math.Round(size * float64(a.canvas.SubWidth()) / a.worldW / 2))
	a.canvas.FillCircle(x, y, r, blendHex(p.Color, p.Alpha))
}

func (a *TerminalAdapter) drawTrail(p *particle.Particle) {
	n := len(p.History)
	for i := 1; i < n; i++ {
		x0, y0 := a.project(p.History[i-1].X, p.History[i-1].Y)
		x1, y1 := a.project(p.History[i].X, p.History[i].Y)
		// Older segments fade harder.
		fade := p.Alpha * float64(i) / float64(n)
		a.canvas.DrawLine(x0, y0, x1, y1, blendHex(p.Color, fade))
	}
}

func (a *TerminalAdapter) project(wx, wy float64) (int, int) {
	x := int(wx / a.worldW * float64(a.canvas.SubWidth()))
	y := int(wy / a.worldH * float64(a.canvas.SubHeight()))
	return x, y
}

// blendHex folds behavior alpha and the color's own alpha into a single
// opacity, then blends toward black for the terminal's dark background.
func blendHex(c particle.Color, alpha float64) string {
	opacity := alpha * c.A / 255
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	fg := colorful.Color{R: clamp01(c.R / 255), G: clamp01(c.G / 255), B: clamp01(c.B / 255)}
	black := colorful.Color{}
	return black.BlendRgb(fg, opacity).Hex()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
