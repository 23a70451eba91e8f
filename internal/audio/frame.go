// Package audio produces the per-tick feature frames the reactivity layer
// consumes: band energies on a 0-255 scale, an optional spectrum, and a beat
// flag. Consumers treat frames as read-only.
package audio

type Band uint8

const (
	Bass Band = iota
	Mid
	High
)

func (b Band) String() string {
	switch b {
	case Mid:
		return "mid"
	case High:
		return "high"
	default:
		return "bass"
	}
}

// Frame is one sampled snapshot of audio features for the current tick.
type Frame struct {
	Bass, Mid, High float64   // band energies, 0-255
	Spectrum        []float64 // optional per-bin magnitudes, 0-255
	Beat            bool
	TimestampMs     uint64
}

// Energy returns the named band's energy.
func (f Frame) Energy(b Band) float64 {
	switch b {
	case Mid:
		return f.Mid
	case High:
		return f.High
	default:
		return f.Bass
	}
}

// Source yields one frame per tick. ok is false when no frame is available
// this tick (device starting up, dropped buffer); callers must then leave
// previously mapped parameters untouched.
type Source interface {
	Next() (f Frame, ok bool)
}
