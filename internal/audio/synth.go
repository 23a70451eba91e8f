package audio

import "math"

// Synth is a deterministic frame generator: slow LFOs per band and a beat
// every fixed number of ticks. It stands in for a capture device in the demo
// and in tests, and replays identically for a given tick count.
type Synth struct {
	BeatEvery uint64

	tick uint64
}

// NewSynth returns a synthetic source that beats every beatEvery ticks
// (0 disables beats).
func NewSynth(beatEvery int) *Synth {
	if beatEvery < 0 {
		beatEvery = 0
	}
	return &Synth{BeatEvery: uint64(beatEvery)}
}

// Next advances one tick and always yields a frame.
func (s *Synth) Next() (Frame, bool) {
	t := float64(s.tick)
	f := Frame{
		Bass:        127 + 100*math.Sin(t*0.070),
		Mid:         127 + 80*math.Sin(t*0.043+1.3),
		High:        110 + 70*math.Sin(t*0.110+2.6),
		Beat:        s.BeatEvery > 0 && s.tick%s.BeatEvery == 0,
		TimestampMs: s.tick * 16,
	}
	s.tick++
	return f, true
}

// Reset rewinds the generator to tick zero.
func (s *Synth) Reset() { s.tick = 0 }
