package audio

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

const (
	DefaultSampleRate = 44100
	DefaultWindow     = 1024

	// Band edges in Hz.
	bassEdge = 250.0
	midEdge  = 2000.0
	highEdge = 8000.0
)

// Analyzer turns raw sample windows into feature frames: Hann window, FFT,
// log-weighted band bucketing with automatic gain control, and beat detection
// from bass-energy flux against a rolling average.
type Analyzer struct {
	// Sensitivity is the factor by which bass energy must exceed its rolling
	// average to register a beat.
	Sensitivity float64
	// Refractory is the minimum number of analyzed windows between beats,
	// kept as an explicit countdown so behavior is replayable.
	Refractory int

	sampleRate float64
	window     []float64
	windowed   []float64
	spectrum   []float64

	maxLevel float64
	history  []float64
	histIdx  int
	histLen  int
	cooldown int
}

// NewAnalyzer builds an analyzer for the given sample rate and window size.
// Window size should be a power of two.
func NewAnalyzer(sampleRate float64, windowSize int) *Analyzer {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if windowSize <= 0 {
		windowSize = DefaultWindow
	}
	hann := make([]float64, windowSize)
	for i := range hann {
		hann[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(windowSize-1)))
	}
	return &Analyzer{
		Sensitivity: 1.4,
		Refractory:  8,
		sampleRate:  sampleRate,
		window:      hann,
		windowed:    make([]float64, windowSize),
		spectrum:    make([]float64, windowSize/2),
		maxLevel:    0.1,
		history:     make([]float64, 43), // ~1s of 1024-sample windows at 44.1kHz
	}
}

// Analyze computes a feature frame from one window of mono samples. Short
// input is zero-padded; extra samples are ignored.
func (a *Analyzer) Analyze(samples []float64, timestampMs uint64) Frame {
	n := len(a.windowed)
	for i := 0; i < n; i++ {
		if i < len(samples) {
			a.windowed[i] = samples[i] * a.window[i]
		} else {
			a.windowed[i] = 0
		}
	}

	bins := fft.FFTReal(a.windowed)
	half := n / 2
	binHz := a.sampleRate / float64(n)

	var bassSum, midSum, highSum float64
	var bassN, midN, highN int
	for i := 1; i < half; i++ {
		mag := cmplx.Abs(bins[i]) / float64(n)
		a.spectrum[i] = mag
		switch f := float64(i) * binHz; {
		case f < bassEdge:
			bassSum += mag
			bassN++
		case f < midEdge:
			midSum += mag
			midN++
		case f < highEdge:
			highSum += mag
			highN++
		}
	}

	bass := avg(bassSum, bassN)
	mid := avg(midSum, midN)
	high := avg(highSum, highN)

	// AGC: track the recent peak with a slow decay so quiet sources still
	// span the 0-255 scale, capping gain so silence stays silent.
	peak := math.Max(bass, math.Max(mid, high))
	if peak > a.maxLevel {
		a.maxLevel = peak
	} else {
		a.maxLevel *= 0.999
	}
	gain := 1.0
	if a.maxLevel > 1e-6 {
		gain = 1.0 / a.maxLevel
	}
	if gain > 50 {
		gain = 50
	}

	for i := 1; i < half; i++ {
		a.spectrum[i] = scale255(a.spectrum[i] * gain)
	}

	frame := Frame{
		Bass: scale255(bass * gain),
		Mid:  scale255(mid * gain),
		High: scale255(high * gain),
		// Copied: the capture callback reuses a.spectrum on its own thread
		// after the frame has been handed out.
		Spectrum:    append([]float64(nil), a.spectrum...),
		TimestampMs: timestampMs,
	}
	frame.Beat = a.detectBeat(frame.Bass)
	return frame
}

// detectBeat flags a beat when bass energy spikes above its rolling average,
// with a refractory countdown to keep one beat from firing across several
// windows.
func (a *Analyzer) detectBeat(bass float64) bool {
	var sum float64
	n := a.histLen
	for i := 0; i < n; i++ {
		sum += a.history[i]
	}

	a.history[a.histIdx] = bass
	a.histIdx = (a.histIdx + 1) % len(a.history)
	if a.histLen < len(a.history) {
		a.histLen++
	}

	if a.cooldown > 0 {
		a.cooldown--
		return false
	}
	if n < 8 {
		return false // not enough history yet
	}
	mean := sum / float64(n)
	if bass > 30 && bass > mean*a.Sensitivity {
		a.cooldown = a.Refractory
		return true
	}
	return false
}

func avg(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func scale255(v float64) float64 {
	v *= 255
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return v
}
