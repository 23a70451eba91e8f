// Package stats collects per-tick engine counters through the engine's
// observer hook, for run reports and the live view footer.
package stats

import "github.com/pulsefx/pulsefx/internal/particle"

// Collector accumulates tick stats. It implements particle.Observer and runs
// on the tick path, so it only does counter arithmetic.
type Collector struct {
	Ticks        uint64
	TotalEmitted int
	TotalEvicted int
	TotalRetired int

	hist     []float64 // live-count ring, histIdx is the next write slot
	histIdx  int
	histLen  int
	peakLive int
	lastLive int
}

// NewCollector keeps the most recent historyCap live-count samples
// (0 keeps none).
func NewCollector(historyCap int) *Collector {
	var hist []float64
	if historyCap > 0 {
		hist = make([]float64, historyCap)
	}
	return &Collector{hist: hist}
}

func (c *Collector) OnTick(s particle.TickStats) {
	c.Ticks++
	c.TotalEmitted += s.Emitted
	c.TotalEvicted += s.Evicted
	c.TotalRetired += s.Retired
	c.lastLive = s.Live
	if s.Live > c.peakLive {
		c.peakLive = s.Live
	}
	if len(c.hist) > 0 {
		c.hist[c.histIdx] = float64(s.Live)
		c.histIdx = (c.histIdx + 1) % len(c.hist)
		if c.histLen < len(c.hist) {
			c.histLen++
		}
	}
}

func (c *Collector) PeakLive() int { return c.peakLive }

func (c *Collector) LastLive() int { return c.lastLive }

// LiveHistory returns the most recent live counts, oldest first. The result
// is a copy; it never aliases the ring.
func (c *Collector) LiveHistory() []float64 {
	if c.histLen == 0 {
		return nil
	}
	n := len(c.hist)
	start := (c.histIdx - c.histLen + n) % n
	out := make([]float64, c.histLen)
	for i := range out {
		out[i] = c.hist[(start+i)%n]
	}
	return out
}

// EmissionRate is the average particles emitted per tick.
func (c *Collector) EmissionRate() float64 {
	if c.Ticks == 0 {
		return 0
	}
	return float64(c.TotalEmitted) / float64(c.Ticks)
}

// Reset zeroes every counter but keeps the ring allocation.
func (c *Collector) Reset() {
	*c = Collector{hist: c.hist}
}
