package stats

import (
	"testing"

	"github.com/pulsefx/pulsefx/internal/particle"
)

func TestCollectorAccumulates(t *testing.T) {
	c := NewCollector(10)

	c.OnTick(particle.TickStats{Tick: 1, Live: 3, Emitted: 3})
	c.OnTick(particle.TickStats{Tick: 2, Live: 5, Emitted: 2})
	c.OnTick(particle.TickStats{Tick: 3, Live: 4, Emitted: 1, Retired: 2, Evicted: 1})

	if c.Ticks != 3 {
		t.Errorf("ticks %d, want 3", c.Ticks)
	}
	if c.TotalEmitted != 6 {
		t.Errorf("emitted %d, want 6", c.TotalEmitted)
	}
	if c.TotalRetired != 2 || c.TotalEvicted != 1 {
		t.Errorf("retired %d evicted %d, want 2 and 1", c.TotalRetired, c.TotalEvicted)
	}
	if c.PeakLive() != 5 {
		t.Errorf("peak %d, want 5", c.PeakLive())
	}
	if c.LastLive() != 4 {
		t.Errorf("last %d, want 4", c.LastLive())
	}
	if got := c.EmissionRate(); got != 2 {
		t.Errorf("emission rate %v, want 2", got)
	}
	if len(c.LiveHistory()) != 3 {
		t.Errorf("history length %d, want 3", len(c.LiveHistory()))
	}
}

func TestCollectorHistoryBounded(t *testing.T) {
	c := NewCollector(2)
	for i := 0; i < 5; i++ {
		c.OnTick(particle.TickStats{Live: i})
	}
	if len(c.LiveHistory()) != 2 {
		t.Errorf("history length %d, want capped at 2", len(c.LiveHistory()))
	}
}

func TestCollectorHistoryKeepsLatestSamples(t *testing.T) {
	c := NewCollector(3)
	for i := 1; i <= 7; i++ {
		c.OnTick(particle.TickStats{Live: i})
	}

	got := c.LiveHistory()
	want := []float64{5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("history %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("history %v, want %v (oldest first)", got, want)
		}
	}
}

func TestLiveHistoryDoesNotAliasRing(t *testing.T) {
	c := NewCollector(4)
	c.OnTick(particle.TickStats{Live: 1})
	c.OnTick(particle.TickStats{Live: 2})

	snap := c.LiveHistory()
	c.OnTick(particle.TickStats{Live: 99})

	if snap[0] != 1 || snap[1] != 2 {
		t.Errorf("snapshot changed after later ticks: %v", snap)
	}
}

func TestCollectorOnEngine(t *testing.T) {
	e := particle.New(particle.Config{
		MaxParticles: 8,
		EmissionRate: 2,
		Lifespan:     particle.Range{Min: 100, Max: 100},
		Friction:     1,
		Seed:         1,
	})
	c := NewCollector(100)
	e.AddObserver(c)

	for i := 0; i < 10; i++ {
		e.Update(1, particle.Bounds{Width: 100, Height: 100})
	}

	if c.Ticks != 10 {
		t.Errorf("ticks %d, want 10", c.Ticks)
	}
	if c.TotalEmitted != 20 {
		t.Errorf("emitted %d at rate 2 over 10 ticks, want 20", c.TotalEmitted)
	}
	if c.LastLive() != e.Live() {
		t.Errorf("last live %d, engine reports %d", c.LastLive(), e.Live())
	}
}

func TestCollectorReset(t *testing.T) {
	c := NewCollector(4)
	c.OnTick(particle.TickStats{Live: 7, Emitted: 7})
	c.Reset()

	if c.Ticks != 0 || c.TotalEmitted != 0 || c.PeakLive() != 0 {
		t.Error("reset left counters populated")
	}
	if len(c.LiveHistory()) != 0 {
		t.Error("reset left history populated")
	}
}
