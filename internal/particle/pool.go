package particle

// pool is a fixed-capacity arena of particle records. Slots are never
// individually freed; retired indices go back on the free stack and live
// indices are kept in creation order so eviction is always oldest-first.
type pool struct {
	slots []Particle
	free  []int
	live  []int
}

func newPool(capacity int) *pool {
	p := &pool{
		slots: make([]Particle, capacity),
		free:  make([]int, capacity),
		live:  make([]int, 0, capacity),
	}
	// Fill the free stack back to front so slot 0 is handed out first.
	for i := range p.free {
		p.free[i] = capacity - 1 - i
	}
	return p
}

// acquire returns the index of a slot ready for reuse, appending it to the
// live list. When the pool is full the oldest live particle is evicted and
// its slot reused in place.
func (p *pool) acquire() (idx int, evicted bool) {
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = p.live[0]
		copy(p.live, p.live[1:])
		p.live = p.live[:len(p.live)-1]
		evicted = true
	}
	p.live = append(p.live, idx)
	return idx, evicted
}

// release pushes a slot index back on the free stack. The caller is
// responsible for removing it from the live list.
func (p *pool) release(idx int) {
	p.free = append(p.free, idx)
}

func (p *pool) liveCount() int { return len(p.live) }

func (p *pool) clear() {
	p.live = p.live[:0]
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
}
