package particle

import (
	"math"
	"math/rand"
)

// RenderAdapter consumes the live particle set. size is the effective drawn
// size: the particle's own size times its behavior multiplier times the
// engine-level (audio-driven) scale. Trail adapters read p.History.
type RenderAdapter interface {
	Draw(p *Particle, size float64)
}

// TickStats is the per-update snapshot handed to observers.
type TickStats struct {
	Tick    uint64
	Live    int
	Emitted int
	Evicted int
	Retired int
}

// Observer is notified after each Update. Callbacks run synchronously on the
// tick path and must not block.
type Observer interface {
	OnTick(s TickStats)
}

// Engine owns one particle pool and advances it one tick at a time. It is
// single-threaded: one Update per render tick, no internal goroutines, and
// nothing outside the engine mutates particle records.
type Engine struct {
	cfg       Config
	pool      *pool
	rng       *rand.Rand
	sizeScale float64
	tick      uint64
	observers []Observer
}

// New builds an engine from cfg. Invalid numeric fields are replaced with
// safe defaults; construction never fails.
func New(cfg Config) *Engine {
	cfg = cfg.sanitized()
	return &Engine{
		cfg:       cfg,
		pool:      newPool(cfg.MaxParticles),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		sizeScale: 1,
	}
}

// Override mutates a freshly initialized particle before its behavior scratch
// fields are finalized.
type Override func(*Particle)

func WithPosition(x, y float64) Override {
	return func(p *Particle) { p.X, p.Y = x, y }
}

func WithVelocity(vx, vy float64) Override {
	return func(p *Particle) { p.VX, p.VY = vx, vy }
}

func WithSize(s float64) Override {
	return func(p *Particle) { p.Size = s }
}

func WithLifespan(ticks float64) Override {
	return func(p *Particle) { p.Life = ticks }
}

func WithColor(c Color) Override {
	return func(p *Particle) { p.Color = c }
}

func WithKind(k BehaviorKind) Override {
	return func(p *Particle) { p.Kind = k }
}

// AddParticle creates or recycles a particle, applying overrides over the
// configured defaults. It always succeeds: a full pool evicts its oldest
// particle and reuses the record in place.
func (e *Engine) AddParticle(overrides ...Override) *Particle {
	p, _ := e.spawn(overrides...)
	return p
}

func (e *Engine) spawn(overrides ...Override) (*Particle, bool) {
	idx, evicted := e.pool.acquire()
	p := &e.pool.slots[idx]

	history := p.History // keep the slot's trail allocation across recycles
	*p = Particle{
		X:       e.cfg.EmissionArea.X + e.rng.Float64()*e.cfg.EmissionArea.W,
		Y:       e.cfg.EmissionArea.Y + e.rng.Float64()*e.cfg.EmissionArea.H,
		VX:      e.rng.Float64()*2 - 1,
		VY:      e.rng.Float64()*2 - 1,
		Size:    sample(e.rng, e.cfg.Size),
		Life:    sample(e.rng, e.cfg.Lifespan),
		Alpha:   1,
		SizeMul: 1,
		Kind:    e.cfg.Behavior,
		History: history[:0],
	}
	p.Color = e.resolveColor(0)

	for _, o := range overrides {
		o(p)
	}

	// Finalize derived state after overrides so overridden velocity and life
	// feed the scratch fields.
	if p.Life < 0 || math.IsNaN(p.Life) || math.IsInf(p.Life, 0) {
		p.Life = sample(e.rng, e.cfg.Lifespan)
	}
	p.MaxLife = p.Life
	p.VX0, p.VY0 = p.VX, p.VY
	if p.Kind == Swarm {
		p.Angle = e.rng.Float64() * 2 * math.Pi
		p.AngularSpeed = sampleSigned(e.rng, e.cfg.Options.SwarmTurn)
		p.Speed = math.Hypot(p.VX, p.VY)
	}
	return p, evicted
}

// Update advances the simulation one step: continuous emission first, then
// the per-particle tick, then observer notification. It allocates nothing
// after warm-up and never blocks.
func (e *Engine) Update(dt float64, bounds Bounds) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	e.tick++
	stats := TickStats{Tick: e.tick}

	stats.Emitted, stats.Evicted = e.emit()

	live := e.pool.live
	w := 0
	for i := 0; i < len(live); i++ {
		idx := live[i]
		p := &e.pool.slots[idx]

		p.Life -= dt
		if p.Life <= 0 {
			e.pool.release(idx)
			stats.Retired++
			continue
		}

		progress := 1 - p.Life/p.MaxLife
		if e.cfg.ColorMode == ColorGradient {
			p.Color = gradientAt(e.cfg.Gradient, progress)
		}

		e.applyBehavior(p, progress, dt)

		p.VX += (e.cfg.Wind.X + e.cfg.Gravity.X) * dt
		p.VY += (e.cfg.Gravity.Y + e.cfg.Wind.Y) * dt
		p.VX *= e.cfg.Friction
		p.VY *= e.cfg.Friction
		if e.cfg.Turbulence > 0 {
			p.VX += (e.rng.Float64()*2 - 1) * e.cfg.Turbulence * dt
			p.VY += (e.rng.Float64()*2 - 1) * e.cfg.Turbulence * dt
		}

		p.X += p.VX
		p.Y += p.VY

		e.applyBoundary(p, bounds)

		live[w] = idx
		w++
	}
	e.pool.live = live[:w]

	stats.Live = len(e.pool.live)
	for _, o := range e.observers {
		o.OnTick(stats)
	}
}

// emit performs the continuous emission step: floor(rate) particles plus one
// more with probability rate-floor(rate), so the average tracks fractional
// rates exactly.
func (e *Engine) emit() (emitted, evicted int) {
	rate := e.cfg.EmissionRate
	n := int(rate)
	if e.rng.Float64() < rate-float64(n) {
		n++
	}
	for i := 0; i < n; i++ {
		if _, ev := e.spawn(); ev {
			evicted++
		}
		emitted++
	}
	return emitted, evicted
}

func (e *Engine) applyBoundary(p *Particle, b Bounds) {
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	switch e.cfg.Boundary {
	case BoundaryBounce:
		if p.X < 0 {
			p.X = 0
			p.VX = -p.VX * Restitution
		} else if p.X > b.Width {
			p.X = b.Width
			p.VX = -p.VX * Restitution
		}
		if p.Y < 0 {
			p.Y = 0
			p.VY = -p.VY * Restitution
		} else if p.Y > b.Height {
			p.Y = b.Height
			p.VY = -p.VY * Restitution
		}
	default: // wrap
		if p.X < 0 || p.X >= b.Width {
			p.X = math.Mod(p.X, b.Width)
			if p.X < 0 {
				p.X += b.Width
			}
		}
		if p.Y < 0 || p.Y >= b.Height {
			p.Y = math.Mod(p.Y, b.Height)
			if p.Y < 0 {
				p.Y += b.Height
			}
		}
	}
}

// Explode spawns count particles radially from (x, y) with speed sampled in
// [0, speed), independent of continuous emission. Used for beat and collision
// reactions.
func (e *Engine) Explode(x, y float64, count int, speed, size, lifespan float64, c Color) {
	for i := 0; i < count; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		s := e.rng.Float64() * speed
		e.spawn(
			WithKind(Explosion),
			WithPosition(x, y),
			WithVelocity(math.Cos(angle)*s, math.Sin(angle)*s),
			WithSize(size),
			WithLifespan(lifespan),
			WithColor(c),
		)
	}
}

// Render hands every live particle to the adapter. The engine holds no
// rendering state beyond the audio-driven size scale.
func (e *Engine) Render(a RenderAdapter) {
	for _, idx := range e.pool.live {
		p := &e.pool.slots[idx]
		a.Draw(p, p.Size*p.SizeMul*e.sizeScale)
	}
}

// ForEach visits live particles oldest-first. Intended for tests and stats.
func (e *Engine) ForEach(fn func(p *Particle)) {
	for _, idx := range e.pool.live {
		fn(&e.pool.slots[idx])
	}
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

func (e *Engine) Live() int { return e.pool.liveCount() }

func (e *Engine) Config() Config { return e.cfg }

// SetEmissionArea reconfigures the spawn rectangle in place; takes effect on
// the next Update.
func (e *Engine) SetEmissionArea(r Rect) {
	r.X = saneFloat(r.X, e.cfg.EmissionArea.X)
	r.Y = saneFloat(r.Y, e.cfg.EmissionArea.Y)
	r.W = saneFloat(r.W, e.cfg.EmissionArea.W)
	r.H = saneFloat(r.H, e.cfg.EmissionArea.H)
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	e.cfg.EmissionArea = r
}

func (e *Engine) EmissionArea() Rect { return e.cfg.EmissionArea }

// SetBehavior switches the behavior applied to newly spawned particles;
// already-live particles keep their kind until retirement.
func (e *Engine) SetBehavior(kind BehaviorKind, opts BehaviorOptions) {
	if opts.TrailLength <= 0 {
		opts.TrailLength = DefaultTrailLength
	}
	e.cfg.Behavior = kind
	e.cfg.Options = opts
}

func (e *Engine) SetEmissionRate(rate float64) {
	rate = saneFloat(rate, e.cfg.EmissionRate)
	if rate < 0 {
		rate = 0
	}
	e.cfg.EmissionRate = rate
}

func (e *Engine) EmissionRate() float64 { return e.cfg.EmissionRate }

func (e *Engine) SetGravityY(g float64) { e.cfg.Gravity.Y = saneFloat(g, e.cfg.Gravity.Y) }

func (e *Engine) SetWindX(w float64) { e.cfg.Wind.X = saneFloat(w, e.cfg.Wind.X) }

// SetSizeScale sets the render-time size multiplier driven by audio. It is
// never baked into particle sizes.
func (e *Engine) SetSizeScale(s float64) {
	s = saneFloat(s, 1)
	if s < 0 {
		s = 0
	}
	e.sizeScale = s
}

func (e *Engine) SizeScale() float64 { return e.sizeScale }

// Clear retires every live particle. Disposing an engine is structural: drop
// the reference and the pool goes with it.
func (e *Engine) Clear() { e.pool.clear() }

func sample(rng *rand.Rand, r Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// sampleSigned draws from r but treats a zero range as a symmetric default
// turn rate so swarm particles always curve.
func sampleSigned(rng *rand.Rand, r Range) float64 {
	if r.Min == 0 && r.Max == 0 {
		r = Range{Min: -0.2, Max: 0.2}
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
