package particle

import "math"

// applyBehavior runs the per-tick rule for the particle's kind. The switch
// covers every BehaviorKind.
func (e *Engine) applyBehavior(p *Particle, progress, dt float64) {
	switch p.Kind {
	case Standard:
		// Quadratic fade-out over the whole life.
		p.Alpha = 1 - progress*progress

	case Swarm:
		p.Angle += p.AngularSpeed * dt
		p.VX = math.Cos(p.Angle) * p.Speed
		p.VY = math.Sin(p.Angle) * p.Speed
		if progress > 0.8 {
			p.Alpha = (1 - progress) * 5
		} else {
			p.Alpha = 1
		}

	case Trail:
		pushHistory(p, Vec2{X: p.X, Y: p.Y}, e.cfg.Options.TrailLength)
		p.Alpha = math.Min(1, 2*(1-progress))

	case Explosion:
		decay := progress * 2
		if decay > 1 {
			decay = 1
		}
		p.VX = p.VX0 * (1 - decay)
		p.VY = p.VY0 * (1 - decay)
		p.Alpha = 1 - progress
		p.SizeMul = 1 - progress*progress
	}
}

// pushHistory appends a position to the bounded trail, dropping the oldest
// entry once the configured length is reached. The backing array is allocated
// once per pool slot and kept across recycles.
func pushHistory(p *Particle, pos Vec2, limit int) {
	if limit <= 0 {
		return
	}
	if cap(p.History) < limit {
		h := make([]Vec2, len(p.History), limit)
		copy(h, p.History)
		p.History = h
	}
	if len(p.History) < limit {
		p.History = append(p.History, pos)
		return
	}
	copy(p.History, p.History[1:])
	p.History[len(p.History)-1] = pos
}
