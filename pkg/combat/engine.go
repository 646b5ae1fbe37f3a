package combat

// TrajectoryEngine owns every in-flight projectile: it advances them one
// physics tick at a time and resolves the collisions that tick produced.
// within one tick all movement completes before any collision resolution, so
// a projectile can never double-collide off interleaved movement
type TrajectoryEngine struct {
	s           *Sim
	projectiles []*Projectile
	pending     []*Projectile
}

func newTrajectoryEngine(s *Sim) *TrajectoryEngine {
	return &TrajectoryEngine{s: s}
}

// Spawn queues a projectile; it joins the live set at the end of the current
// tick (or immediately between ticks)
func (te *TrajectoryEngine) Spawn(p *Projectile) {
	te.pending = append(te.pending, p)
}

// Live returns the number of in-flight projectiles
func (te *TrajectoryEngine) Live() int {
	n := 0
	for _, p := range te.projectiles {
		if p.alive {
			n++
		}
	}
	return n
}

// Projectiles returns a snapshot of the in-flight projectiles
func (te *TrajectoryEngine) Projectiles() []*Projectile {
	out := make([]*Projectile, 0, len(te.projectiles))
	for _, p := range te.projectiles {
		if p.alive {
			out = append(out, p)
		}
	}
	return out
}

// Tick runs one physics step: movement phase, then collision phase, then
// compaction and pending spawns
func (te *TrajectoryEngine) Tick(dt float64) {
	//movement phase
	for _, p := range te.projectiles {
		if !p.alive {
			continue
		}
		if !p.traj.Tick(p, te.s, dt) {
			p.alive = false
			continue
		}
		//leaving the arena is terrain collision
		if !te.s.Arena.Contains(p.Pos) && !p.piercesTerrain {
			te.s.Log.Debugf("[%v] %v hit terrain at %.0f,%.0f", te.s.Frame(), p.SpellID, p.Pos.X, p.Pos.Y)
			p.alive = false
		}
	}

	//collision phase
	for _, p := range te.projectiles {
		if !p.alive || p.noContact {
			continue
		}
		te.collide(p)
	}

	//drop dead projectiles, admit pending spawns
	live := te.projectiles[:0]
	for _, p := range te.projectiles {
		if p.alive {
			live = append(live, p)
		}
	}
	te.projectiles = append(live, te.pending...)
	te.pending = nil
}

// collide tests p against every eligible hit volume. a projectile damages a
// given target at most once per collision event; leaving and re-entering the
// volume is a new event
func (te *TrajectoryEngine) collide(p *Projectile) {
	for _, t := range te.s.targetsOf(p.Owner.Faction) {
		if t.Defeated() {
			delete(p.overlap, t.ID)
			continue
		}
		inside := p.Pos.Dist(t.Pos) <= t.HitRadius
		if !inside {
			delete(p.overlap, t.ID)
			continue
		}
		if p.overlap[t.ID] {
			continue
		}
		p.overlap[t.ID] = true
		te.s.Resolve(p, t)
		if !p.traj.OnHit(p, t, te.s) {
			p.alive = false
			return
		}
	}
}
