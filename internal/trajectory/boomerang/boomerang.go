package boomerang

import (
	"github.com/srliao/nightsim/pkg/combat"
)

func init() {
	combat.RegisterTrajectoryFunc(combat.ArchetypeBoomerang, New)
}

type boomerang struct {
	returning bool
}

func New(prop combat.TrajectoryProperties) (combat.Trajectory, error) {
	return &boomerang{}, nil
}

func (t *boomerang) Tick(p *combat.Projectile, s *combat.Sim, dt float64) bool {
	if !t.returning {
		p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * dt))
		p.Traveled += p.Speed * dt
		if p.Traveled >= p.Range {
			//flip for the return leg; distance counter restarts
			t.returning = true
			p.Dir = p.Dir.Scale(-1)
			p.Traveled = 0
		}
		return true
	}

	//chase the caster's current position on the way back
	p.Dir = p.Owner.Pos.Sub(p.Pos).Norm()
	p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * dt))
	p.Traveled += p.Speed * dt

	//caught by the caster
	if p.Pos.Dist(p.Owner.Pos) <= p.Owner.HitRadius+p.Speed*dt {
		return false
	}
	//missed and flew too far; allow some overshoot
	return p.Traveled <= p.Range*1.5
}

func (t *boomerang) OnHit(p *combat.Projectile, target *combat.CombatEntity, s *combat.Sim) bool {
	//the disk cuts through targets on both legs
	return true
}
