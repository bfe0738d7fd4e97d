package goldpiece

import "math"

// Integrate advances the piece's velocity by one frame scaled by dt. It does
// nothing for inactive pieces or pieces outside the kind's update range.
func (p *Piece) Integrate(env Env, dt float64) {
	if !p.live("Integrate") {
		return
	}
	if r := p.policy.rangeCheck(p.tuning); r > 0 && !env.inRange(p, r) {
		return
	}
	p.policy.integrate(p, env, dt)
}

// integrateJumping rises, slows and falls until the max fall speed is reached,
// then collects itself.
func integrateJumping(p *Piece, env Env, dt float64) {
	limit := p.policy.gravityMax(p.tuning)
	if p.vel.Y < limit {
		p.vel.Y = math.Min(p.vel.Y+p.tuning.JumpAccel*dt, limit)
		return
	}
	p.Activate(env)
}

// integrateFalling applies gravity unless the piece rests on something. A
// rising piece is never resting.
func integrateFalling(p *Piece, env Env, dt float64) {
	if p.vel.Y < 0 {
		p.onGround = false
	} else if env.Ground != nil {
		p.onGround = env.Ground.HasGroundSupport(p)
	}
	if p.onGround {
		return
	}
	limit := p.policy.gravityMax(p.tuning)
	if p.vel.Y < limit {
		p.vel.Y = math.Min(p.vel.Y+p.tuning.FallAccel*dt, limit)
	}
}
