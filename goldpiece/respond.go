package goldpiece

import (
	"math"

	"github.com/jakecoffman/cp"
)

// OnMassiveCollision reacts to a blocking contact on side dir of the piece.
func (p *Piece) OnMassiveCollision(dir Direction) {
	if !p.live("OnMassiveCollision") || p.policy.onMassive == nil {
		return
	}
	p.policy.onMassive(p, dir)
}

// OnBoundaryCollision reacts to being bumped by the edge of rect, e.g. a block
// hit from below while the piece sat on it.
func (p *Piece) OnBoundaryCollision(dir Direction, rect cp.BB) {
	if !p.live("OnBoundaryCollision") || p.policy.onBoundary == nil {
		return
	}
	p.policy.onBoundary(p, dir, rect)
}

func massiveFalling(p *Piece, dir Direction) {
	t := p.tuning
	switch dir {
	case DirLeft, DirRight:
		p.turnAround(dir)
	case DirUp:
		p.vel.Y = -(p.vel.Y * t.CeilingDamping)
	case DirDown:
		if p.vel.Y > t.FloorMinBounce {
			p.vel.Y = -math.Min(p.vel.Y*t.FloorDamping, t.FloorMaxBounce)
			p.onGround = false
			return
		}
		p.vel.Y = 0
		p.onGround = true
	}
}

func boundaryFalling(p *Piece, dir Direction, rect cp.BB) {
	t := p.tuning
	switch dir {
	case DirDown:
		p.vel.Y = t.BumpVelY
		if p.pos.X > rect.L && p.vel.X < 0 {
			p.turnAround(DirLeft)
		} else if p.pos.X < rect.L && p.vel.X > 0 {
			p.turnAround(DirRight)
		}
	case DirLeft, DirRight:
		p.vel.Y = t.SideBumpVelY
		p.turnAround(dir)
	default:
		return
	}
	p.onGround = false
}
