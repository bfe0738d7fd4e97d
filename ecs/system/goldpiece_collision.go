package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/goldpiece"
)

// collider is a body snapshot taken once per frame.
type collider struct {
	entity ecs.Entity
	obs    goldpiece.Obstacle
}

func bodyRect(t *component.Transform, b *component.Body) cp.BB {
	return goldpiece.Rect(t.X, t.Y, b.Width, b.Height)
}

func obstacleOf(t *component.Transform, b *component.Body) goldpiece.Obstacle {
	return goldpiece.Obstacle{
		Type:  b.Type,
		Mass:  b.Mass,
		Group: b.Group,
		Ghost: b.Ghost,
		Rect:  bodyRect(t, b),
	}
}

// overlapEpsilon absorbs float drift left by snapping to an edge.
const overlapEpsilon = 1e-6

// overlaps is a strict AABB test: touching edges do not overlap.
func overlaps(a, b cp.BB) bool {
	return a.L < b.R-overlapEpsilon && a.R > b.L+overlapEpsilon &&
		a.B < b.T-overlapEpsilon && a.T > b.B+overlapEpsilon
}

func collectColliders(w *ecs.World) []collider {
	var out []collider
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, t *component.Transform, b *component.Body) {
		if ecs.Has(w, e, component.HazardComponent.Kind()) {
			return
		}
		out = append(out, collider{entity: e, obs: obstacleOf(t, b)})
	})
	return out
}

// sweep moves p by its velocity, X then Y, stopping at blocking colliders.
// Each axis classifies against the state before that axis moves.
func sweep(p *goldpiece.Piece, colliders []collider, dt float64) {
	vel := p.Velocity()

	if dx := vel.X * dt; dx != 0 {
		blocking := blockers(p, colliders)
		p.MoveBy(dx, 0)
		if hit, ok := firstOverlap(p.Bounds(), blocking); ok {
			b := p.Bounds()
			dir := goldpiece.DirRight
			push := hit.L - b.R
			if dx < 0 {
				dir = goldpiece.DirLeft
				push = hit.R - b.L
			}
			p.MoveBy(push, 0)
			p.OnMassiveCollision(dir)
		}
	}

	vel = p.Velocity()
	if dy := vel.Y * dt; dy != 0 && p.IsActive() {
		blocking := blockers(p, colliders)
		p.MoveBy(0, dy)
		if hit, ok := firstOverlap(p.Bounds(), blocking); ok {
			b := p.Bounds()
			dir := goldpiece.DirDown
			push := hit.B - b.T
			if dy < 0 {
				dir = goldpiece.DirUp
				push = hit.T - b.B
			}
			p.MoveBy(0, push)
			p.OnMassiveCollision(dir)
			if dir == goldpiece.DirDown && relands(p, dt) {
				p.OnMassiveCollision(goldpiece.DirDown)
			}
		}
	}
}

// relands reports whether the rebound after a floor hit is weaker than one
// frame of gravity. Such a hop lands again inside the same frame.
func relands(p *goldpiece.Piece, dt float64) bool {
	vy := p.Velocity().Y
	return vy < 0 && -vy < p.Tuning().FallAccel*dt
}

func blockers(p *goldpiece.Piece, colliders []collider) []cp.BB {
	var out []cp.BB
	for _, c := range colliders {
		if p.Classify(c.obs) == goldpiece.CollisionBlocking {
			out = append(out, c.obs.Rect)
		}
	}
	return out
}

// firstOverlap returns the blocker with the deepest overlap.
func firstOverlap(box cp.BB, rects []cp.BB) (cp.BB, bool) {
	var (
		best  cp.BB
		depth = -1.0
	)
	for _, r := range rects {
		if !overlaps(box, r) {
			continue
		}
		d := (math.Min(box.R, r.R) - math.Max(box.L, r.L)) * (math.Min(box.T, r.T) - math.Max(box.B, r.B))
		if d > depth {
			best, depth = r, d
		}
	}
	return best, depth >= 0
}

// touchSide returns the side of box that other touches, judged by the offset
// between centers relative to their sizes.
func touchSide(box, other cp.BB) goldpiece.Direction {
	dx := other.Center().X - box.Center().X
	dy := other.Center().Y - box.Center().Y
	hw := (box.R - box.L + other.R - other.L) / 2
	hh := (box.T - box.B + other.T - other.B) / 2
	if hw <= 0 || hh <= 0 {
		return goldpiece.DirNone
	}
	if math.Abs(dx)/hw > math.Abs(dy)/hh {
		if dx < 0 {
			return goldpiece.DirLeft
		}
		return goldpiece.DirRight
	}
	if dy < 0 {
		return goldpiece.DirUp
	}
	return goldpiece.DirDown
}
