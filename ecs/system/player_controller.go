package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/goldpiece"
)

// PlayerControllerSystem moves the player with simple AABB physics. Hitting
// a solid from below requests a bump on it.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var solids []collider
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, t *component.Transform, b *component.Body) {
		if b.Type != goldpiece.ObstacleSolid || b.Ghost || b.Group == goldpiece.GroupEnemy || b.Mass == goldpiece.MassPassive {
			return
		}
		if ecs.Has(w, e, component.HazardComponent.Kind()) {
			return
		}
		solids = append(solids, collider{entity: e, obs: obstacleOf(t, b)})
	})

	ecs.ForEach4(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, pl *component.Player, in *component.Input, t *component.Transform, b *component.Body) {
		pl.VX = in.MoveX * pl.MoveSpeed
		if in.MoveX != 0 {
			pl.Facing = 1
			if in.MoveX < 0 {
				pl.Facing = -1
			}
		}
		if in.JumpPressed && pl.OnGround {
			pl.VY = -pl.JumpSpeed
			pl.OnGround = false
		}
		pl.VY = min(pl.VY+pl.Gravity, pl.MaxFall)

		if pl.VX != 0 {
			t.X += pl.VX
			box := bodyRect(t, b)
			for _, c := range solids {
				if c.obs.Mass != goldpiece.MassMassive || !overlaps(box, c.obs.Rect) {
					continue
				}
				if pl.VX > 0 {
					t.X -= box.R - c.obs.Rect.L
				} else {
					t.X += c.obs.Rect.R - box.L
				}
				box = bodyRect(t, b)
				pl.VX = 0
			}
		}

		wasBottom := bodyRect(t, b).T
		t.Y += pl.VY
		pl.OnGround = false
		box := bodyRect(t, b)
		for _, c := range solids {
			r := c.obs.Rect
			if !overlaps(box, r) {
				continue
			}
			switch {
			case pl.VY > 0 && (c.obs.Mass == goldpiece.MassMassive || wasBottom <= r.B+1):
				t.Y -= box.T - r.B
				pl.VY = 0
				pl.OnGround = true
			case pl.VY < 0 && c.obs.Mass == goldpiece.MassMassive:
				t.Y += r.T - box.B
				pl.VY = 0
				_ = ecs.Add(w, c.entity, component.BumpRequestComponent.Kind(), &component.BumpRequest{})
			default:
				continue
			}
			box = bodyRect(t, b)
		}

		if in.Bump {
			if below, ok := solidBelow(box, solids); ok {
				_ = ecs.Add(w, below, component.BumpRequestComponent.Kind(), &component.BumpRequest{})
			}
		}
	})
}

// solidBelow finds the massive solid the box stands on.
func solidBelow(box cp.BB, solids []collider) (ecs.Entity, bool) {
	probe := cp.BB{L: box.L, B: box.T, R: box.R, T: box.T + groundProbe}
	for _, c := range solids {
		if c.obs.Mass == goldpiece.MassMassive && overlaps(probe, c.obs.Rect) {
			return c.entity, true
		}
	}
	return 0, false
}
