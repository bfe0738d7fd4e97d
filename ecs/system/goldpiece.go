package system

import (
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/logging"
)

// GoldpieceSystem integrates, moves and collects every goldpiece entity.
type GoldpieceSystem struct {
	// Scripts receives activations after the collected event is queued.
	Scripts goldpiece.ScriptSink
	// Step is the frame delta passed to Integrate. Zero means 1.
	Step float64
}

func NewGoldpieceSystem(scripts goldpiece.ScriptSink) *GoldpieceSystem {
	return &GoldpieceSystem{Scripts: scripts}
}

func (s *GoldpieceSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := s.Step
	if dt <= 0 {
		dt = 1
	}

	we := &worldEnv{
		w:         w,
		sys:       s,
		colliders: collectColliders(w),
		entities:  map[*goldpiece.Piece]ecs.Entity{},
	}
	if camEnt, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		we.cam, _ = ecs.Get(w, camEnt, component.CameraComponent.Kind())
	}
	ecs.ForEach(w, component.GoldpieceComponent.Kind(), func(e ecs.Entity, gp *component.Goldpiece) {
		if gp.Piece != nil {
			we.entities[gp.Piece] = e
		}
	})
	env := we.env()

	s.handleBumps(w, env)

	var (
		player    *collider
		hazards   []collider
		fallLimit = -1.0
	)
	for i := range we.colliders {
		if we.colliders[i].obs.Type == goldpiece.ObstaclePlayer {
			player = &we.colliders[i]
			break
		}
	}
	ecs.ForEach3(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, h *component.Hazard, t *component.Transform, b *component.Body) {
		if h.Kind == component.HazardLava {
			hazards = append(hazards, collider{entity: e, obs: obstacleOf(t, b)})
		}
	})
	if boundsEnt, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if lb, ok := ecs.Get(w, boundsEnt, component.LevelBoundsComponent.Kind()); ok && lb.Height > 0 {
			fallLimit = lb.Height
		}
	}

	ecs.ForEach(w, component.GoldpieceComponent.Kind(), func(e ecs.Entity, gp *component.Goldpiece) {
		p := gp.Piece
		if p == nil || p.IsDestroyed() {
			return
		}

		p.Integrate(env, dt)

		if p.IsActive() {
			switch p.Kind() {
			case goldpiece.KindFallingSpawned:
				sweep(p, we.colliders, dt)
			case goldpiece.KindJumpSpawned:
				p.Advance(dt)
			}
		}

		if p.IsActive() {
			for _, h := range hazards {
				if overlaps(p.Bounds(), h.obs.Rect) {
					p.OnLavaCollision(env)
					pushLost(w, e)
					break
				}
			}
		}

		if p.IsActive() && p.IsSpawned() && fallLimit > 0 && p.Position().Y > fallLimit {
			logging.For("goldpiece").Debug().Float64("y", p.Position().Y).Msg("piece left the level")
			p.OnLeftLevel(env)
			pushLost(w, e)
			return
		}

		if p.IsActive() && player != nil && overlaps(p.Bounds(), player.obs.Rect) {
			if p.Classify(player.obs) == goldpiece.CollisionInternal {
				p.OnPlayerTouch(env, touchSide(p.Bounds(), player.obs.Rect))
			}
		}

		syncPiece(w, e, p)
	})
}

// handleBumps kicks falling pieces resting on a bumped solid and clears the
// requests.
func (s *GoldpieceSystem) handleBumps(w *ecs.World, env goldpiece.Env) {
	ecs.ForEach3(w, component.BumpRequestComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, _ *component.BumpRequest, t *component.Transform, b *component.Body) {
		rect := bodyRect(t, b)
		ecs.ForEach(w, component.GoldpieceComponent.Kind(), func(_ ecs.Entity, gp *component.Goldpiece) {
			p := gp.Piece
			if p == nil || !p.IsActive() || !p.OnGround() {
				return
			}
			pb := p.Bounds()
			restsOn := pb.R > rect.L && pb.L < rect.R && pb.T >= rect.B-groundProbe && pb.T <= rect.B+groundProbe
			if restsOn {
				p.OnBoundaryCollision(goldpiece.DirDown, rect)
			}
		})
		_ = ecs.Remove(w, e, component.BumpRequestComponent.Kind())
	})
}

func syncPiece(w *ecs.World, e ecs.Entity, p *goldpiece.Piece) {
	pos := p.Position()
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = pos.X, pos.Y
	}
	if sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sp.Hidden = !p.Drawable(false)
	}
}

func pushLost(w *ecs.World, e ecs.Entity) {
	levelID := ""
	if obj, ok := ecs.Get(w, e, component.LevelObjectComponent.Kind()); ok {
		levelID = obj.ID
	}
	w.Events().Push(ecs.Event{Type: ecs.EventGoldpieceLost, Data: ecs.GoldpieceLost{Entity: e, LevelID: levelID}})
}
