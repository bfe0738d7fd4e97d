package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/logging"
)

const (
	scorePopupFrames  = 40
	scorePopupRise    = 0.75
	collectEffectTime = 18
	effectLayer       = 30
	groundProbe       = 1.0
)

// worldEnv adapts the world to the collaborators a piece expects. It is built
// fresh for every frame.
type worldEnv struct {
	w         *ecs.World
	sys       *GoldpieceSystem
	colliders []collider
	cam       *component.Camera
	entities  map[*goldpiece.Piece]ecs.Entity
}

func (e *worldEnv) env() goldpiece.Env {
	return goldpiece.Env{
		Range:   e,
		Ground:  e,
		Score:   e,
		Audio:   e,
		Effects: e,
		Scripts: e,
		Sprites: e,
	}
}

func (e *worldEnv) view() (cp.BB, bool) {
	if e.cam == nil || e.cam.Width <= 0 || e.cam.Height <= 0 {
		return cp.BB{}, false
	}
	return goldpiece.Rect(e.cam.X, e.cam.Y, e.cam.Width, e.cam.Height), true
}

func (e *worldEnv) IsInRange(p *goldpiece.Piece, distance float64) bool {
	view, ok := e.view()
	if !ok {
		return true
	}
	grown := cp.BB{L: view.L - distance, B: view.B - distance, R: view.R + distance, T: view.T + distance}
	return overlaps(p.Bounds(), grown)
}

func (e *worldEnv) IsVisibleOnScreen(p *goldpiece.Piece) bool {
	view, ok := e.view()
	if !ok {
		return true
	}
	return overlaps(p.Bounds(), view)
}

// HasGroundSupport probes a thin strip under the piece for blocking bodies.
func (e *worldEnv) HasGroundSupport(p *goldpiece.Piece) bool {
	b := p.Bounds()
	probe := cp.BB{L: b.L, B: b.T, R: b.R, T: b.T + groundProbe}
	for _, c := range e.colliders {
		if p.Classify(c.obs) != goldpiece.CollisionBlocking {
			continue
		}
		if overlaps(probe, c.obs.Rect) {
			return true
		}
	}
	return false
}

func (e *worldEnv) counter() *component.JewelCounter {
	ent, ok := ecs.First(e.w, component.JewelCounterComponent.Kind())
	if !ok {
		return nil
	}
	c, _ := ecs.Get(e.w, ent, component.JewelCounterComponent.Kind())
	return c
}

func (e *worldEnv) AddCurrency(n int) {
	if c := e.counter(); c != nil {
		c.Jewels += n
	}
}

func (e *worldEnv) AddScore(n int, x, y float64) {
	if c := e.counter(); c != nil {
		c.Points += n
	}
	ent := ecs.CreateEntity(e.w)
	_ = ecs.Add(e.w, ent, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(e.w, ent, component.ScorePopupComponent.Kind(), &component.ScorePopup{Points: n, Frames: scorePopupFrames, Rise: scorePopupRise})
	_ = ecs.Add(e.w, ent, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: effectLayer + 1})
	_ = ecs.Add(e.w, ent, component.TTLComponent.Kind(), &component.TTL{Frames: scorePopupFrames})
}

// PlaySound flags the first audio entity that knows id.
func (e *worldEnv) PlaySound(id string) {
	found := false
	ecs.ForEach(e.w, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		if found {
			return
		}
		for i, name := range a.Names {
			if name != id || i >= len(a.Play) {
				continue
			}
			a.Play[i] = true
			found = true
			return
		}
	})
	if !found {
		logging.SampledFor("goldpiece").Warn().Str("sound", id).Msg("no audio entity for sound")
	}
}

func (e *worldEnv) SpawnCollectEffect(x, y, scale float64) {
	ent := ecs.CreateEntity(e.w)
	_ = ecs.Add(e.w, ent, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: scale, ScaleY: scale})
	_ = ecs.Add(e.w, ent, component.CollectEffectComponent.Kind(), &component.CollectEffect{Scale: scale, Total: collectEffectTime})
	_ = ecs.Add(e.w, ent, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: effectLayer})
	_ = ecs.Add(e.w, ent, component.TTLComponent.Kind(), &component.TTL{Frames: collectEffectTime})
}

// NotifyActivated records the collection on the event queue before handing
// the piece to the script runtime.
func (e *worldEnv) NotifyActivated(p *goldpiece.Piece) {
	award := p.Value()
	pos := p.Position()
	ent := e.entities[p]
	levelID := ""
	if obj, ok := ecs.Get(e.w, ent, component.LevelObjectComponent.Kind()); ok {
		levelID = obj.ID
	}
	e.w.Events().Push(ecs.Event{Type: ecs.EventGoldpieceCollected, Data: ecs.GoldpieceCollected{
		Entity:  ent,
		LevelID: levelID,
		Kind:    p.Kind().String(),
		Color:   p.Color().String(),
		Points:  award.Points,
		Jewels:  award.Jewels,
		X:       pos.X,
		Y:       pos.Y,
	}})
	logging.For("goldpiece").Debug().
		Str("piece", p.DisplayName()).
		Str("kind", p.Kind().String()).
		Str("color", p.Color().String()).
		Int("points", award.Points).
		Msg("collected")

	if e.sys.Scripts != nil {
		e.sys.Scripts.NotifyActivated(p)
	}
}

// Destroy defers the release of a spawned piece by one frame.
func (e *worldEnv) Destroy(p *goldpiece.Piece) {
	ent, ok := e.entities[p]
	if !ok {
		return
	}
	release(e.w, ent)
}

func release(w *ecs.World, ent ecs.Entity) {
	_ = ecs.Remove(w, ent, component.GoldpieceComponent.Kind())
	if s, ok := ecs.Get(w, ent, component.SpriteComponent.Kind()); ok {
		s.Hidden = true
	}
	_ = ecs.Add(w, ent, component.TTLComponent.Kind(), &component.TTL{Frames: 1})
}
