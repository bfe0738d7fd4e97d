package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/prefabs"
)

// Goldpieces holds what every spawned piece shares. All pieces point at
// Tuning, so Retune reaches pieces already in the world.
type Goldpieces struct {
	Spec   *prefabs.GoldpieceSpec
	Tuning *goldpiece.Tuning
	Rand   *rand.Rand
}

func NewGoldpieces(spec *prefabs.GoldpieceSpec, rng *rand.Rand) *Goldpieces {
	return &Goldpieces{Spec: spec, Tuning: spec.Tuning(), Rand: rng}
}

// Retune applies a reloaded spec to the shared tuning.
func (g *Goldpieces) Retune(spec *prefabs.GoldpieceSpec) {
	g.Spec = spec
	*g.Tuning = *spec.Tuning()
}

// SpawnGoldpiece adds an entity for p. A non-empty levelID links a level
// piece to its savegame slot.
func SpawnGoldpiece(w *ecs.World, g *Goldpieces, p *goldpiece.Piece, levelID string) (ecs.Entity, error) {
	if p == nil {
		return 0, fmt.Errorf("goldpiece: nil piece")
	}
	pos := p.Position()
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.GoldpieceComponent.Kind(), &component.Goldpiece{Piece: p}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("goldpiece: add piece: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("goldpiece: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Color: g.Spec.ColorFor(p.Color()), ImageSet: p.ImageSet()}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("goldpiece: add sprite: %w", err)
	}

	anim := &component.Animation{FrameCount: 8, FPS: 10, Speed: p.AnimationSpeed()}
	layer := 10
	if g.Spec != nil {
		if g.Spec.Animation.FrameCount > 0 {
			anim.FrameCount = g.Spec.Animation.FrameCount
		}
		if g.Spec.Animation.FPS > 0 {
			anim.FPS = g.Spec.Animation.FPS
		}
		if g.Spec.RenderLayer.Index != 0 {
			layer = g.Spec.RenderLayer.Index
		}
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("goldpiece: add animation: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("goldpiece: add layer: %w", err)
	}

	if levelID != "" {
		if err := ecs.Add(w, e, component.LevelObjectComponent.Kind(), &component.LevelObject{ID: levelID}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("goldpiece: add level object: %w", err)
		}
	}
	return e, nil
}

// SpawnFallingGoldpiece drops a piece at x, y. DirNone picks a random side.
func SpawnFallingGoldpiece(w *ecs.World, g *Goldpieces, color goldpiece.Color, x, y float64, dir goldpiece.Direction) (ecs.Entity, error) {
	p := goldpiece.NewFalling(color, cp.Vector{X: x, Y: y}, dir, g.Rand, goldpiece.WithTuning(g.Tuning))
	return SpawnGoldpiece(w, g, p, "")
}

// SpawnJumpingGoldpiece pops a piece out of a block at x, y. It collects
// itself at the top of its arc.
func SpawnJumpingGoldpiece(w *ecs.World, g *Goldpieces, color goldpiece.Color, x, y float64) (ecs.Entity, error) {
	p := goldpiece.NewJumping(color, cp.Vector{X: x, Y: y}, goldpiece.WithTuning(g.Tuning))
	return SpawnGoldpiece(w, g, p, "")
}
