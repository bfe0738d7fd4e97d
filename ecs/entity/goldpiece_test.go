package entity

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/prefabs"
)

func newGoldpieces(t *testing.T) *Goldpieces {
	t.Helper()
	spec, err := prefabs.LoadGoldpieceSpec()
	if err != nil {
		t.Fatal(err)
	}
	return NewGoldpieces(spec, rand.New(rand.NewPCG(1, 2)))
}

func TestSpawnGoldpieceComponents(t *testing.T) {
	w := ecs.NewWorld()
	g := newGoldpieces(t)
	p := goldpiece.NewStatic(goldpiece.ColorPremium, cp.Vector{X: 32, Y: 64}, goldpiece.WithTuning(g.Tuning))

	e, err := SpawnGoldpiece(w, g, p, "gp-1")
	if err != nil {
		t.Fatal(err)
	}
	gp, ok := ecs.Get(w, e, component.GoldpieceComponent.Kind())
	if !ok || gp.Piece != p {
		t.Fatalf("goldpiece component missing")
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.X != 32 || tr.Y != 64 {
		t.Fatalf("transform = %+v", tr)
	}
	sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok || sp.ImageSet != p.ImageSet() || sp.Color != g.Spec.ColorFor(goldpiece.ColorPremium) {
		t.Fatalf("sprite = %+v", sp)
	}
	obj, ok := ecs.Get(w, e, component.LevelObjectComponent.Kind())
	if !ok || obj.ID != "gp-1" {
		t.Fatalf("level object = %+v", obj)
	}
	if !ecs.Has(w, e, component.AnimationComponent.Kind()) || !ecs.Has(w, e, component.RenderLayerComponent.Kind()) {
		t.Fatalf("animation or layer missing")
	}
}

func TestSpawnedPiecesHaveNoLevelObject(t *testing.T) {
	w := ecs.NewWorld()
	g := newGoldpieces(t)

	e, err := SpawnFallingGoldpiece(w, g, goldpiece.ColorDefault, 0, 0, goldpiece.DirNone)
	if err != nil {
		t.Fatal(err)
	}
	if ecs.Has(w, e, component.LevelObjectComponent.Kind()) {
		t.Fatalf("spawned piece linked to a savegame slot")
	}
	gp, _ := ecs.Get(w, e, component.GoldpieceComponent.Kind())
	if gp.Piece.Direction() == goldpiece.DirNone {
		t.Fatalf("falling piece without a direction")
	}
}

func TestSpawnGoldpieceErrors(t *testing.T) {
	g := newGoldpieces(t)
	if _, err := SpawnGoldpiece(ecs.NewWorld(), g, nil, ""); err == nil {
		t.Fatalf("nil piece accepted")
	}

	p := goldpiece.NewStatic(goldpiece.ColorDefault, cp.Vector{})
	_, err := SpawnGoldpiece(nil, g, p, "")
	if !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("err = %v, want ErrEntityNotAlive", err)
	}
}
