package system

import (
	"testing"

	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/goldpiece"
)

func TestPersistenceTracksLevelPieces(t *testing.T) {
	w := ecs.NewWorld()
	collected := goldpiece.NewStatic(goldpiece.ColorDefault, at(0, 0))
	kept := goldpiece.NewStatic(goldpiece.ColorPremium, at(64, 0))
	e := addPiece(t, w, collected, "gp-1")
	addPiece(t, w, kept, "gp-2")

	ps := NewPersistenceSystem("demo.json", nil)
	var seen int
	ps.OnEvent = func(ecs.Event) { seen++ }

	collected.Activate(goldpiece.Env{})
	w.Events().Push(ecs.Event{Type: ecs.EventGoldpieceCollected, Data: ecs.GoldpieceCollected{Entity: e, LevelID: "gp-1"}})
	ps.Update(w)

	if seen != 1 {
		t.Fatalf("OnEvent saw %d events, want 1", seen)
	}
	state := ps.State()
	if s, ok := state.Pieces["gp-1"]; !ok || s.Active {
		t.Fatalf("gp-1 should be saved as gone: %+v", state.Pieces)
	}
	if _, ok := state.Pieces["gp-2"]; ok {
		t.Fatalf("untouched piece should not be tracked")
	}
	if got := Capture(w).Pieces["gp-2"]; !got.Active {
		t.Fatalf("captured gp-2 = %+v, want active", got)
	}
}

func TestPersistenceResetRestoresPieces(t *testing.T) {
	w := ecs.NewWorld()
	p := goldpiece.NewStatic(goldpiece.ColorDefault, at(10, 20))
	e := addPiece(t, w, p, "gp-1")

	ps := NewPersistenceSystem("demo.json", nil)
	p.OnLavaCollision(goldpiece.Env{})
	pushLost(w, e)
	ps.Update(w)
	if len(ps.State().Pieces) != 1 {
		t.Fatalf("lost piece not tracked")
	}

	if err := ps.Reset(w); err != nil {
		t.Fatal(err)
	}
	if !p.IsActive() {
		t.Fatalf("reset should bring the piece back")
	}
	if len(ps.State().Pieces) != 0 {
		t.Fatalf("reset left state: %+v", ps.State().Pieces)
	}
	if err := ps.Flush(); err != nil {
		t.Fatal(err)
	}
}
