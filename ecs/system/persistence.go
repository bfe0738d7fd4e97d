package system

import (
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/logging"
	"github.com/milk9111/goldpiece/save"
)

// PersistenceSystem drains the world event queue, keeps the savegame state of
// level pieces current and writes it through the store on Flush.
type PersistenceSystem struct {
	levelID string
	store   *save.Store
	state   save.LevelState
	dirty   bool

	// OnEvent, when set, sees every drained event.
	OnEvent func(ecs.Event)
}

func NewPersistenceSystem(levelID string, store *save.Store) *PersistenceSystem {
	return &PersistenceSystem{
		levelID: levelID,
		store:   store,
		state:   save.LevelState{Pieces: map[string]goldpiece.SaveState{}},
	}
}

// Restore loads the saved state and applies it to the level pieces in w.
func (p *PersistenceSystem) Restore(w *ecs.World) error {
	state, err := p.store.Load(p.levelID)
	if err != nil {
		return err
	}
	p.state = state
	Apply(w, state)
	return nil
}

func (p *PersistenceSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		switch data := evt.Data.(type) {
		case ecs.GoldpieceCollected:
			p.markGone(data.LevelID)
		case ecs.GoldpieceLost:
			p.markGone(data.LevelID)
		}
		if p.OnEvent != nil {
			p.OnEvent(evt)
		}
	}
}

func (p *PersistenceSystem) markGone(id string) {
	if id == "" {
		return
	}
	p.state.Pieces[id] = goldpiece.SaveState{Active: false}
	p.dirty = true
}

// Reset brings every level piece back and clears the saved state of the level.
func (p *PersistenceSystem) Reset(w *ecs.World) error {
	ecs.ForEach2(w, component.GoldpieceComponent.Kind(), component.LevelObjectComponent.Kind(), func(e ecs.Entity, gp *component.Goldpiece, _ *component.LevelObject) {
		if gp.Piece == nil {
			return
		}
		gp.Piece.Reset()
		syncPiece(w, e, gp.Piece)
	})
	p.state = save.LevelState{Pieces: map[string]goldpiece.SaveState{}}
	if err := p.store.Clear(p.levelID); err != nil {
		p.dirty = true
		return err
	}
	p.dirty = false
	return nil
}

// State returns the tracked savegame state.
func (p *PersistenceSystem) State() save.LevelState {
	return p.state
}

// Flush writes the state when something changed since the last flush.
func (p *PersistenceSystem) Flush() error {
	if !p.dirty {
		return nil
	}
	if err := p.store.Save(p.levelID, p.state); err != nil {
		return err
	}
	p.dirty = false
	logging.For("save").Info().Str("level", p.levelID).Msg("progress saved")
	return nil
}

// Capture reads the savegame state of every level piece in w.
func Capture(w *ecs.World) save.LevelState {
	state := save.LevelState{Pieces: map[string]goldpiece.SaveState{}}
	ecs.ForEach2(w, component.GoldpieceComponent.Kind(), component.LevelObjectComponent.Kind(), func(_ ecs.Entity, gp *component.Goldpiece, obj *component.LevelObject) {
		if gp.Piece != nil && obj.ID != "" {
			state.Pieces[obj.ID] = gp.Piece.SaveState()
		}
	})
	return state
}

// Apply restores level pieces in w from state. Pieces missing from state keep
// their current state.
func Apply(w *ecs.World, state save.LevelState) {
	ecs.ForEach2(w, component.GoldpieceComponent.Kind(), component.LevelObjectComponent.Kind(), func(e ecs.Entity, gp *component.Goldpiece, obj *component.LevelObject) {
		s, ok := state.Pieces[obj.ID]
		if !ok || gp.Piece == nil {
			return
		}
		gp.Piece.LoadSaveState(s)
		syncPiece(w, e, gp.Piece)
	})
}
