package system

import (
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/ecs/entity"
	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/logging"
)

const debugSpawnHeight = 64.0

// DebugSpawnSystem spawns falling and jumping pieces around the player when
// the debug keys are pressed. Every third spawn is red.
type DebugSpawnSystem struct {
	pieces *entity.Goldpieces
	count  int
}

func NewDebugSpawnSystem(pieces *entity.Goldpieces) *DebugSpawnSystem {
	return &DebugSpawnSystem{pieces: pieces}
}

func (s *DebugSpawnSystem) Update(w *ecs.World) {
	if s == nil || s.pieces == nil || w == nil {
		return
	}
	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, in *component.Input, t *component.Transform) {
		if in.SpawnFalling {
			in.SpawnFalling = false
			if _, err := entity.SpawnFallingGoldpiece(w, s.pieces, s.nextColor(), t.X, t.Y-debugSpawnHeight, goldpiece.DirNone); err != nil {
				logging.For("debug").Warn().Err(err).Msg("spawn falling piece")
			}
		}
		if in.SpawnJumping {
			in.SpawnJumping = false
			if _, err := entity.SpawnJumpingGoldpiece(w, s.pieces, s.nextColor(), t.X, t.Y-debugSpawnHeight); err != nil {
				logging.For("debug").Warn().Err(err).Msg("spawn jumping piece")
			}
		}
	})
}

func (s *DebugSpawnSystem) nextColor() goldpiece.Color {
	s.count++
	if s.count%3 == 0 {
		return goldpiece.ColorPremium
	}
	return goldpiece.ColorDefault
}
