package system

import (
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
)

const ticksPerSecond = 60.0

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if anim.FrameCount <= 0 || anim.FPS <= 0 {
			return
		}
		if gp, ok := ecs.Get(w, e, component.GoldpieceComponent.Kind()); ok && gp.Piece != nil {
			anim.Speed = gp.Piece.AnimationSpeed()
		}
		speed := anim.Speed
		if speed <= 0 {
			speed = 1
		}

		anim.FrameTimer += anim.FPS * speed / ticksPerSecond
		for anim.FrameTimer >= 1 {
			anim.FrameTimer--
			anim.Frame = (anim.Frame + 1) % anim.FrameCount
		}
	})
}
