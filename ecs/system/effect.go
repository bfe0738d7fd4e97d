package system

import (
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
)

// EffectSystem ages collect effects and moves score popups upward. TTL
// removes both once they run out.
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem { return &EffectSystem{} }

func (s *EffectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CollectEffectComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, fx *component.CollectEffect, t *component.Transform) {
		if fx.Frames < fx.Total {
			fx.Frames++
		}
		grow := 1.0
		if fx.Total > 0 {
			grow += float64(fx.Frames) / float64(fx.Total)
		}
		t.ScaleX = fx.Scale * grow
		t.ScaleY = fx.Scale * grow
	})

	ecs.ForEach2(w, component.ScorePopupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, popup *component.ScorePopup, t *component.Transform) {
		if popup.Frames > 0 {
			popup.Frames--
			t.Y -= popup.Rise
		}
	})
}
