package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/goldpiece"
)

var enemyColor = color.RGBA{R: 160, G: 40, B: 160, A: 255}

// NewEnemy adds a massive body in the enemy group. Falling pieces pass
// through it.
func NewEnemy(w *ecs.World, x, y, width, height float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Width:  width,
		Height: height,
		Mass:   goldpiece.MassMassive,
		Group:  goldpiece.GroupEnemy,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Color: enemyColor}); err != nil {
		return 0, fmt.Errorf("enemy: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 15}); err != nil {
		return 0, fmt.Errorf("enemy: add layer: %w", err)
	}
	return e, nil
}
