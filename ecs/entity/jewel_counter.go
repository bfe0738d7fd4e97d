package entity

import (
	"fmt"

	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
)

func NewJewelCounter(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.JewelCounterComponent.Kind(), &component.JewelCounter{}); err != nil {
		return 0, fmt.Errorf("jewel counter: add counter: %w", err)
	}
	if err := ecs.Add(w, e, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("jewel counter: add screen-space: %w", err)
	}
	return e, nil
}
