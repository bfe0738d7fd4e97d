package entity

import (
	"fmt"

	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Width:      spec.Width,
		Height:     spec.Height,
		Smoothness: spec.Smoothness,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return e, nil
}
