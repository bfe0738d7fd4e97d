package system

import (
	"github.com/milk9111/goldpiece/common"
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
)

// CameraSystem eases the camera toward the player and keeps it inside the
// level bounds.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	target, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	cx, cy := t.X, t.Y
	if b, ok := ecs.Get(w, target, component.BodyComponent.Kind()); ok {
		cx += b.Width / 2
		cy += b.Height / 2
	}

	goalX := cx - cam.Width/2
	goalY := cy - cam.Height/2
	k := cam.Smoothness
	if k <= 0 || k > 1 {
		k = 1
	}
	cam.X = common.Lerp(cam.X, goalX, k)
	cam.Y = common.Lerp(cam.Y, goalY, k)

	if boundsEnt, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if lb, ok := ecs.Get(w, boundsEnt, component.LevelBoundsComponent.Kind()); ok {
			cam.X = common.Clamp(cam.X, 0, max(0, lb.Width-cam.Width))
			cam.Y = common.Clamp(cam.Y, 0, max(0, lb.Height-cam.Height))
		}
	}
}
