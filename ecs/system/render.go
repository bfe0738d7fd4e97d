package system

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
)

const effectRadius = 12.0

// RenderSystem draws bodies and pieces as flat boxes, then effects and score
// popups on top, all offset by the camera.
type RenderSystem struct {
	// Editor hides runtime-only pieces.
	Editor bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawable struct {
	e     ecs.Entity
	layer int
	x, y  float64
	w, h  float64
	color color.RGBA
	frame float64
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX, camY := 0.0, 0.0
	if camEnt, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEnt, component.CameraComponent.Kind()); ok {
			camX, camY = cam.X, cam.Y
		}
	}

	var items []drawable
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		if s.Hidden {
			return
		}
		d := drawable{e: e, x: t.X, y: t.Y, color: s.Color}
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			d.layer = layer.Index
		}
		if gp, ok := ecs.Get(w, e, component.GoldpieceComponent.Kind()); ok && gp.Piece != nil {
			if !gp.Piece.Drawable(r.Editor) {
				return
			}
			b := gp.Piece.Bounds()
			d.w, d.h = b.R-b.L, b.T-b.B
			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && anim.FrameCount > 0 {
				d.frame = float64(anim.Frame) / float64(anim.FrameCount)
			}
		} else if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			d.w, d.h = body.Width, body.Height
		} else {
			return
		}
		if !ecs.Has(w, e, component.ScreenSpaceComponent.Kind()) {
			d.x -= camX
			d.y -= camY
		}
		items = append(items, d)
	})

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, d := range items {
		vector.FillRect(screen, float32(d.x), float32(d.y), float32(d.w), float32(d.h), d.color, false)
		if d.frame > 0 {
			// moving glint for animated pieces
			gx := d.x + d.frame*d.w
			vector.StrokeLine(screen, float32(gx), float32(d.y+2), float32(gx), float32(d.y+d.h-2), 2, colornames.White, false)
		}
	}

	ecs.ForEach2(w, component.CollectEffectComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, fx *component.CollectEffect, t *component.Transform) {
		alpha := uint8(255)
		if fx.Total > 0 {
			alpha = uint8(255 * (1 - float64(fx.Frames)/float64(fx.Total)))
		}
		g := colornames.Gold
		c := color.NRGBA{R: g.R, G: g.G, B: g.B, A: alpha}
		vector.StrokeCircle(screen, float32(t.X-camX), float32(t.Y-camY), float32(effectRadius*t.ScaleX), 2, c, true)
	})

	ecs.ForEach2(w, component.ScorePopupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, popup *component.ScorePopup, t *component.Transform) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("+%d", popup.Points), int(t.X-camX), int(t.Y-camY))
	})
}
