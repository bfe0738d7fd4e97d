package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/levels"
	"github.com/milk9111/goldpiece/logging"
)

var (
	solidColor    = color.RGBA{R: 92, G: 84, B: 112, A: 255}
	platformColor = color.RGBA{R: 140, G: 112, B: 84, A: 255}
	lavaColor     = color.RGBA{R: 232, G: 96, B: 24, A: 255}
)

// LoadLevelToWorld creates bounds, tiles and placed entities for lvl. Level
// goldpieces are keyed by their "id" prop; a missing id falls back to the
// entity index.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, g *Goldpieces) error {
	if lvl == nil {
		return fmt.Errorf("level: nil level")
	}
	log := logging.For("level")

	boundsEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  float64(lvl.Width) * levels.TileSize,
		Height: float64(lvl.Height) * levels.TileSize,
	}); err != nil {
		return fmt.Errorf("level: add bounds: %w", err)
	}

	for layerIdx := range lvl.Layers {
		if !lvl.HasPhysics(layerIdx) {
			continue
		}
		for y := 0; y < lvl.Height; y++ {
			for x := 0; x < lvl.Width; x++ {
				if err := addTile(w, lvl.Tile(layerIdx, x, y), x, y); err != nil {
					return err
				}
			}
		}
	}

	pieces := 0
	for i, ent := range lvl.Entities {
		switch ent.Type {
		case levels.EntityPlayer:
			if _, err := NewPlayer(w, float64(ent.X), float64(ent.Y)); err != nil {
				return err
			}
		case levels.EntityGoldpiece:
			c, err := goldpiece.ParseColor(ent.PropString("color", ""))
			if err != nil {
				return fmt.Errorf("level: entity %d: %w", i, err)
			}
			id := ent.PropString("id", fmt.Sprintf("goldpiece-%d", i))
			p := goldpiece.NewStatic(c, cp.Vector{X: float64(ent.X), Y: float64(ent.Y)}, goldpiece.WithTuning(g.Tuning))
			if _, err := SpawnGoldpiece(w, g, p, id); err != nil {
				return err
			}
			pieces++
		case levels.EntityEnemy:
			if _, err := NewEnemy(w, float64(ent.X), float64(ent.Y), ent.PropFloat("width", 28), ent.PropFloat("height", 32)); err != nil {
				return err
			}
		default:
			log.Warn().Str("type", ent.Type).Int("index", i).Msg("unknown level entity")
		}
	}

	log.Info().Int("width", lvl.Width).Int("height", lvl.Height).Int("goldpieces", pieces).Msg("level loaded")
	return nil
}

func addTile(w *ecs.World, tile, x, y int) error {
	var (
		body   component.Body
		sprite component.Sprite
		hazard bool
	)
	switch tile {
	case levels.TileSolid:
		body = component.Body{Mass: goldpiece.MassMassive, Group: goldpiece.GroupPassive}
		sprite = component.Sprite{Color: solidColor}
	case levels.TilePlatform:
		body = component.Body{Mass: goldpiece.MassHalfMassive, Group: goldpiece.GroupPassive}
		sprite = component.Sprite{Color: platformColor}
	case levels.TileLava:
		body = component.Body{Mass: goldpiece.MassPassive, Group: goldpiece.GroupPassive}
		sprite = component.Sprite{Color: lavaColor}
		hazard = true
	default:
		return nil
	}
	body.Width, body.Height = levels.TileSize, levels.TileSize

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      float64(x) * levels.TileSize,
		Y:      float64(y) * levels.TileSize,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return fmt.Errorf("level: tile %d,%d transform: %w", x, y, err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &body); err != nil {
		return fmt.Errorf("level: tile %d,%d body: %w", x, y, err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite); err != nil {
		return fmt.Errorf("level: tile %d,%d sprite: %w", x, y, err)
	}
	if hazard {
		if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Kind: component.HazardLava}); err != nil {
			return fmt.Errorf("level: tile %d,%d hazard: %w", x, y, err)
		}
	}
	return nil
}
