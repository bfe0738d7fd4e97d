package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
)

const (
	jewelCounterPaddingX = 12
	jewelCounterPaddingY = 12
	jewelCounterTextW    = 6
)

type JewelCounterSystem struct{}

func NewJewelCounterSystem() *JewelCounterSystem { return &JewelCounterSystem{} }

func (s *JewelCounterSystem) Update(w *ecs.World) {
	e, ok := ecs.First(w, component.JewelCounterComponent.Kind())
	if !ok {
		return
	}
	counter, ok := ecs.Get(w, e, component.JewelCounterComponent.Kind())
	if !ok {
		return
	}

	if counter.Jewels < 0 {
		counter.Jewels = 0
	}
	if counter.Points < 0 {
		counter.Points = 0
	}
	counter.RenderedText = CounterText(counter.Jewels, counter.Points)
}

// Draw prints the counter in the top right corner.
func (s *JewelCounterSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	e, ok := ecs.First(w, component.JewelCounterComponent.Kind())
	if !ok {
		return
	}
	counter, ok := ecs.Get(w, e, component.JewelCounterComponent.Kind())
	if !ok || counter.RenderedText == "" {
		return
	}
	x := screen.Bounds().Dx() - jewelCounterPaddingX - len(counter.RenderedText)*jewelCounterTextW
	ebitenutil.DebugPrintAt(screen, counter.RenderedText, x, jewelCounterPaddingY)
}

func CounterText(jewels, points int) string {
	return fmt.Sprintf("Jewels %d  Score %d", jewels, points)
}
