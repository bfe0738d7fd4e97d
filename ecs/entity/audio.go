package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/goldpiece/assets"
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/prefabs"
)

// NewSoundBank adds one entity holding every clip in specs. Headless banks
// keep the names and flags but no players.
func NewSoundBank(w *ecs.World, specs []prefabs.AudioSpec, headless bool) (ecs.Entity, error) {
	comp, err := buildAudioComponent(specs, headless)
	if err != nil {
		return 0, err
	}
	e := ecs.CreateEntity(w)
	if comp == nil {
		return e, nil
	}
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), comp); err != nil {
		return 0, fmt.Errorf("sound bank: add audio: %w", err)
	}
	return e, nil
}

func buildAudioComponent(audioSpecs []prefabs.AudioSpec, headless bool) (*component.Audio, error) {
	n := len(audioSpecs)
	if n == 0 {
		return nil, nil
	}

	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)

	for i, clip := range audioSpecs {
		var player *audio.Player
		if !headless {
			var err error
			player, err = assets.LoadAudioPlayer(clip.File)
			if err != nil {
				return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
			}
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, clip.Volume)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}, nil
}
