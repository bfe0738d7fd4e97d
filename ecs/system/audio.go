package system

import (
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
)

// AudioSystem plays and stops the sounds flagged on Audio components. Entries
// without a player are headless and only have their flags cleared.
type AudioSystem struct {
	// Played counts started sounds by name.
	Played map[string]int
}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{Played: map[string]int{}}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for i := range audioComp.Play {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false
			if i < len(audioComp.Names) {
				a.Played[audioComp.Names[i]]++
			}
			if i >= len(audioComp.Players) || audioComp.Players[i] == nil {
				continue
			}

			player := audioComp.Players[i]
			if i < len(audioComp.Volume) {
				player.SetVolume(audioComp.Volume[i])
			}
			if err := player.Rewind(); err != nil {
				continue
			}
			player.Play()
		}

		for i := range audioComp.Stop {
			if !audioComp.Stop[i] {
				continue
			}
			audioComp.Stop[i] = false
			if i < len(audioComp.Players) && audioComp.Players[i] != nil && audioComp.Players[i].IsPlaying() {
				audioComp.Players[i].Pause()
			}
		}
	})
}
