package system

import (
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/entity"
	"github.com/milk9111/goldpiece/logging"
	"github.com/milk9111/goldpiece/prefabs"
)

type scriptReloader interface {
	Reload() error
}

// HotReloadSystem applies prefab and script changes reported by a watcher
// between frames.
type HotReloadSystem struct {
	events <-chan string
	errors <-chan error
	pieces *entity.Goldpieces
	script scriptReloader
}

func NewHotReloadSystem(events <-chan string, errors <-chan error, pieces *entity.Goldpieces, script scriptReloader) *HotReloadSystem {
	return &HotReloadSystem{events: events, errors: errors, pieces: pieces, script: script}
}

func (s *HotReloadSystem) Update(_ *ecs.World) {
	log := logging.For("prefabs")
	for {
		select {
		case path, ok := <-s.events:
			if !ok {
				s.events = nil
				continue
			}
			s.apply(path)
		case err, ok := <-s.errors:
			if !ok {
				s.errors = nil
				continue
			}
			log.Warn().Err(err).Msg("watcher error")
		default:
			return
		}
	}
}

func (s *HotReloadSystem) apply(path string) {
	log := logging.For("prefabs")
	switch {
	case prefabs.IsGoldpieceSpec(path) && s.pieces != nil:
		spec, err := prefabs.LoadGoldpieceSpec()
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("reload failed")
			return
		}
		s.pieces.Retune(spec)
		log.Info().Str("path", path).Msg("goldpiece tuning reloaded")
	case prefabs.IsScript(path) && s.script != nil:
		if err := s.script.Reload(); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("script reload failed")
			return
		}
		log.Info().Str("path", path).Msg("script reloaded")
	}
}
