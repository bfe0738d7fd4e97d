// Package session wires a playable world: level, collaborators, systems and
// savegame.
package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/goldpiece/ecs"
	"github.com/milk9111/goldpiece/ecs/component"
	"github.com/milk9111/goldpiece/ecs/entity"
	"github.com/milk9111/goldpiece/ecs/system"
	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/levels"
	"github.com/milk9111/goldpiece/logging"
	"github.com/milk9111/goldpiece/prefabs"
	"github.com/milk9111/goldpiece/save"
	"github.com/milk9111/goldpiece/scripting"
)

type Options struct {
	Level string
	// Headless skips audio players and input polling.
	Headless bool
	Debug    bool
	Store    *save.Store
	Seed     uint64
	// Watcher, when set, drives hot reload.
	Watcher *prefabs.Watcher
}

type Session struct {
	World       *ecs.World
	Scheduler   *ecs.Scheduler
	Pieces      *entity.Goldpieces
	Script      *scripting.Runtime
	Persistence *system.PersistenceSystem
	Audio       *system.AudioSystem

	Collected int
	Lost      int
}

func New(opts Options) (*Session, error) {
	spec, err := prefabs.LoadGoldpieceSpec()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	lvl, err := levels.LoadLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("session: level %s: %w", opts.Level, err)
	}

	s := &Session{
		World:  ecs.NewWorld(),
		Pieces: entity.NewGoldpieces(spec, rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))),
	}

	if spec.Script != "" {
		rt, err := scripting.Load(spec.Script)
		if err != nil {
			logging.For("session").Warn().Err(err).Msg("script disabled")
		} else {
			s.Script = rt
		}
	}

	if err := entity.LoadLevelToWorld(s.World, lvl, s.Pieces); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if _, err := entity.NewCamera(s.World); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if _, err := entity.NewJewelCounter(s.World); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if _, err := entity.NewSoundBank(s.World, spec.Audio, opts.Headless); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s.Persistence = system.NewPersistenceSystem(opts.Level, opts.Store)
	s.Persistence.OnEvent = s.count
	if err := s.Persistence.Restore(s.World); err != nil {
		logging.For("session").Warn().Err(err).Msg("savegame not restored")
	}

	var sink goldpiece.ScriptSink
	if s.Script != nil {
		sink = s.Script
		s.Script.OnScore(s.addScriptScore)
	}
	s.Audio = system.NewAudioSystem()

	var input, reload ecs.System
	if !opts.Headless {
		input = system.NewInputSystem(opts.Debug)
	}
	if opts.Watcher != nil {
		var script interface{ Reload() error }
		if s.Script != nil {
			script = s.Script
		}
		reload = system.NewHotReloadSystem(opts.Watcher.Events, opts.Watcher.Errors, s.Pieces, script)
	}

	s.Scheduler = ecs.NewScheduler(
		reload,
		input,
		system.NewDebugSpawnSystem(s.Pieces),
		system.NewPlayerControllerSystem(),
		system.NewCameraSystem(),
		system.NewGoldpieceSystem(sink),
		system.NewAnimationSystem(),
		system.NewEffectSystem(),
		s.Audio,
		system.NewJewelCounterSystem(),
		s.Persistence,
		system.NewTTLSystem(),
		system.NewRenderSystem(),
	)
	return s, nil
}

func (s *Session) Update() {
	s.Scheduler.Update(s.World)
}

func (s *Session) Draw(screen *ebiten.Image) {
	s.Scheduler.Draw(s.World, screen)
}

// Steer sets the horizontal input of every player, for headless runs where
// no input system polls the keyboard.
func (s *Session) Steer(moveX float64) {
	ecs.ForEach(s.World, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.MoveX = moveX
	})
}

// Totals returns the jewel and point counters.
func (s *Session) Totals() (jewels, points int) {
	e, ok := ecs.First(s.World, component.JewelCounterComponent.Kind())
	if !ok {
		return 0, 0
	}
	c, ok := ecs.Get(s.World, e, component.JewelCounterComponent.Kind())
	if !ok {
		return 0, 0
	}
	return c.Jewels, c.Points
}

// Close flushes the savegame.
func (s *Session) Close() error {
	return s.Persistence.Flush()
}

func (s *Session) count(evt ecs.Event) {
	switch evt.Type {
	case ecs.EventGoldpieceCollected:
		s.Collected++
	case ecs.EventGoldpieceLost:
		s.Lost++
	}
	if s.Script == nil {
		return
	}
	for _, em := range s.Script.Drain() {
		logging.For("script").Info().Str("event", em.Name).Interface("data", em.Data).Msg("script event")
	}
}

func (s *Session) addScriptScore(n int) {
	e, ok := ecs.First(s.World, component.JewelCounterComponent.Kind())
	if !ok {
		return
	}
	if c, ok := ecs.Get(s.World, e, component.JewelCounterComponent.Kind()); ok {
		c.Points += n
	}
}
