package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/goldpiece/config"
	"github.com/milk9111/goldpiece/logging"
	"github.com/milk9111/goldpiece/prefabs"
	"github.com/milk9111/goldpiece/save"
	"github.com/milk9111/goldpiece/session"
)

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.FileName)
	levelName := flag.String("level", "", "level file in levels/ (overrides the config)")
	debug := flag.Bool("debug", false, "enable debug spawn and bump keys")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfgErr := config.Load(*configDir)
	cfg := config.Current()
	logging.Setup(cfg.LogLevel, os.Stderr)
	log := logging.For("main")
	switch {
	case config.IsNotFound(cfgErr):
		log.Info().Str("dir", *configDir).Msg("no config file, using defaults")
	case cfgErr != nil:
		log.Fatal().Err(cfgErr).Msg("config")
	}

	if *levelName != "" {
		cfg.Level = *levelName
	}
	cfg.Debug = cfg.Debug || *debug
	prefabs.SetDir(cfg.PrefabsDir)

	var store *save.Store
	if cfg.SaveEnabled {
		s, err := save.Open(cfg.SaveAppName)
		if err != nil {
			log.Warn().Err(err).Msg("savegame disabled")
		}
		store = s
	}

	watcher, err := prefabs.NewWatcher(cfg.PrefabsDir, filepath.Join(cfg.PrefabsDir, "scripts"))
	if err != nil {
		log.Warn().Err(err).Str("dir", cfg.PrefabsDir).Msg("hot reload disabled")
		watcher = nil
	}

	sess, err := session.New(session.Options{
		Level:   cfg.Level,
		Debug:   cfg.Debug,
		Store:   store,
		Seed:    uint64(time.Now().UnixNano()),
		Watcher: watcher,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("session")
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("goldpiece")

	runErr := ebiten.RunGame(NewGame(sess, cfg))

	if err := sess.Close(); err != nil {
		log.Error().Err(err).Msg("save failed")
	}
	if watcher != nil {
		_ = watcher.Close()
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal().Err(runErr).Msg("game")
	}
}
