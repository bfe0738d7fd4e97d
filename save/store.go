// Package save persists which level jewels were collected.
package save

import (
	"fmt"
	"strings"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/logging"
)

const levelsObject = "levels"

// LevelState maps level object ids to their saved piece state.
type LevelState struct {
	Pieces map[string]goldpiece.SaveState `yaml:"pieces"`
}

// Store reads and writes LevelState through gdata. A Store without a manager
// keeps nothing and never fails.
type Store struct {
	manager *gdata.Manager
}

// Open creates a gdata backed store. When the platform data dir is unavailable
// it returns a memoryless store together with the error.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}, fmt.Errorf("save: open %s: %w", appName, err)
	}
	return &Store{manager: m}, nil
}

func New(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

func (s *Store) Enabled() bool {
	return s != nil && s.manager != nil
}

// Load returns the saved state for levelID, or an empty state if nothing was
// saved yet.
func (s *Store) Load(levelID string) (LevelState, error) {
	state := LevelState{Pieces: map[string]goldpiece.SaveState{}}
	if !s.Enabled() {
		return state, nil
	}
	key := propKey(levelID)
	if !s.manager.ObjectPropExists(levelsObject, key) {
		return state, nil
	}
	data, err := s.manager.LoadObjectProp(levelsObject, key)
	if err != nil {
		return state, fmt.Errorf("save: load %s: %w", levelID, err)
	}
	if err := yaml.Unmarshal(data, &state); err != nil {
		return LevelState{Pieces: map[string]goldpiece.SaveState{}}, fmt.Errorf("save: decode %s: %w", levelID, err)
	}
	if state.Pieces == nil {
		state.Pieces = map[string]goldpiece.SaveState{}
	}
	return state, nil
}

func (s *Store) Save(levelID string, state LevelState) error {
	if !s.Enabled() {
		return nil
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("save: encode %s: %w", levelID, err)
	}
	if err := s.manager.SaveObjectProp(levelsObject, propKey(levelID), data); err != nil {
		return fmt.Errorf("save: write %s: %w", levelID, err)
	}
	logging.For("save").Debug().Str("level", levelID).Int("pieces", len(state.Pieces)).Msg("level saved")
	return nil
}

// Clear forgets the saved state of levelID.
func (s *Store) Clear(levelID string) error {
	return s.Save(levelID, LevelState{Pieces: map[string]goldpiece.SaveState{}})
}

func propKey(levelID string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")
	key := r.Replace(strings.TrimSpace(levelID))
	if key == "" {
		return "default"
	}
	return key
}
