package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

//go:embed *.json
var LevelsFS embed.FS

// TileSize is the world size of one grid cell.
const TileSize = 32.0

// Tile values in a physics layer.
const (
	TileEmpty = iota
	TileSolid
	TilePlatform
	TileLava
)

// Entity types placed in a level.
const (
	EntityPlayer    = "player"
	EntityGoldpiece = "goldpiece"
	EntityEnemy     = "enemy"
)

type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

type Entity struct {
	Type  string         `json:"type"`
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// PropString returns a string prop or fallback.
func (e Entity) PropString(key, fallback string) string {
	if v, ok := e.Props[key].(string); ok {
		return v
	}
	return fallback
}

// PropFloat returns a numeric prop or fallback.
func (e Entity) PropFloat(key string, fallback float64) float64 {
	if v, ok := e.Props[key].(float64); ok {
		return v
	}
	return fallback
}

// Tile returns the tile value at column x, row y of layer, or TileEmpty when
// out of range.
func (l *Level) Tile(layer, x, y int) int {
	if l == nil || layer < 0 || layer >= len(l.Layers) || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return TileEmpty
	}
	idx := y*l.Width + x
	if idx >= len(l.Layers[layer]) {
		return TileEmpty
	}
	return l.Layers[layer][idx]
}

// HasPhysics reports whether layer takes part in collisions. Layers without
// metadata default to physics.
func (l *Level) HasPhysics(layer int) bool {
	if layer < len(l.LayerMeta) {
		return l.LayerMeta[layer].Physics
	}
	return true
}

func (l *Level) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("layer %d has %d tiles, want %d", i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

// LoadLevel reads path from disk when it exists and falls back to the
// embedded level of the same name.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadLevelFromFS(path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	return &lvl, nil
}
