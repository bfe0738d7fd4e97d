package goldpiece

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

// RecordType tags goldpiece entries in level files.
const RecordType = "goldpiece"

// Record is the level-data form of a piece. Only color and the authored
// position are kept; velocity and state are transient.
type Record struct {
	Type  string  `yaml:"type" json:"type"`
	PosX  float64 `yaml:"posx" json:"posx"`
	PosY  float64 `yaml:"posy" json:"posy"`
	Color string  `yaml:"color,omitempty" json:"color,omitempty"`
}

func (p *Piece) ToPersistentRecord() Record {
	return Record{
		Type:  RecordType,
		PosX:  p.startPos.X,
		PosY:  p.startPos.Y,
		Color: p.color.String(),
	}
}

// FromPersistentRecord builds a level piece from r. An empty Type is accepted.
func FromPersistentRecord(r Record, opts ...Option) (*Piece, error) {
	if r.Type != "" && r.Type != RecordType {
		return nil, fmt.Errorf("%w: type %q", ErrNotGoldpiece, r.Type)
	}
	c, err := ParseColor(r.Color)
	if err != nil {
		return nil, err
	}
	return NewStatic(c, cp.Vector{X: r.PosX, Y: r.PosY}, opts...), nil
}

func MarshalRecord(r Record) ([]byte, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("goldpiece: marshal record: %w", err)
	}
	return b, nil
}

func UnmarshalRecord(b []byte) (Record, error) {
	var r Record
	if err := yaml.Unmarshal(b, &r); err != nil {
		return Record{}, fmt.Errorf("goldpiece: unmarshal record: %w", err)
	}
	return r, nil
}

// SaveState is the savegame form of a level piece.
type SaveState struct {
	Active bool `yaml:"active" json:"active"`
}

func (p *Piece) SaveState() SaveState {
	return SaveState{Active: p.IsActive()}
}

// LoadSaveState restores a level piece from a savegame. Spawned pieces are
// not part of savegames and ignore it.
func (p *Piece) LoadSaveState(s SaveState) {
	if p.spawned || p.destroyed {
		return
	}
	p.active = s.Active
	if s.Active {
		p.state = StateIdle
		return
	}
	p.state = StateDisposed
}
