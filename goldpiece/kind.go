package goldpiece

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownColor = errors.New("goldpiece: unknown color")
	ErrNotGoldpiece = errors.New("goldpiece: record is not a goldpiece")
)

// Kind selects the variant policy. It is fixed at construction.
type Kind int

const (
	KindStatic Kind = iota
	KindJumpSpawned
	KindFallingSpawned
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindJumpSpawned:
		return "jumping"
	case KindFallingSpawned:
		return "falling"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Color determines score value and the audio/visual variant.
type Color int

const (
	ColorDefault Color = iota
	ColorPremium
)

// Level files and records store colors by name.
const (
	colorNameDefault = "yellow"
	colorNamePremium = "red"
)

func (c Color) String() string {
	switch c {
	case ColorPremium:
		return colorNamePremium
	default:
		return colorNameDefault
	}
}

// ParseColor maps a record color name to a Color. An empty name is the default color.
func ParseColor(name string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", colorNameDefault:
		return ColorDefault, nil
	case colorNamePremium:
		return ColorPremium, nil
	default:
		return ColorDefault, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
}

type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Opposite returns the mirrored direction; DirNone maps to itself.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// CollisionKind is the verdict of Classify for a candidate collision.
type CollisionKind int

const (
	// CollisionNotPossible means no rule decided; only the ghost pre-check returns it.
	CollisionNotPossible CollisionKind = iota
	CollisionNotValid
	CollisionBlocking
	CollisionInternal
)

func (c CollisionKind) String() string {
	switch c {
	case CollisionNotPossible:
		return "not_possible"
	case CollisionNotValid:
		return "not_valid"
	case CollisionBlocking:
		return "blocking"
	case CollisionInternal:
		return "internal"
	default:
		return fmt.Sprintf("collision(%d)", int(c))
	}
}

// State is the activation state machine position.
type State int

const (
	StateIdle State = iota
	StateActivating
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActivating:
		return "activating"
	case StateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
