package goldpiece

import "github.com/jakecoffman/cp"

// RangeQuery answers camera-relative questions about a piece.
type RangeQuery interface {
	IsInRange(p *Piece, distance float64) bool
	IsVisibleOnScreen(p *Piece) bool
}

// GroundQuery reports whether something solid supports the piece from below.
type GroundQuery interface {
	HasGroundSupport(p *Piece) bool
}

// ScoreSink receives jewel currency and point awards (the HUD).
type ScoreSink interface {
	AddCurrency(n int)
	AddScore(n int, x, y float64)
}

type AudioSink interface {
	PlaySound(id string)
}

type EffectFactory interface {
	SpawnCollectEffect(x, y, scale float64)
}

type ScriptSink interface {
	NotifyActivated(p *Piece)
}

// SpriteManager owns dynamically spawned pieces. Destroy must defer the actual
// release until the current frame is over.
type SpriteManager interface {
	Destroy(p *Piece)
}

// Env bundles the collaborators a piece talks to. Any field may be nil; the
// matching side effect is then skipped.
type Env struct {
	Range   RangeQuery
	Ground  GroundQuery
	Score   ScoreSink
	Audio   AudioSink
	Effects EffectFactory
	Scripts ScriptSink
	Sprites SpriteManager
}

func (e Env) inRange(p *Piece, distance float64) bool {
	if e.Range == nil {
		return true
	}
	return e.Range.IsInRange(p, distance)
}

// Mass describes how an obstacle blocks movement.
type Mass int

const (
	MassPassive Mass = iota
	MassMassive
	// MassHalfMassive is a one-way platform, solid only from above.
	MassHalfMassive
)

// Group is the world collection an obstacle belongs to.
type Group int

const (
	GroupPassive Group = iota
	GroupActive
	GroupEnemy
)

// ObstacleType lets the classifier special-case the player and projectiles.
type ObstacleType int

const (
	ObstacleSolid ObstacleType = iota
	ObstaclePlayer
	ObstacleProjectile
)

// Obstacle is a read-only snapshot of the other side of a candidate collision.
// Rect uses screen space: Y grows downward, so Rect.B is the top edge and
// Rect.T the bottom edge.
type Obstacle struct {
	Type  ObstacleType
	Mass  Mass
	Group Group
	Ghost bool
	Rect  cp.BB
}

// Rect builds a screen-space box from a top-left corner and size.
func Rect(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}
