// Package goldpiece implements the jewel collectible: a small physics entity in
// three variants (static, jump-spawned, falling) that share one scoring and
// activation protocol. The world loop owns broad-phase, rendering and audio and
// reaches the piece only through the methods here; the piece reaches the world
// only through the collaborators in Env.
package goldpiece

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

type Piece struct {
	kind   Kind
	color  Color
	policy *policy
	tuning *Tuning

	pos      cp.Vector
	vel      cp.Vector
	startPos cp.Vector

	direction Direction
	spawned   bool
	active    bool
	onGround  bool
	state     State
	destroyed bool
}

type options struct {
	tuning    *Tuning
	direction Direction
	rng       *rand.Rand
	spawned   bool
}

type Option func(*options)

// WithTuning shares t with the piece; later edits to t are seen by the piece.
func WithTuning(t *Tuning) Option {
	return func(o *options) { o.tuning = t }
}

// WithDirection sets the initial facing of a falling piece. DirNone picks one at random.
func WithDirection(d Direction) Option {
	return func(o *options) { o.direction = d }
}

// WithRand sets the source for the random falling direction.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// AsSpawned marks a static piece as created at runtime, so it is destroyed
// rather than hidden on activation. Jumping and falling pieces are always spawned.
func AsSpawned() Option {
	return func(o *options) { o.spawned = true }
}

// New creates a piece of the given kind at pos.
func New(kind Kind, color Color, pos cp.Vector, opts ...Option) *Piece {
	o := options{tuning: &defaultTuning}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tuning == nil {
		o.tuning = &defaultTuning
	}

	pol := policyFor(kind)
	p := &Piece{
		kind:     kind,
		color:    color,
		policy:   pol,
		tuning:   o.tuning,
		pos:      pos,
		startPos: pos,
		spawned:  o.spawned || pol.disposal == disposeDestroy,
		active:   true,
		state:    StateIdle,
	}
	p.policy.init(p, o)
	return p
}

func NewStatic(color Color, pos cp.Vector, opts ...Option) *Piece {
	return New(KindStatic, color, pos, opts...)
}

func NewJumping(color Color, pos cp.Vector, opts ...Option) *Piece {
	return New(KindJumpSpawned, color, pos, opts...)
}

// NewFalling creates a thrown piece. Directions other than left or right are
// replaced by a uniform random choice drawn from rng (the global source when nil).
func NewFalling(color Color, pos cp.Vector, dir Direction, rng *rand.Rand, opts ...Option) *Piece {
	opts = append(opts, WithDirection(dir), WithRand(rng))
	return New(KindFallingSpawned, color, pos, opts...)
}

func (p *Piece) Kind() Kind           { return p.kind }
func (p *Piece) Color() Color         { return p.color }
func (p *Piece) Position() cp.Vector  { return p.pos }
func (p *Piece) Velocity() cp.Vector  { return p.vel }
func (p *Piece) Direction() Direction { return p.direction }
func (p *Piece) IsSpawned() bool      { return p.spawned }
func (p *Piece) OnGround() bool       { return p.onGround }
func (p *Piece) State() State         { return p.state }
func (p *Piece) Tuning() Tuning       { return *p.tuning }

// IsActive reports whether the piece still takes part in physics and collisions.
func (p *Piece) IsActive() bool {
	return p.active && !p.destroyed
}

// IsDestroyed reports whether disposal was requested from the sprite manager.
func (p *Piece) IsDestroyed() bool {
	return p.destroyed
}

// Bounds returns the collision box in screen space.
func (p *Piece) Bounds() cp.BB {
	return Rect(p.pos.X, p.pos.Y, p.tuning.Width, p.tuning.Height)
}

// Retune swaps the shared constants, e.g. after a prefab reload.
func (p *Piece) Retune(t *Tuning) {
	if t == nil {
		return
	}
	p.tuning = t
}

// MoveBy shifts the piece after the world resolved its movement for the frame.
func (p *Piece) MoveBy(dx, dy float64) {
	if !p.live("MoveBy") {
		return
	}
	p.pos = p.pos.Add(cp.Vector{X: dx, Y: dy})
}

// Advance moves the piece by its own velocity, for pieces that never collide.
func (p *Piece) Advance(dt float64) {
	if !p.live("Advance") {
		return
	}
	p.pos = p.pos.Add(p.vel.Mult(dt))
}

// Copy returns a fresh level piece at this piece's start position, as the
// level editor does when duplicating.
func (p *Piece) Copy() *Piece {
	return NewStatic(p.color, p.startPos, WithTuning(p.tuning))
}

// Reset brings a level-authored piece back to its authored state after a
// level reset. Spawned pieces are owned by the sprite manager and stay put.
func (p *Piece) Reset() {
	if p.spawned || p.destroyed {
		return
	}
	p.pos = p.startPos
	p.vel = cp.Vector{}
	p.active = true
	p.onGround = false
	p.state = StateIdle
}

func (p *Piece) DisplayName() string {
	name := "Jewel"
	if p.kind == KindFallingSpawned {
		name = "Falling Jewel"
	}
	if p.color == ColorPremium {
		name = "Red " + name
	}
	return name
}

// ImageSet names the image set the renderer should animate.
func (p *Piece) ImageSet() string {
	shape := "jewel"
	if p.kind == KindFallingSpawned {
		shape = "falling"
	}
	return "game/items/goldpiece/" + p.color.String() + "/" + shape + ".imgset"
}

func (p *Piece) AnimationSpeed() float64 {
	return p.policy.animationSpeed(p.tuning)
}

// Drawable reports whether the renderer should draw the piece. Spawned pieces
// are runtime-only and hidden while editing a level.
func (p *Piece) Drawable(editor bool) bool {
	if p.destroyed || !p.active {
		return false
	}
	return !(editor && p.spawned)
}

// live is the guard at the top of every entry point.
func (p *Piece) live(op string) bool {
	if p.destroyed {
		assertNotDestroyed(p, op)
		return false
	}
	return p.active && p.state != StateDisposed
}

// assertNotDestroyed panics in goldpiecedebug builds. Release builds ignore
// late calls.
func assertNotDestroyed(p *Piece, op string) {
	if debugAsserts {
		panic(fmt.Sprintf("goldpiece: %s called on destroyed %s piece at %v", op, p.kind, p.pos))
	}
}

// turnAround flips the facing toward the opposite side. With a collision
// direction it only turns when the piece is moving into that side.
func (p *Piece) turnAround(col Direction) {
	if col != DirNone && col != p.direction {
		return
	}
	if p.direction != DirLeft && p.direction != DirRight {
		return
	}
	p.direction = p.direction.Opposite()
	speed := math.Abs(p.vel.X)
	if p.direction == DirLeft {
		speed = -speed
	}
	p.vel.X = speed
}
