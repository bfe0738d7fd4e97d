package goldpiece

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

type disposal int

const (
	disposeDeactivate disposal = iota
	disposeDestroy
)

// policy is the per-kind capability table. Nil callbacks mean the kind ignores
// that event.
type policy struct {
	init       func(p *Piece, o options)
	integrate  func(p *Piece, env Env, dt float64)
	classify   func(p *Piece, other Obstacle) CollisionKind
	onMassive  func(p *Piece, dir Direction)
	onBoundary func(p *Piece, dir Direction, rect cp.BB)

	gravityMax     func(t *Tuning) float64
	rangeCheck     func(t *Tuning) float64
	animationSpeed func(t *Tuning) float64
	disposal       disposal
}

var policies = [...]policy{
	KindStatic: {
		init:           func(*Piece, options) {},
		integrate:      func(*Piece, Env, float64) {},
		classify:       classifyStatic,
		gravityMax:     func(*Tuning) float64 { return 0 },
		rangeCheck:     func(*Tuning) float64 { return 0 },
		animationSpeed: func(t *Tuning) float64 { return t.StaticAnimSpeed },
		disposal:       disposeDeactivate,
	},
	KindJumpSpawned: {
		init:           initJumping,
		integrate:      integrateJumping,
		classify:       func(*Piece, Obstacle) CollisionKind { return CollisionNotValid },
		gravityMax:     func(t *Tuning) float64 { return t.JumpMaxVelY },
		rangeCheck:     func(*Tuning) float64 { return 0 },
		animationSpeed: func(t *Tuning) float64 { return t.SpawnedAnimSpeed },
		disposal:       disposeDestroy,
	},
	KindFallingSpawned: {
		init:           initFalling,
		integrate:      integrateFalling,
		classify:       classifyFalling,
		onMassive:      massiveFalling,
		onBoundary:     boundaryFalling,
		gravityMax:     func(t *Tuning) float64 { return t.FallMaxVelY },
		rangeCheck:     func(t *Tuning) float64 { return t.FallRange },
		animationSpeed: func(t *Tuning) float64 { return t.SpawnedAnimSpeed },
		disposal:       disposeDestroy,
	},
}

// policyFor falls back to the static policy for out-of-range kinds.
func policyFor(k Kind) *policy {
	if k < 0 || int(k) >= len(policies) {
		return &policies[KindStatic]
	}
	return &policies[k]
}

func initJumping(p *Piece, _ options) {
	p.vel = cp.Vector{X: 0, Y: p.tuning.JumpStartVelY}
}

func initFalling(p *Piece, o options) {
	dir := o.direction
	if dir != DirLeft && dir != DirRight {
		dir = randomSide(o.rng)
	}
	p.direction = dir
	p.vel = cp.Vector{X: p.tuning.FallSpeedX, Y: 0}
	if dir == DirLeft {
		p.vel.X = -p.tuning.FallSpeedX
	}
}

func randomSide(rng *rand.Rand) Direction {
	var n int
	if rng != nil {
		n = rng.IntN(2)
	} else {
		n = rand.IntN(2)
	}
	if n == 0 {
		return DirLeft
	}
	return DirRight
}
