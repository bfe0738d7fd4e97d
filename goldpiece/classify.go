package goldpiece

import "github.com/jakecoffman/cp"

// onTopTolerance lets a piece resting on a one-way platform keep its support
// despite float drift.
const onTopTolerance = 1.0

// Classify decides how a candidate collision with other is treated. It reads
// only the piece's current state and never mutates anything.
func (p *Piece) Classify(other Obstacle) CollisionKind {
	if p.destroyed {
		assertNotDestroyed(p, "Classify")
		return CollisionNotValid
	}
	if !p.IsActive() {
		return CollisionNotValid
	}
	return p.policy.classify(p, other)
}

// passThrough is the shared pre-check. NotPossible means undecided.
func passThrough(other Obstacle) CollisionKind {
	if other.Ghost {
		return CollisionNotValid
	}
	return CollisionNotPossible
}

func classifyStatic(_ *Piece, other Obstacle) CollisionKind {
	if c := passThrough(other); c != CollisionNotPossible {
		return c
	}
	if other.Type == ObstaclePlayer {
		return CollisionInternal
	}
	return CollisionNotValid
}

func classifyFalling(p *Piece, other Obstacle) CollisionKind {
	if c := passThrough(other); c != CollisionNotPossible {
		return c
	}

	switch other.Type {
	case ObstaclePlayer:
		return CollisionInternal
	case ObstacleProjectile:
		return CollisionNotValid
	}

	switch other.Mass {
	case MassMassive:
		if other.Group == GroupEnemy {
			return CollisionNotValid
		}
		return CollisionBlocking
	case MassHalfMassive:
		if p.vel.Y >= 0 && p.isOnTop(other.Rect) {
			return CollisionBlocking
		}
	}
	return CollisionNotValid
}

// isOnTop reports whether the piece's bottom edge is at or above the top edge
// of rect, before this frame's movement is applied.
func (p *Piece) isOnTop(rect cp.BB) bool {
	return p.Bounds().T <= rect.B+onTopTolerance
}
