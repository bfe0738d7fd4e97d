package goldpiece

import "testing"

func TestClassifyFalling(t *testing.T) {
	// piece occupies x 0..24, y 100..124
	floorBelow := Rect(-50, 124, 200, 16)
	floorAbove := Rect(-50, 90, 200, 16)

	cases := []struct {
		name  string
		velY  float64
		other Obstacle
		want  CollisionKind
	}{
		{"player", 0, Obstacle{Type: ObstaclePlayer}, CollisionInternal},
		{"ghost_player", 0, Obstacle{Type: ObstaclePlayer, Ghost: true}, CollisionNotValid},
		{"projectile", 0, Obstacle{Type: ObstacleProjectile, Mass: MassMassive}, CollisionNotValid},
		{"massive", 0, Obstacle{Mass: MassMassive, Group: GroupPassive}, CollisionBlocking},
		{"massive_active", 0, Obstacle{Mass: MassMassive, Group: GroupActive}, CollisionBlocking},
		{"massive_enemy", 0, Obstacle{Mass: MassMassive, Group: GroupEnemy}, CollisionNotValid},
		{"ghost_massive", 0, Obstacle{Mass: MassMassive, Ghost: true}, CollisionNotValid},
		{"half_massive_landing", 3, Obstacle{Mass: MassHalfMassive, Rect: floorBelow}, CollisionBlocking},
		{"half_massive_resting", 0, Obstacle{Mass: MassHalfMassive, Rect: floorBelow}, CollisionBlocking},
		{"half_massive_rising", -3, Obstacle{Mass: MassHalfMassive, Rect: floorBelow}, CollisionNotValid},
		{"half_massive_from_below", 3, Obstacle{Mass: MassHalfMassive, Rect: floorAbove}, CollisionNotValid},
		{"passive", 0, Obstacle{Mass: MassPassive}, CollisionNotValid},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewFalling(ColorDefault, vec(0, 100), DirRight, nil)
			p.vel.Y = c.velY
			if got := p.Classify(c.other); got != c.want {
				t.Fatalf("Classify = %s, want %s", got, c.want)
			}
		})
	}
}

func TestClassifyStaticAndJumping(t *testing.T) {
	others := []Obstacle{
		{Type: ObstaclePlayer},
		{Mass: MassMassive},
		{Mass: MassHalfMassive},
		{Type: ObstacleProjectile},
		{Mass: MassMassive, Group: GroupEnemy},
	}

	static := NewStatic(ColorDefault, vec(0, 0))
	jumping := NewJumping(ColorDefault, vec(0, 0))
	for _, o := range others {
		want := CollisionNotValid
		if o.Type == ObstaclePlayer {
			want = CollisionInternal
		}
		if got := static.Classify(o); got != want {
			t.Fatalf("static Classify(%+v) = %s, want %s", o, got, want)
		}
		if got := jumping.Classify(o); got != CollisionNotValid {
			t.Fatalf("jumping Classify(%+v) = %s, want not_valid", o, got)
		}
	}

	if got := static.Classify(Obstacle{Type: ObstaclePlayer, Ghost: true}); got != CollisionNotValid {
		t.Fatalf("ghost player should pass through static piece, got %s", got)
	}
}

func TestClassifyIsPure(t *testing.T) {
	p := NewFalling(ColorPremium, vec(10, 10), DirLeft, nil)
	other := Obstacle{Mass: MassHalfMassive, Rect: Rect(0, 34, 100, 10)}

	pos, vel, dir := p.Position(), p.Velocity(), p.Direction()
	first := p.Classify(other)
	for i := 0; i < 10; i++ {
		if got := p.Classify(other); got != first {
			t.Fatalf("classification changed on call %d: %s vs %s", i, got, first)
		}
	}
	if p.Position() != pos || p.Velocity() != vel || p.Direction() != dir {
		t.Fatalf("Classify mutated the piece")
	}
}

func TestClassifyInactive(t *testing.T) {
	p := NewStatic(ColorDefault, vec(0, 0))
	p.Activate(Env{})
	if got := p.Classify(Obstacle{Type: ObstaclePlayer}); got != CollisionNotValid {
		t.Fatalf("inactive piece Classify = %s, want not_valid", got)
	}
}
