package goldpiece

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestMassiveCollisionSides(t *testing.T) {
	cases := []struct {
		name    string
		facing  Direction
		hit     Direction
		wantDir Direction
		wantVX  float64
	}{
		{"left_into_left_wall", DirLeft, DirLeft, DirRight, 5},
		{"right_into_right_wall", DirRight, DirRight, DirLeft, -5},
		{"left_touching_right_wall", DirLeft, DirRight, DirLeft, -5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewFalling(ColorDefault, vec(0, 0), c.facing, nil)
			p.OnMassiveCollision(c.hit)
			if p.Direction() != c.wantDir {
				t.Fatalf("direction = %s, want %s", p.Direction(), c.wantDir)
			}
			if p.Velocity().X != c.wantVX {
				t.Fatalf("vx = %v, want %v", p.Velocity().X, c.wantVX)
			}
		})
	}
}

func TestMassiveCollisionVertical(t *testing.T) {
	cases := []struct {
		name       string
		dir        Direction
		vy         float64
		want       float64
		wantGround bool
	}{
		{"ceiling", DirUp, -10, 3, false},
		{"floor_bounce", DirDown, 8, -4, false},
		{"floor_bounce_clamped", DirDown, 25, -10, false},
		{"floor_rest", DirDown, 0.5, 0, true},
		{"floor_slow", DirDown, 0.2, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewFalling(ColorDefault, vec(0, 0), DirRight, nil)
			p.vel.Y = c.vy
			p.OnMassiveCollision(c.dir)
			if !approx(p.Velocity().Y, c.want) {
				t.Fatalf("vy = %v, want %v", p.Velocity().Y, c.want)
			}
			if p.OnGround() != c.wantGround {
				t.Fatalf("onGround = %v, want %v", p.OnGround(), c.wantGround)
			}
		})
	}
}

func TestReboundNeverExceedsMax(t *testing.T) {
	for vy := 0.0; vy <= 100; vy += 0.75 {
		p := NewFalling(ColorDefault, vec(0, 0), DirRight, nil)
		p.vel.Y = vy
		p.OnMassiveCollision(DirDown)
		if p.Velocity().Y < -10 {
			t.Fatalf("rebound from %v = %v exceeds 10", vy, p.Velocity().Y)
		}
	}
}

func TestBoundaryCollisionDown(t *testing.T) {
	box := cp.BB{L: 100, B: 200, R: 132, T: 232}
	cases := []struct {
		name    string
		x       float64
		facing  Direction
		wantDir Direction
	}{
		{"right_of_box_moving_left", 110, DirLeft, DirRight},
		{"left_of_box_moving_right", 90, DirRight, DirLeft},
		{"right_of_box_moving_right", 110, DirRight, DirRight},
		{"left_of_box_moving_left", 90, DirLeft, DirLeft},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewFalling(ColorDefault, vec(c.x, 176), c.facing, nil)
			p.onGround = true
			p.OnBoundaryCollision(DirDown, box)
			if p.Velocity().Y != -30 {
				t.Fatalf("vy = %v, want -30", p.Velocity().Y)
			}
			if p.Direction() != c.wantDir {
				t.Fatalf("direction = %s, want %s", p.Direction(), c.wantDir)
			}
			if p.OnGround() {
				t.Fatalf("bump should clear onGround")
			}
		})
	}
}

func TestBoundaryCollisionSides(t *testing.T) {
	p := NewFalling(ColorDefault, vec(0, 0), DirLeft, nil)
	p.OnBoundaryCollision(DirLeft, cp.BB{L: -32, B: 0, R: 0, T: 32})
	if p.Velocity().Y != -13 {
		t.Fatalf("vy = %v, want -13", p.Velocity().Y)
	}
	if p.Direction() != DirRight || p.Velocity().X != 5 {
		t.Fatalf("expected turn to the right, got %s vx=%v", p.Direction(), p.Velocity().X)
	}

	p.vel.Y = 2
	p.OnBoundaryCollision(DirUp, cp.BB{L: 0, B: 0, R: 1, T: 1})
	if p.Velocity().Y != 2 {
		t.Fatalf("up boundary hit should be ignored, vy = %v", p.Velocity().Y)
	}
}

func TestNonFallingIgnoresResponses(t *testing.T) {
	for _, p := range []*Piece{NewStatic(ColorDefault, vec(0, 0)), NewJumping(ColorDefault, vec(0, 0))} {
		before := p.Velocity()
		p.OnMassiveCollision(DirDown)
		p.OnMassiveCollision(DirLeft)
		p.OnBoundaryCollision(DirDown, cp.BB{L: 0, B: 0, R: 10, T: 10})
		if p.Velocity() != before || p.Direction() != DirNone {
			t.Fatalf("%s piece reacted to collision", p.Kind())
		}
	}
}
