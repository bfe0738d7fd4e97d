package goldpiece

import "testing"

func TestNewSetsSpawnedByKind(t *testing.T) {
	cases := []struct {
		name string
		p    *Piece
		want bool
	}{
		{"static", NewStatic(ColorDefault, vec(0, 0)), false},
		{"static_spawned", NewStatic(ColorDefault, vec(0, 0), AsSpawned()), true},
		{"jumping", NewJumping(ColorDefault, vec(0, 0)), true},
		{"falling", NewFalling(ColorDefault, vec(0, 0), DirLeft, nil), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.p.IsSpawned() != c.want {
				t.Fatalf("IsSpawned = %v, want %v", c.p.IsSpawned(), c.want)
			}
			if !c.p.IsActive() || c.p.State() != StateIdle {
				t.Fatalf("new piece should be active and idle")
			}
		})
	}
}

func TestKindNeverChanges(t *testing.T) {
	rec := newRecorder()
	p := NewFalling(ColorDefault, vec(0, 0), DirLeft, nil)
	p.Integrate(rec.env(), 1)
	p.OnMassiveCollision(DirLeft)
	p.Activate(rec.env())
	if p.Kind() != KindFallingSpawned {
		t.Fatalf("kind = %s", p.Kind())
	}
}

func TestDisplayNameAndImageSet(t *testing.T) {
	cases := []struct {
		p     *Piece
		name  string
		image string
		speed float64
	}{
		{NewStatic(ColorDefault, vec(0, 0)), "Jewel", "game/items/goldpiece/yellow/jewel.imgset", 1.0},
		{NewStatic(ColorPremium, vec(0, 0)), "Red Jewel", "game/items/goldpiece/red/jewel.imgset", 1.0},
		{NewJumping(ColorDefault, vec(0, 0)), "Jewel", "game/items/goldpiece/yellow/jewel.imgset", 1.143},
		{NewFalling(ColorDefault, vec(0, 0), DirLeft, nil), "Falling Jewel", "game/items/goldpiece/yellow/falling.imgset", 1.143},
		{NewFalling(ColorPremium, vec(0, 0), DirLeft, nil), "Red Falling Jewel", "game/items/goldpiece/red/falling.imgset", 1.143},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.DisplayName(); got != c.name {
				t.Fatalf("DisplayName = %q, want %q", got, c.name)
			}
			if got := c.p.ImageSet(); got != c.image {
				t.Fatalf("ImageSet = %q, want %q", got, c.image)
			}
			if got := c.p.AnimationSpeed(); got != c.speed {
				t.Fatalf("AnimationSpeed = %v, want %v", got, c.speed)
			}
		})
	}
}

func TestDrawable(t *testing.T) {
	s := NewStatic(ColorDefault, vec(0, 0))
	f := NewFalling(ColorDefault, vec(0, 0), DirLeft, nil)

	if !s.Drawable(true) || !s.Drawable(false) {
		t.Fatalf("static piece should always draw while active")
	}
	if f.Drawable(true) {
		t.Fatalf("spawned piece should be hidden in the editor")
	}
	if !f.Drawable(false) {
		t.Fatalf("spawned piece should draw in game")
	}
	s.Activate(Env{})
	if s.Drawable(false) {
		t.Fatalf("collected piece should not draw")
	}
}

func TestCopyAndReset(t *testing.T) {
	p := NewStatic(ColorPremium, vec(40, 80))
	p.MoveBy(10, 10)
	p.Activate(Env{})

	dup := p.Copy()
	if dup == p || dup.Position() != vec(40, 80) || dup.Color() != ColorPremium || dup.Kind() != KindStatic {
		t.Fatalf("copy = %+v", dup)
	}
	if !dup.IsActive() {
		t.Fatalf("copy should be active")
	}

	p.Reset()
	if !p.IsActive() || p.State() != StateIdle || p.Position() != vec(40, 80) {
		t.Fatalf("reset piece active=%v state=%s pos=%v", p.IsActive(), p.State(), p.Position())
	}
	if a := p.Activate(Env{}); a.Points != 100 {
		t.Fatalf("reset piece should pay again, got %+v", a)
	}
}

func TestResetIgnoresSpawned(t *testing.T) {
	p := NewFalling(ColorDefault, vec(0, 0), DirLeft, nil)
	p.Advance(1)
	p.Reset()
	if p.Position() == vec(0, 0) {
		t.Fatalf("spawned piece should not reset")
	}
}

func TestRetune(t *testing.T) {
	p := NewStatic(ColorDefault, vec(0, 0))
	tun := DefaultTuning()
	tun.Width = 48
	p.Retune(&tun)
	if p.Bounds().R != 48 {
		t.Fatalf("bounds = %+v", p.Bounds())
	}
	p.Retune(nil)
	if p.Tuning().Width != 48 {
		t.Fatalf("nil retune should keep tuning")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"", ColorDefault, false},
		{"yellow", ColorDefault, false},
		{" Red ", ColorPremium, false},
		{"blue", ColorDefault, true},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if (err != nil) != c.wantErr {
			t.Fatalf("ParseColor(%q) err = %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseColor(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestRectIsScreenSpace(t *testing.T) {
	r := Rect(10, 20, 32, 16)
	if r.L != 10 || r.B != 20 || r.R != 42 || r.T != 36 {
		t.Fatalf("Rect = %+v", r)
	}
	p := NewStatic(ColorDefault, vec(10, 20))
	if b := p.Bounds(); b.L != 10 || b.B != 20 || b.R != 10+p.Tuning().Width || b.T != 20+p.Tuning().Height {
		t.Fatalf("Bounds = %+v", b)
	}
}
