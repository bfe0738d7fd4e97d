package goldpiece

import (
	"reflect"
	"testing"
)

func TestActivateStaticAwards(t *testing.T) {
	cases := []struct {
		name   string
		color  Color
		jewels int
		points int
		sound  string
		scale  float64
	}{
		{"yellow", ColorDefault, 1, 5, "item/jewel_1.ogg", 1.0},
		{"red", ColorPremium, 5, 100, "item/jewel_2.ogg", 1.2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := newRecorder()
			p := NewStatic(c.color, vec(100, 200))

			got := p.Activate(rec.env())
			if got != (Award{Points: c.points, Jewels: c.jewels}) {
				t.Fatalf("award = %+v, want %d points %d jewels", got, c.points, c.jewels)
			}
			if rec.totalCurrency() != c.jewels || rec.totalScore() != c.points {
				t.Fatalf("hud got currency=%d score=%d", rec.totalCurrency(), rec.totalScore())
			}
			if len(rec.sounds) != 1 || rec.sounds[0] != c.sound {
				t.Fatalf("sounds = %v, want [%s]", rec.sounds, c.sound)
			}
			if len(rec.effects) != 1 {
				t.Fatalf("expected one effect, got %d", len(rec.effects))
			}
			e := rec.effects[0]
			if !approx(e.x, 102.4) || !approx(e.y, 202.4) || e.scale != c.scale {
				t.Fatalf("effect = %+v", e)
			}
			s := rec.scores[0]
			if s.x != 100+12 || s.y != 202 {
				t.Fatalf("score popup at (%v,%v), want (112,202)", s.x, s.y)
			}
			if len(rec.notified) != 1 || rec.notified[0] != p {
				t.Fatalf("script sink should receive the piece once")
			}

			if p.IsActive() {
				t.Fatalf("static piece should be inactive after activation")
			}
			if p.IsDestroyed() || len(rec.destroyed) != 0 {
				t.Fatalf("static piece must be deactivated, not destroyed")
			}
			if p.State() != StateDisposed {
				t.Fatalf("state = %s, want disposed", p.State())
			}
		})
	}
}

func TestActivateOrder(t *testing.T) {
	rec := newRecorder()
	p := NewFalling(ColorDefault, vec(0, 0), DirLeft, nil)
	p.Activate(rec.env())

	want := []string{"effect", "sound", "currency", "score", "script", "destroy"}
	if !reflect.DeepEqual(rec.order, want) {
		t.Fatalf("order = %v, want %v", rec.order, want)
	}
}

func TestActivateIsIdempotent(t *testing.T) {
	rec := newRecorder()
	p := NewStatic(ColorPremium, vec(0, 0))

	first := p.Activate(rec.env())
	for i := 0; i < 3; i++ {
		if a := p.Activate(rec.env()); !a.IsZero() {
			t.Fatalf("repeat activation paid %+v", a)
		}
		if a := p.OnPlayerTouch(rec.env(), DirLeft); !a.IsZero() {
			t.Fatalf("touch on inactive piece paid %+v", a)
		}
	}

	if first.IsZero() {
		t.Fatalf("first activation should pay out")
	}
	if rec.totalCurrency() != 5 || rec.totalScore() != 100 {
		t.Fatalf("currency=%d score=%d after repeats", rec.totalCurrency(), rec.totalScore())
	}
	if len(rec.sounds) != 1 || len(rec.effects) != 1 || len(rec.notified) != 1 {
		t.Fatalf("side effects repeated: sounds=%d effects=%d scripts=%d",
			len(rec.sounds), len(rec.effects), len(rec.notified))
	}
}

func TestActivateJumpingDoublesAndDestroys(t *testing.T) {
	for _, color := range []Color{ColorDefault, ColorPremium} {
		t.Run(color.String(), func(t *testing.T) {
			rec := newRecorder()
			p := NewJumping(color, vec(10, 10))
			base := NewStatic(color, vec(0, 0)).Value()

			got := p.Activate(rec.env())
			if got.Points != base.Points*2 {
				t.Fatalf("points = %d, want %d", got.Points, base.Points*2)
			}
			if got.Jewels != base.Jewels {
				t.Fatalf("jewels = %d, want %d", got.Jewels, base.Jewels)
			}
			if len(rec.sounds) != 0 {
				t.Fatalf("jumping piece must be silent, got %v", rec.sounds)
			}
			if !p.IsDestroyed() || len(rec.destroyed) != 1 || rec.destroyed[0] != p {
				t.Fatalf("jumping piece must be destroyed")
			}
		})
	}
}

func TestActivatePremiumFallingTouchedByPlayer(t *testing.T) {
	rec := newRecorder()
	p := NewFalling(ColorPremium, vec(50, 50), DirRight, nil)

	if c := p.Classify(Obstacle{Type: ObstaclePlayer}); c != CollisionInternal {
		t.Fatalf("player classification = %s", c)
	}
	p.OnPlayerTouch(rec.env(), DirRight)

	if rec.totalCurrency() != 5 || rec.totalScore() != 100 {
		t.Fatalf("currency=%d score=%d", rec.totalCurrency(), rec.totalScore())
	}
	if !p.IsDestroyed() || p.IsActive() {
		t.Fatalf("spawned piece must be destroyed")
	}
	if len(rec.destroyed) != 1 {
		t.Fatalf("sprite manager destroy calls = %d", len(rec.destroyed))
	}
}

func TestActivateWithoutCollaborators(t *testing.T) {
	p := NewFalling(ColorDefault, vec(0, 0), DirLeft, nil)
	if a := p.Activate(Env{}); a.Points != 5 || a.Jewels != 1 {
		t.Fatalf("award = %+v", a)
	}
	if !p.IsDestroyed() {
		t.Fatalf("piece should be marked destroyed even without a sprite manager")
	}
}

func TestOnPlayerTouchIgnoresUndefinedDirection(t *testing.T) {
	rec := newRecorder()
	p := NewStatic(ColorDefault, vec(0, 0))

	if a := p.OnPlayerTouch(rec.env(), DirNone); !a.IsZero() {
		t.Fatalf("undefined touch paid %+v", a)
	}
	if !p.IsActive() {
		t.Fatalf("piece should stay active")
	}
	if a := p.OnPlayerTouch(rec.env(), DirUp); a.Points != 5 {
		t.Fatalf("touch from above paid %+v", a)
	}
}

func TestOnLavaCollision(t *testing.T) {
	t.Run("falling", func(t *testing.T) {
		rec := newRecorder()
		p := NewFalling(ColorPremium, vec(0, 0), DirLeft, nil)
		p.OnLavaCollision(rec.env())
		if rec.totalScore() != 0 || len(rec.sounds) != 0 {
			t.Fatalf("lava must not pay out")
		}
		if !p.IsDestroyed() || len(rec.destroyed) != 1 {
			t.Fatalf("spawned piece should be released")
		}
	})
	t.Run("static", func(t *testing.T) {
		rec := newRecorder()
		p := NewStatic(ColorDefault, vec(0, 0))
		p.OnLavaCollision(rec.env())
		if p.IsActive() || p.IsDestroyed() {
			t.Fatalf("static piece should be inactive but kept")
		}
		if a := p.Activate(rec.env()); !a.IsZero() {
			t.Fatalf("burned piece paid %+v", a)
		}
	})
}

func TestOnLeftLevel(t *testing.T) {
	rec := newRecorder()
	p := NewFalling(ColorDefault, vec(0, 500), DirRight, nil)
	p.OnLeftLevel(rec.env())
	if rec.totalScore() != 0 || len(rec.sounds) != 0 {
		t.Fatalf("leaving the level must not pay out")
	}
	if p.IsActive() || !p.IsDestroyed() || len(rec.destroyed) != 1 {
		t.Fatalf("piece should be released: active=%v destroyed=%v", p.IsActive(), p.IsDestroyed())
	}
}

func TestActivateUsesTuning(t *testing.T) {
	tun := DefaultTuning()
	tun.DefaultPoints = 7
	tun.DefaultSound = "item/custom.ogg"

	rec := newRecorder()
	p := NewStatic(ColorDefault, vec(0, 0), WithTuning(&tun))
	if a := p.Activate(rec.env()); a.Points != 7 {
		t.Fatalf("points = %d, want 7", a.Points)
	}
	if rec.sounds[0] != "item/custom.ogg" {
		t.Fatalf("sound = %s", rec.sounds[0])
	}
}
