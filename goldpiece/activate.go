package goldpiece

// Award is what one activation paid out.
type Award struct {
	Points int
	Jewels int
}

func (a Award) IsZero() bool {
	return a.Points == 0 && a.Jewels == 0
}

// Activate collects the piece: effect, sound, HUD, script event, then
// disposal. It is a no-op returning a zero Award unless the piece is active
// and idle, so duplicate touches in one frame pay out once.
func (p *Piece) Activate(env Env) Award {
	if !p.live("Activate") || p.state != StateIdle {
		return Award{}
	}
	p.state = StateActivating

	t := p.tuning
	award := p.Value()

	if env.Effects != nil {
		scale := 1.0
		if p.color == ColorPremium {
			scale = t.PremiumEffectScale
		}
		env.Effects.SpawnCollectEffect(p.pos.X+t.Width/10, p.pos.Y+t.Height/10, scale)
	}

	// jumping pieces are already the payoff of another pickup
	if p.kind != KindJumpSpawned && env.Audio != nil {
		env.Audio.PlaySound(p.Sound())
	}

	if env.Score != nil && !award.IsZero() {
		env.Score.AddCurrency(award.Jewels)
		env.Score.AddScore(award.Points, p.pos.X+t.Width/2, p.pos.Y+2)
	}

	if env.Scripts != nil {
		env.Scripts.NotifyActivated(p)
	}

	p.dispose(env)
	return award
}

// OnPlayerTouch activates the piece unless the contact side is unknown.
func (p *Piece) OnPlayerTouch(env Env, dir Direction) Award {
	if dir == DirNone {
		return Award{}
	}
	return p.Activate(env)
}

// OnLavaCollision removes the piece without paying out.
func (p *Piece) OnLavaCollision(env Env) {
	if !p.live("OnLavaCollision") {
		return
	}
	p.dispose(env)
}

// OnLeftLevel removes a piece that dropped below the level without paying out.
func (p *Piece) OnLeftLevel(env Env) {
	if !p.live("OnLeftLevel") {
		return
	}
	p.dispose(env)
}

// Sound is the collect sound id for the piece's color.
func (p *Piece) Sound() string {
	if p.color == ColorPremium {
		return p.tuning.PremiumSound
	}
	return p.tuning.DefaultSound
}

// Value is what collecting the piece pays.
func (p *Piece) Value() Award {
	t := p.tuning
	a := Award{Points: t.DefaultPoints, Jewels: t.DefaultJewels}
	if p.color == ColorPremium {
		a = Award{Points: t.PremiumPoints, Jewels: t.PremiumJewels}
	}
	if p.kind == KindJumpSpawned {
		a.Points *= t.JumpPointsScale
	}
	return a
}

// dispose ends the lifecycle. Spawned pieces are handed to the sprite manager
// and must not be touched again; level pieces stay in place, inert.
func (p *Piece) dispose(env Env) {
	p.active = false
	p.state = StateDisposed
	if !p.spawned {
		return
	}
	p.destroyed = true
	if env.Sprites != nil {
		env.Sprites.Destroy(p)
	}
}
