package prefabs

import (
	"image/color"

	"github.com/milk9111/goldpiece/goldpiece"
)

const GoldpieceSpecFile = "goldpiece.yaml"

type GoldpieceSpec struct {
	Name        string              `yaml:"name"`
	Collider    ColliderSpec        `yaml:"collider"`
	Jumping     GoldpieceJumpSpec   `yaml:"jumping"`
	Falling     GoldpieceFallSpec   `yaml:"falling"`
	Bounce      GoldpieceBounceSpec `yaml:"bounce"`
	Bump        GoldpieceBumpSpec   `yaml:"bump"`
	Yellow      GoldpieceColorSpec  `yaml:"yellow"`
	Red         GoldpieceColorSpec  `yaml:"red"`
	JumpScale   int                 `yaml:"jump_points_scale"`
	Animation   GoldpieceAnimSpec   `yaml:"animation"`
	RenderLayer RenderLayerSpec     `yaml:"render_layer"`
	Audio       []AudioSpec         `yaml:"audio"`
	Script      string              `yaml:"script"`
}

type GoldpieceJumpSpec struct {
	StartVelY float64 `yaml:"start_vel_y"`
	Accel     float64 `yaml:"accel"`
	MaxVelY   float64 `yaml:"max_vel_y"`
}

type GoldpieceFallSpec struct {
	SpeedX  float64 `yaml:"speed_x"`
	Accel   float64 `yaml:"accel"`
	MaxVelY float64 `yaml:"max_vel_y"`
	Range   float64 `yaml:"range"`
}

type GoldpieceBounceSpec struct {
	CeilingDamping float64 `yaml:"ceiling_damping"`
	FloorDamping   float64 `yaml:"floor_damping"`
	FloorMin       float64 `yaml:"floor_min"`
	FloorMax       float64 `yaml:"floor_max"`
}

type GoldpieceBumpSpec struct {
	VelY     float64 `yaml:"vel_y"`
	SideVelY float64 `yaml:"side_vel_y"`
}

type GoldpieceColorSpec struct {
	Points      int        `yaml:"points"`
	Jewels      int        `yaml:"jewels"`
	Sound       string     `yaml:"sound"`
	EffectScale float64    `yaml:"effect_scale"`
	Color       *YAMLColor `yaml:"color"`
}

type GoldpieceAnimSpec struct {
	StaticSpeed  float64 `yaml:"static_speed"`
	SpawnedSpeed float64 `yaml:"spawned_speed"`
	FrameCount   int     `yaml:"frame_count"`
	FPS          float64 `yaml:"fps"`
}

func LoadGoldpieceSpec() (*GoldpieceSpec, error) {
	spec, err := LoadSpec[GoldpieceSpec](GoldpieceSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Tuning converts the spec into piece constants. Zero fields keep the
// built-in defaults.
func (s *GoldpieceSpec) Tuning() *goldpiece.Tuning {
	t := goldpiece.DefaultTuning()
	if s == nil {
		return &t
	}

	setF(&t.Width, s.Collider.Width)
	setF(&t.Height, s.Collider.Height)

	setF(&t.JumpStartVelY, s.Jumping.StartVelY)
	setF(&t.JumpAccel, s.Jumping.Accel)
	setF(&t.JumpMaxVelY, s.Jumping.MaxVelY)

	setF(&t.FallSpeedX, s.Falling.SpeedX)
	setF(&t.FallAccel, s.Falling.Accel)
	setF(&t.FallMaxVelY, s.Falling.MaxVelY)
	setF(&t.FallRange, s.Falling.Range)

	setF(&t.CeilingDamping, s.Bounce.CeilingDamping)
	setF(&t.FloorDamping, s.Bounce.FloorDamping)
	setF(&t.FloorMinBounce, s.Bounce.FloorMin)
	setF(&t.FloorMaxBounce, s.Bounce.FloorMax)

	setF(&t.BumpVelY, s.Bump.VelY)
	setF(&t.SideBumpVelY, s.Bump.SideVelY)

	setI(&t.DefaultPoints, s.Yellow.Points)
	setI(&t.DefaultJewels, s.Yellow.Jewels)
	setS(&t.DefaultSound, s.Yellow.Sound)
	setI(&t.PremiumPoints, s.Red.Points)
	setI(&t.PremiumJewels, s.Red.Jewels)
	setS(&t.PremiumSound, s.Red.Sound)
	setF(&t.PremiumEffectScale, s.Red.EffectScale)
	setI(&t.JumpPointsScale, s.JumpScale)

	setF(&t.StaticAnimSpeed, s.Animation.StaticSpeed)
	setF(&t.SpawnedAnimSpeed, s.Animation.SpawnedSpeed)
	return &t
}

// ColorFor returns the draw color of a piece color.
func (s *GoldpieceSpec) ColorFor(c goldpiece.Color) color.RGBA {
	if c == goldpiece.ColorPremium {
		if s == nil {
			return defaultRed
		}
		return s.Red.Color.RGBAOr(defaultRed)
	}
	if s == nil {
		return defaultYellow
	}
	return s.Yellow.Color.RGBAOr(defaultYellow)
}

var (
	defaultYellow = color.RGBA{R: 248, G: 208, B: 56, A: 255}
	defaultRed    = color.RGBA{R: 224, G: 60, B: 40, A: 255}
)

func setF(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setI(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setS(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
