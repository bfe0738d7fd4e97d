package goldpiece

// Tuning holds the gameplay constants shared by every piece. Velocities are in
// world units per frame, accelerations in units per frame squared; frame deltas
// passed to Integrate scale them.
type Tuning struct {
	Width  float64
	Height float64

	JumpStartVelY float64
	JumpAccel     float64
	JumpMaxVelY   float64

	FallSpeedX  float64
	FallAccel   float64
	FallMaxVelY float64
	FallRange   float64

	CeilingDamping float64
	FloorDamping   float64
	FloorMinBounce float64
	FloorMaxBounce float64

	BumpVelY     float64
	SideBumpVelY float64

	DefaultPoints   int
	DefaultJewels   int
	PremiumPoints   int
	PremiumJewels   int
	JumpPointsScale int

	PremiumEffectScale float64
	DefaultSound       string
	PremiumSound       string

	StaticAnimSpeed  float64
	SpawnedAnimSpeed float64
}

// DefaultTuning returns the stock jewel constants.
func DefaultTuning() Tuning {
	return Tuning{
		Width:  24,
		Height: 24,

		JumpStartVelY: -18,
		JumpAccel:     1.62,
		JumpMaxVelY:   8,

		FallSpeedX:  5,
		FallAccel:   1.2,
		FallMaxVelY: 25,
		FallRange:   2000,

		CeilingDamping: 0.3,
		FloorDamping:   0.5,
		FloorMinBounce: 0.5,
		FloorMaxBounce: 10,

		BumpVelY:     -30,
		SideBumpVelY: -13,

		DefaultPoints:   5,
		DefaultJewels:   1,
		PremiumPoints:   100,
		PremiumJewels:   5,
		JumpPointsScale: 2,

		PremiumEffectScale: 1.2,
		DefaultSound:       "item/jewel_1.ogg",
		PremiumSound:       "item/jewel_2.ogg",

		StaticAnimSpeed:  1.0,
		SpawnedAnimSpeed: 1.143,
	}
}

var defaultTuning = DefaultTuning()
