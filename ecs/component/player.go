package component

type Player struct {
	MoveSpeed float64
	JumpSpeed float64
	Gravity   float64
	MaxFall   float64

	VX       float64
	VY       float64
	OnGround bool
	// Facing is -1 or 1.
	Facing float64
}

var PlayerComponent = NewComponent[Player]()
