package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX       float64
	Jump        bool
	JumpPressed bool
	// Debug actions.
	SpawnFalling bool
	SpawnJumping bool
	Bump         bool
}

var InputComponent = NewComponent[Input]()
