package component

// Animation drives a looping shimmer. Speed scales FPS.
type Animation struct {
	FrameCount int
	FPS        float64
	Speed      float64
	Frame      int
	FrameTimer float64
}

var AnimationComponent = NewComponent[Animation]()
