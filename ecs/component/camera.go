package component

// Camera follows the player. X and Y are the top-left corner of the view.
type Camera struct {
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
