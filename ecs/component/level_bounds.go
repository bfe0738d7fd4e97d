package component

// LevelBounds stores the world-space bounds of the current level. Spawned
// pieces falling below Height are released.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
