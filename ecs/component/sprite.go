package component

import "image/color"

// Sprite is a flat colored box; ImageSet names the art the box stands in for.
type Sprite struct {
	Color    color.RGBA
	ImageSet string
	Hidden   bool
}

var SpriteComponent = NewComponent[Sprite]()
