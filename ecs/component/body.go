package component

import "github.com/milk9111/goldpiece/goldpiece"

// Body is an axis-aligned collider anchored at the entity's Transform.
type Body struct {
	Width  float64
	Height float64
	Mass   goldpiece.Mass
	Group  goldpiece.Group
	Type   goldpiece.ObstacleType
	Ghost  bool
}

var BodyComponent = NewComponent[Body]()
