package component

type HazardKind string

const HazardLava HazardKind = "lava"

// Hazard marks a body that destroys pieces touching it.
type Hazard struct {
	Kind HazardKind
}

var HazardComponent = NewComponent[Hazard]()
