package component

// ScorePopup is the floating points text spawned by a collection.
type ScorePopup struct {
	Points int
	Frames int
	Rise   float64
}

var ScorePopupComponent = NewComponent[ScorePopup]()

// CollectEffect is the sparkle left where a piece was collected.
type CollectEffect struct {
	Scale  float64
	Frames int
	Total  int
}

var CollectEffectComponent = NewComponent[CollectEffect]()
