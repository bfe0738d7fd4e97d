package component

type JewelCounter struct {
	Jewels       int
	Points       int
	RenderedText string
}

var JewelCounterComponent = NewComponent[JewelCounter]()
