package component

import "github.com/milk9111/goldpiece/goldpiece"

type Goldpiece struct {
	Piece *goldpiece.Piece
}

var GoldpieceComponent = NewComponent[Goldpiece]()

// LevelObject links a level-authored entity to its savegame slot.
type LevelObject struct {
	ID string
}

var LevelObjectComponent = NewComponent[LevelObject]()
