package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// BumpRequest is added to a solid for one frame when it is hit from below.
// Pieces resting on it get thrown up.
type BumpRequest struct{}

var BumpRequestComponent = NewComponent[BumpRequest]()
