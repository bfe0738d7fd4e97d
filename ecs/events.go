package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventGoldpieceCollected carries a GoldpieceCollected.
	EventGoldpieceCollected = "goldpiece.collected"
	// EventGoldpieceLost carries a GoldpieceLost.
	EventGoldpieceLost = "goldpiece.lost"
)

// GoldpieceCollected is pushed after a piece paid out.
type GoldpieceCollected struct {
	Entity  Entity
	LevelID string
	Kind    string
	Color   string
	Points  int
	Jewels  int
	X, Y    float64
}

// GoldpieceLost is pushed when a piece was removed without paying out, e.g. by lava.
type GoldpieceLost struct {
	Entity  Entity
	LevelID string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
