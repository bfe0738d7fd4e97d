package goldpiece

import (
	"math"

	"github.com/jakecoffman/cp"
)

type scoreCall struct {
	points int
	x, y   float64
}

type effectCall struct {
	x, y, scale float64
}

// recorder implements every collaborator and remembers each call.
type recorder struct {
	inRange   bool
	grounded  bool
	currency  []int
	scores    []scoreCall
	sounds    []string
	effects   []effectCall
	notified  []*Piece
	destroyed []*Piece
	order     []string
}

func newRecorder() *recorder {
	return &recorder{inRange: true}
}

func (r *recorder) env() Env {
	return Env{
		Range:   r,
		Ground:  r,
		Score:   r,
		Audio:   r,
		Effects: r,
		Scripts: r,
		Sprites: r,
	}
}

func (r *recorder) IsInRange(*Piece, float64) bool { return r.inRange }
func (r *recorder) IsVisibleOnScreen(*Piece) bool  { return r.inRange }
func (r *recorder) HasGroundSupport(*Piece) bool   { return r.grounded }

func (r *recorder) AddCurrency(n int) {
	r.currency = append(r.currency, n)
	r.order = append(r.order, "currency")
}

func (r *recorder) AddScore(n int, x, y float64) {
	r.scores = append(r.scores, scoreCall{n, x, y})
	r.order = append(r.order, "score")
}

func (r *recorder) PlaySound(id string) {
	r.sounds = append(r.sounds, id)
	r.order = append(r.order, "sound")
}

func (r *recorder) SpawnCollectEffect(x, y, scale float64) {
	r.effects = append(r.effects, effectCall{x, y, scale})
	r.order = append(r.order, "effect")
}

func (r *recorder) NotifyActivated(p *Piece) {
	r.notified = append(r.notified, p)
	r.order = append(r.order, "script")
}

func (r *recorder) Destroy(p *Piece) {
	r.destroyed = append(r.destroyed, p)
	r.order = append(r.order, "destroy")
}

func (r *recorder) totalCurrency() int {
	n := 0
	for _, c := range r.currency {
		n += c
	}
	return n
}

func (r *recorder) totalScore() int {
	n := 0
	for _, s := range r.scores {
		n += s.points
	}
	return n
}

func vec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
