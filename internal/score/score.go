package score

// Tracker is a per-session point counter. Starts at zero, never persisted.
type Tracker struct {
	points int
}

// New returns a Tracker at zero.
func New() *Tracker { return &Tracker{} }

// Current returns the running total.
func (t *Tracker) Current() int { return t.points }

// Add adjusts the total by points. Negative values are accepted, though the
// current game flows only ever award +1.
func (t *Tracker) Add(points int) { t.points += points }
