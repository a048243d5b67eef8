// Package spatial records positional snapshots and shot locations emitted
// during simulation. It is a passive recorder for analytics and
// visualization layers; nothing in it feeds back into outcome probabilities.
package spatial

// PlayerSnapshot is one player's position at a tick. Coordinates are court
// feet; each snapshot owns its own values.
type PlayerSnapshot struct {
	PlayerID  string
	X, Y      float64
	OnOffense bool
	HasBall   bool
}

// BallState is the ball's position at a tick.
type BallState struct {
	X, Y     float64
	HolderID string
	InFlight bool
}

// State is one tick of a possession: ten player snapshots plus the ball.
type State struct {
	Quarter   int
	GameClock float64 // seconds remaining in the quarter at this tick
	Players   []PlayerSnapshot
	Ball      BallState
}

// ShotRecord is one shot attempt's location and outcome.
type ShotRecord struct {
	ShooterID string
	Team      string
	X, Y      float64
	Zone      string
	Distance  float64
	Made      bool
	Points    int
	Quarter   int
	GameClock float64
}

// Tracker accumulates states and shot records for one game. Single-writer,
// game-scoped; Reset starts a new game.
type Tracker struct {
	states []State
	shots  []ShotRecord
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record appends one positional state.
func (t *Tracker) Record(state State) {
	t.states = append(t.states, state)
}

// RecordShot appends one shot record.
func (t *Tracker) RecordShot(shot ShotRecord) {
	t.shots = append(t.shots, shot)
}

// States returns all recorded states in emission order.
func (t *Tracker) States() []State {
	return t.states
}

// Shots returns all recorded shots in emission order.
func (t *Tracker) Shots() []ShotRecord {
	return t.shots
}

// StatesInRange returns the states for a quarter whose game clock lies in
// [fromClock, toClock], where fromClock >= toClock (the clock counts down).
func (t *Tracker) StatesInRange(quarter int, fromClock, toClock float64) []State {
	var out []State
	for _, s := range t.states {
		if s.Quarter == quarter && s.GameClock <= fromClock && s.GameClock >= toClock {
			out = append(out, s)
		}
	}
	return out
}

// Reset clears all recorded state for a new game.
func (t *Tracker) Reset() {
	t.states = nil
	t.shots = nil
}
