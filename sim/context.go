package sim

import "math"

// Clutch time: fourth quarter or later, under five minutes, within five points.
const (
	clutchQuarter   = 4
	clutchClockSecs = 300.0
	clutchMargin    = 5
)

// GameContext is the per-possession situational snapshot. It is constructed
// fresh for each possession and immutable for the duration of its resolution.
type GameContext struct {
	Quarter   int
	GameClock float64 // seconds remaining in the quarter
	ShotClock float64 // seconds remaining on the shot clock

	// ScoreDiff is from the offense's perspective: positive means the
	// offense leads.
	ScoreDiff int

	HomeOffense bool

	// TimeoutJustCalled marks that a timeout immediately preceded this
	// possession (icing a free-throw shooter, resetting a run).
	TimeoutJustCalled bool
}

// IsClutchTime reports whether the possession happens in clutch time.
func (c GameContext) IsClutchTime() bool {
	return c.Quarter >= clutchQuarter &&
		c.GameClock <= clutchClockSecs &&
		int(math.Abs(float64(c.ScoreDiff))) <= clutchMargin
}

// ShotClockPressure reports a late shot-clock situation forcing a rushed look.
func (c GameContext) ShotClockPressure() bool {
	return c.ShotClock <= 4.0
}

// LateGame reports the final two minutes of the fourth quarter or overtime.
func (c GameContext) LateGame() bool {
	return c.Quarter >= 4 && c.GameClock <= 120.0
}
