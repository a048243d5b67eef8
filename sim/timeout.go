package sim

import "fmt"

// TimeoutReason identifies why a timeout is recommended.
type TimeoutReason string

const (
	ReasonStopRun       TimeoutReason = "stop_run"
	ReasonIceFreeThrow  TimeoutReason = "ice_free_throw"
	ReasonAdvanceBall   TimeoutReason = "advance_ball"
	ReasonDrawPlay      TimeoutReason = "draw_play"
	ReasonRestPlayers   TimeoutReason = "rest_players"
	ReasonUseItOrLoseIt TimeoutReason = "use_it_or_lose_it"
)

// TimeoutPriority ranks decision urgency.
type TimeoutPriority int

const (
	PriorityNone TimeoutPriority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

func (p TimeoutPriority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "none"
	}
}

// TimeoutContext is the situational snapshot the decision policy consumes.
// ScoreDiff is from the deciding team's perspective: negative means trailing.
type TimeoutContext struct {
	Quarter           int
	GameClock         float64
	ScoreDiff         int
	TimeoutsRemaining int

	OpponentRunPoints        int
	OpponentFreeThrowPending bool
	OpponentJustScored       bool
	IsClutchTime             bool

	// PlayerEnergy holds current energy (0-100) for the players in Lineup.
	PlayerEnergy map[string]float64
	Lineup       []string
}

// TimeoutDecision is the policy's recommendation.
type TimeoutDecision struct {
	ShouldCall  bool
	Reason      TimeoutReason
	Priority    TimeoutPriority
	Description string
}

// Decision thresholds.
const (
	runStopThreshold    = 8
	iceMargin           = 3
	advanceTrailMargin  = 8
	fatiguedEnergy      = 55.0
	fatiguedPlayersMin  = 2
	useItOrLoseItWindow = 35.0 // seconds before halftime
)

// TimeoutIntelligence is the coaching layer's timeout policy plus a scoring
// run tracker. The tracker state feeds the stop-the-run condition; it is
// possession-scoped and single-writer. The simulator never calls this; the
// surrounding coaching layer does.
type TimeoutIntelligence struct {
	runTeam   string
	runPoints int
}

// NewTimeoutIntelligence creates a TimeoutIntelligence with no active run.
func NewTimeoutIntelligence() *TimeoutIntelligence {
	return &TimeoutIntelligence{}
}

// ShouldCallTimeout evaluates six ranked conditions in strict order and
// returns the first match. With no timeouts remaining, or no match, it
// returns a zero decision.
func (ti *TimeoutIntelligence) ShouldCallTimeout(ctx TimeoutContext) TimeoutDecision {
	if ctx.TimeoutsRemaining <= 0 {
		return TimeoutDecision{}
	}

	// 1. Critical: the opponent has an unanswered scoring run.
	if ctx.OpponentRunPoints >= runStopThreshold {
		return TimeoutDecision{
			ShouldCall:  true,
			Reason:      ReasonStopRun,
			Priority:    PriorityCritical,
			Description: fmt.Sprintf("stop an unanswered %d-0 run", ctx.OpponentRunPoints),
		}
	}

	// 2. High: ice a clutch free-throw shooter in a tight game.
	if ctx.OpponentFreeThrowPending && ctx.IsClutchTime && abs(ctx.ScoreDiff) <= iceMargin {
		return TimeoutDecision{
			ShouldCall:  true,
			Reason:      ReasonIceFreeThrow,
			Priority:    PriorityHigh,
			Description: "ice the free-throw shooter",
		}
	}

	// 3. High: advance the ball while trailing late.
	if ctx.Quarter >= 4 && ctx.GameClock <= 120 && ctx.ScoreDiff < 0 && ctx.ScoreDiff >= -advanceTrailMargin {
		return TimeoutDecision{
			ShouldCall:  true,
			Reason:      ReasonAdvanceBall,
			Priority:    PriorityHigh,
			Description: "advance the ball into the frontcourt",
		}
	}

	// 4. Medium: draw up a play after an opponent score in clutch time.
	if ctx.OpponentJustScored && ctx.IsClutchTime {
		return TimeoutDecision{
			ShouldCall:  true,
			Reason:      ReasonDrawPlay,
			Priority:    PriorityMedium,
			Description: "draw up a play out of the timeout",
		}
	}

	// 5. Medium: rest a gassed lineup outside clutch time.
	if !ctx.IsClutchTime && ti.fatiguedCount(ctx) >= fatiguedPlayersMin {
		return TimeoutDecision{
			ShouldCall:  true,
			Reason:      ReasonRestPlayers,
			Priority:    PriorityMedium,
			Description: "rest fatigued players",
		}
	}

	// 6. Low: mandatory pre-halftime timeout expires if unused.
	if ctx.Quarter == 2 && ctx.GameClock <= useItOrLoseItWindow {
		return TimeoutDecision{
			ShouldCall:  true,
			Reason:      ReasonUseItOrLoseIt,
			Priority:    PriorityLow,
			Description: "use the timeout before it is lost at halftime",
		}
	}

	return TimeoutDecision{}
}

func (ti *TimeoutIntelligence) fatiguedCount(ctx TimeoutContext) int {
	count := 0
	for _, id := range ctx.Lineup {
		if energy, ok := ctx.PlayerEnergy[id]; ok && energy < fatiguedEnergy {
			count++
		}
	}
	return count
}

// TrackScore accumulates consecutive points by the scoring team and returns
// the current run. A score by the other team starts a new run.
func (ti *TimeoutIntelligence) TrackScore(team string, points int) int {
	if points <= 0 {
		return ti.runPoints
	}
	if team != ti.runTeam {
		ti.runTeam = team
		ti.runPoints = 0
	}
	ti.runPoints += points
	return ti.runPoints
}

// ResetRun clears the run tracker. Call on a timeout or a quarter boundary.
func (ti *TimeoutIntelligence) ResetRun() {
	ti.runTeam = ""
	ti.runPoints = 0
}

// RunPoints returns the active run's point total.
func (ti *TimeoutIntelligence) RunPoints() int {
	return ti.runPoints
}

// RunTeam returns the team holding the active run, or "" if none.
func (ti *TimeoutIntelligence) RunTeam() string {
	return ti.runTeam
}
