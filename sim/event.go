package sim

import (
	"github.com/google/uuid"

	"github.com/courtsim/courtsim/sim/spatial"
)

// EventType discriminates PossessionEvent records.
type EventType string

const (
	EventPass      EventType = "pass"
	EventShot      EventType = "shot"
	EventBlock     EventType = "block"
	EventFoul      EventType = "foul"
	EventTurnover  EventType = "turnover"
	EventViolation EventType = "violation"
	EventFreeThrow EventType = "free_throw"
)

// ShotType is the mechanical form of a shot attempt.
type ShotType string

const (
	ShotDunk          ShotType = "dunk"
	ShotLayup         ShotType = "layup"
	ShotHook          ShotType = "hook"
	ShotFloater       ShotType = "floater"
	ShotFadeaway      ShotType = "fadeaway"
	ShotStepBack      ShotType = "step_back"
	ShotPullUp        ShotType = "pull_up"
	ShotCatchAndShoot ShotType = "catch_and_shoot"
)

// RimAttack reports whether the shot type attacks the rim directly. Rim
// attacks draw more contact and more fouls.
func (s ShotType) RimAttack() bool {
	return s == ShotDunk || s == ShotLayup
}

// ShotEventDetail carries shot-specific fields on an EventShot record.
type ShotEventDetail struct {
	Type      ShotType
	Zone      Zone
	Distance  float64 // feet from the basket
	Contested bool
	Made      bool
	Blocked   bool
}

// ViolationType identifies a rule violation.
type ViolationType string

const (
	ViolationTraveling     ViolationType = "traveling"
	ViolationBackcourt     ViolationType = "backcourt"
	ViolationThreeSecond   ViolationType = "three_second"
	ViolationDoubleDribble ViolationType = "double_dribble"
)

// ViolationEventDetail describes a rule violation that ended the possession.
type ViolationEventDetail struct {
	PlayerID    string
	Type        ViolationType
	Description string
}

// FreeThrowResult aggregates one free-throw sequence.
type FreeThrowResult struct {
	ShooterID   string
	Attempts    int
	Makes       int
	Results     []bool // per-attempt outcomes in shooting order
	Description string
}

// PossessionEvent is one atomic occurrence within a possession. Events are
// append-only and ordered by Sequence; they are never mutated after creation.
type PossessionEvent struct {
	Sequence   int
	Type       EventType
	ActorID    string
	TargetID   string // pass target, when applicable
	DefenderID string
	Location   Point
	Points     int

	// Type-specific payloads; exactly one is non-nil for shot, foul,
	// violation and free-throw events.
	Shot       *ShotEventDetail
	Foul       *FoulEventDetail
	Violation  *ViolationEventDetail
	FreeThrows *FreeThrowResult
}

// PossessionOutcome is the terminal classification of a possession. Every
// possession produces exactly one.
type PossessionOutcome string

const (
	OutcomeScore    PossessionOutcome = "score"
	OutcomeMiss     PossessionOutcome = "miss"
	OutcomeTurnover PossessionOutcome = "turnover"
	OutcomeBlock    PossessionOutcome = "block"
	OutcomeFoul     PossessionOutcome = "foul"
)

// PossessionResult aggregates everything one possession produced. Created
// once per possession and returned to the caller; the engine retains no
// reference to it.
type PossessionResult struct {
	ID           string
	OffenseTeam  string
	DefenseTeam  string
	Events       []PossessionEvent
	Snapshots    []spatial.State
	Outcome      PossessionOutcome
	Points       int
	Duration     float64 // simulated seconds consumed
	StartClock   float64 // game clock at possession start
	EndClock     float64 // game clock at possession end
}

func newPossessionResult(offense, defense string, startClock float64) *PossessionResult {
	return &PossessionResult{
		ID:          uuid.NewString(),
		OffenseTeam: offense,
		DefenseTeam: defense,
		StartClock:  startClock,
	}
}

// append adds an event, assigning the next emission sequence number.
func (r *PossessionResult) append(ev PossessionEvent) {
	ev.Sequence = len(r.Events)
	r.Events = append(r.Events, ev)
}
