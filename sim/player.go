package sim

// Position is a player's lineup slot.
type Position int

const (
	PointGuard Position = iota
	ShootingGuard
	SmallForward
	PowerForward
	Center
)

func (p Position) String() string {
	switch p {
	case PointGuard:
		return "PG"
	case ShootingGuard:
		return "SG"
	case SmallForward:
		return "SF"
	case PowerForward:
		return "PF"
	case Center:
		return "C"
	default:
		return "?"
	}
}

// ShootingSkills holds per-zone make-rate ratings, 0-100.
type ShootingSkills struct {
	Rim       float64 `yaml:"rim"`
	Paint     float64 `yaml:"paint"`
	ShortMid  float64 `yaml:"short_mid"`
	LongMid   float64 `yaml:"long_mid"`
	Three     float64 `yaml:"three"`
	FreeThrow float64 `yaml:"free_throw"`
}

// ForZone returns the rating relevant to the given shot zone.
func (s ShootingSkills) ForZone(z Zone) float64 {
	switch z {
	case ZoneRim:
		return s.Rim
	case ZonePaint:
		return s.Paint
	case ZoneShortMidRange:
		return s.ShortMid
	case ZoneLongMidRange:
		return s.LongMid
	case ZoneThree:
		return s.Three
	default:
		return s.ShortMid
	}
}

// Tendencies are secondary attributes, 0-100, modulating behavior beyond raw
// skill. 50 is neutral for every tendency.
type Tendencies struct {
	BallMovement      float64 `yaml:"ball_movement"`      // willingness to move the ball (reduces turnovers)
	RiskTolerance     float64 `yaml:"risk_tolerance"`     // appetite for risky passes and drives
	ShotSelection     float64 `yaml:"shot_selection"`     // patience waiting for a good look
	ShotDiscipline    float64 `yaml:"shot_discipline"`    // restraint from forcing bad shots
	BallStopping      float64 `yaml:"ball_stopping"`      // tendency to hold the ball and isolate
	CloseoutControl   float64 `yaml:"closeout_control"`   // body control closing out on shooters
	DefensiveGambling float64 `yaml:"defensive_gambling"` // reaching and jumping passing lanes
	EffortConsistency float64 `yaml:"effort_consistency"` // effort held under fatigue
}

// Player is a read-only attribute snapshot consumed by the probability
// engines. All skill ratings are 0-100. The simulator never mutates it;
// energy/fatigue bookkeeping belongs to an external collaborator.
type Player struct {
	ID       string
	Name     string
	Position Position

	// Offense
	Shooting     ShootingSkills
	BallHandling float64
	VerticalLeap float64

	// Defense
	Defense     float64
	Block       float64
	Wingspan    float64
	DefensiveIQ float64

	// Mental
	BasketballIQ float64
	Composure    float64
	Clutch       float64
	Aggression   float64
	Experience   float64
	Volatile     bool // short-fuse personality, prone to technicals

	// Condition, maintained externally between possessions.
	Energy float64
	Morale float64
	Form   float64

	Tendencies Tendencies
}

// skillModifier maps a 0-100 rating to a symmetric modifier in
// [-scale, +scale] centered on a rating of 50.
func skillModifier(rating, scale float64) float64 {
	return (rating - 50) / 50 * scale
}

// Lineup is the five players a team has on the floor.
type Lineup struct {
	Team    string
	Players [5]*Player
}

// IDs returns the player IDs in lineup order.
func (l *Lineup) IDs() []string {
	ids := make([]string, 0, len(l.Players))
	for _, p := range l.Players {
		if p != nil {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// ByID returns the lineup player with the given ID, or nil.
func (l *Lineup) ByID(id string) *Player {
	for _, p := range l.Players {
		if p != nil && p.ID == id {
			return p
		}
	}
	return nil
}

// AtPosition returns the lineup player at the given position, or nil.
func (l *Lineup) AtPosition(pos Position) *Player {
	for _, p := range l.Players {
		if p != nil && p.Position == pos {
			return p
		}
	}
	return nil
}
