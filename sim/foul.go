package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Rule thresholds. Fixed by the rulebook, not tunable.
const (
	bonusThreshold       = 5
	doubleBonusThreshold = 10
	foulOutLimit         = 6
	technicalEjection    = 2
)

// FoulType identifies a foul occurrence.
type FoulType string

const (
	FoulPersonal  FoulType = "personal" // non-shooting defensive foul
	FoulShooting  FoulType = "shooting"
	FoulOffensive FoulType = "offensive"
	FoulTechnical FoulType = "technical"
	FoulFlagrant1 FoulType = "flagrant_1"
	FoulFlagrant2 FoulType = "flagrant_2"
)

func (t FoulType) flagrant() bool {
	return t == FoulFlagrant1 || t == FoulFlagrant2
}

// FreeThrowScenario is the free-throw situation a foul produces.
type FreeThrowScenario string

const (
	ScenarioNone       FreeThrowScenario = "none"
	ScenarioAndOne     FreeThrowScenario = "and_one"
	ScenarioTwoShots   FreeThrowScenario = "two_shots"
	ScenarioThreeShots FreeThrowScenario = "three_shots"
	ScenarioBonus      FreeThrowScenario = "bonus"
	ScenarioTechnical  FreeThrowScenario = "technical"
	ScenarioFlagrant   FreeThrowScenario = "flagrant"
)

// FreeThrowCount returns the fixed number of attempts a scenario awards.
func FreeThrowCount(s FreeThrowScenario) int {
	switch s {
	case ScenarioAndOne, ScenarioTechnical:
		return 1
	case ScenarioTwoShots, ScenarioBonus, ScenarioFlagrant:
		return 2
	case ScenarioThreeShots:
		return 3
	default:
		return 0
	}
}

// FoulEventDetail is the fully populated record CreateFoulEvent returns.
type FoulEventDetail struct {
	FoulerID   string
	FouledID   string
	FoulerTeam string
	Type       FoulType
	Scenario   FreeThrowScenario
	FreeThrows int

	// Counter states after recording this foul.
	FoulerPersonalFouls int
	FoulerTechnicals    int
	TeamFoulsInQuarter  int

	FouledOut   bool
	Ejected     bool
	Description string
}

// FoulSystem tracks foul state for one game: team fouls sub-scoped to the
// current quarter, personal and technical fouls for the full game. One
// instance per in-progress game, passed by reference to the simulator.
// Not safe for concurrent mutation; one game simulates serially.
type FoulSystem struct {
	tuning FoulTuning

	quarter       int
	teamFouls     map[string]int
	personalFouls map[string]int
	technicals    map[string]int
	ejections     map[string]bool
}

// NewFoulSystem creates a FoulSystem scoped to one game, starting in Q1.
func NewFoulSystem(t FoulTuning) *FoulSystem {
	fs := &FoulSystem{tuning: t}
	fs.ResetGame()
	return fs
}

// ResetQuarterFouls clears team-foul counters at a quarter boundary and
// advances the quarter. Personal and technical counters persist.
func (fs *FoulSystem) ResetQuarterFouls() {
	fs.teamFouls = make(map[string]int)
	fs.quarter++
}

// ResetGame clears everything for a new game.
func (fs *FoulSystem) ResetGame() {
	fs.quarter = 1
	fs.teamFouls = make(map[string]int)
	fs.personalFouls = make(map[string]int)
	fs.technicals = make(map[string]int)
	fs.ejections = make(map[string]bool)
}

// Quarter returns the current quarter.
func (fs *FoulSystem) Quarter() int {
	return fs.quarter
}

// === Probabilities ===

// FoulProbability returns the chance the defender fouls on this action.
//
// Disciplined defenders (defensive IQ, composure, closeout control) foul
// less; aggressive and gambling defenders foul more; shifty ball handlers
// draw fouls; rim attacks draw contact. A defender in foul trouble plays
// more carefully, and a trailing defense hunting the clock fouls
// intentionally late in the game.
func (fs *FoulSystem) FoulProbability(defender, handler *Player, shotType ShotType, ctx GameContext) float64 {
	if defender == nil {
		return 0
	}

	p := fs.tuning.BaseRate
	p -= skillModifier(defender.DefensiveIQ, 0.03)
	p -= skillModifier(defender.Composure, 0.02)
	p -= skillModifier(defender.Tendencies.CloseoutControl, 0.03)
	p += skillModifier(defender.Aggression, 0.04)
	p += skillModifier(defender.Tendencies.DefensiveGambling, 0.03)
	if handler != nil {
		p += skillModifier(handler.BallHandling, 0.03)
	}
	if shotType.RimAttack() {
		p += 0.06
	}

	switch fouls := fs.personalFouls[defender.ID]; {
	case fouls >= 5:
		p *= 0.5
	case fouls >= 4:
		p *= 0.7
	}

	// Defense trailing by 10 or fewer in the final two minutes fouls on
	// purpose to stop the clock.
	if ctx.LateGame() && ctx.ScoreDiff >= 1 && ctx.ScoreDiff <= 10 {
		p += 0.15
	}

	return clamp(p, fs.tuning.MinProbability, fs.tuning.MaxProbability)
}

// TechnicalProbability returns the chance a player picks up a technical.
// A player sitting on one technical reins himself in hard.
func (fs *FoulSystem) TechnicalProbability(player *Player, ctx GameContext) float64 {
	p := fs.tuning.TechnicalBaseRate
	if player.Volatile {
		p += 0.02
	}
	p -= skillModifier(player.Composure, 0.01)
	if abs(ctx.ScoreDiff) >= 20 {
		p += 0.005 // blowout frustration
	}
	if fs.technicals[player.ID] >= 1 {
		p *= 0.3
	}
	return clamp(p, fs.tuning.TechnicalMin, fs.tuning.TechnicalMax)
}

// maybeUpgradeFlagrant reviews a shooting foul for flagrant contact. Reviews
// only happen in clutch time; a triggered review splits 70/30 between
// Flagrant-1 and Flagrant-2.
func (fs *FoulSystem) maybeUpgradeFlagrant(fouler *Player, shotType ShotType, ctx GameContext, rng *rand.Rand) FoulType {
	if !ctx.IsClutchTime() {
		return FoulShooting
	}
	review := fs.tuning.FlagrantReviewRate
	review += fouler.Aggression / 100 * 0.05
	if shotType.RimAttack() {
		review += 0.04
	}
	if rng.Float64() >= review {
		return FoulShooting
	}
	if rng.Float64() < 0.7 {
		return FoulFlagrant1
	}
	return FoulFlagrant2
}

// === Scenario derivation ===

// DetermineFreeThrowScenario maps a recorded foul to its free-throw
// situation. foulerTeam is the team charged with the foul; shotMade and zone
// qualify shooting fouls.
func (fs *FoulSystem) DetermineFreeThrowScenario(foulType FoulType, foulerTeam string, shotMade bool, zone Zone) FreeThrowScenario {
	switch {
	case foulType == FoulTechnical:
		return ScenarioTechnical
	case foulType.flagrant():
		return ScenarioFlagrant
	case foulType == FoulOffensive:
		return ScenarioNone
	case foulType == FoulShooting:
		if shotMade {
			return ScenarioAndOne
		}
		if zone == ZoneThree {
			return ScenarioThreeShots
		}
		return ScenarioTwoShots
	default:
		if fs.IsInBonus(foulerTeam) {
			return ScenarioBonus
		}
		return ScenarioNone
	}
}

// === Foul recording ===

// CreateFoulEvent is the single integration point for recording a foul. It
// upgrades the foul type if a flagrant review triggers, records counters,
// derives the free-throw scenario, and flags foul-out/ejection.
//
// Precondition: call exactly once per foul occurrence. The system cannot
// detect double-counting.
func (fs *FoulSystem) CreateFoulEvent(fouler, fouled *Player, foulerTeam string, foulType FoulType,
	shotType ShotType, shotMade bool, zone Zone, ctx GameContext, rng *rand.Rand) FoulEventDetail {

	if foulType == FoulShooting {
		foulType = fs.maybeUpgradeFlagrant(fouler, shotType, ctx, rng)
	}

	if foulType == FoulTechnical {
		fs.technicals[fouler.ID]++
	} else {
		fs.personalFouls[fouler.ID]++
		// Offensive fouls are personal fouls but not team fouls.
		if foulType != FoulOffensive {
			fs.teamFouls[foulerTeam]++
		}
	}

	scenario := fs.DetermineFreeThrowScenario(foulType, foulerTeam, shotMade, zone)

	detail := FoulEventDetail{
		FoulerID:            fouler.ID,
		FoulerTeam:          foulerTeam,
		Type:                foulType,
		Scenario:            scenario,
		FreeThrows:          FreeThrowCount(scenario),
		FoulerPersonalFouls: fs.personalFouls[fouler.ID],
		FoulerTechnicals:    fs.technicals[fouler.ID],
		TeamFoulsInQuarter:  fs.teamFouls[foulerTeam],
	}
	if fouled != nil {
		detail.FouledID = fouled.ID
	}

	detail.FouledOut = fs.HasFouledOut(fouler.ID)
	if fs.technicals[fouler.ID] >= technicalEjection || foulType == FoulFlagrant2 {
		fs.ejections[fouler.ID] = true
	}
	detail.Ejected = fs.ShouldEject(fouler.ID)
	detail.Description = fs.describeFoul(fouler, fouled, detail)

	logrus.Debugf("foul: %s (%s) %s, personal=%d team=%d scenario=%s",
		fouler.Name, foulerTeam, foulType, detail.FoulerPersonalFouls,
		detail.TeamFoulsInQuarter, scenario)

	return detail
}

func (fs *FoulSystem) describeFoul(fouler, fouled *Player, d FoulEventDetail) string {
	var base string
	switch d.Type {
	case FoulTechnical:
		base = fmt.Sprintf("technical foul on %s", fouler.Name)
	case FoulFlagrant1:
		base = fmt.Sprintf("flagrant-1 on %s for excessive contact", fouler.Name)
	case FoulFlagrant2:
		base = fmt.Sprintf("flagrant-2 on %s, ejected on review", fouler.Name)
	case FoulOffensive:
		base = fmt.Sprintf("offensive foul on %s, charge taken", fouler.Name)
	case FoulShooting:
		if fouled != nil {
			base = fmt.Sprintf("%s fouls %s on the shot", fouler.Name, fouled.Name)
		} else {
			base = fmt.Sprintf("shooting foul on %s", fouler.Name)
		}
	default:
		if fouled != nil {
			base = fmt.Sprintf("%s fouls %s", fouler.Name, fouled.Name)
		} else {
			base = fmt.Sprintf("personal foul on %s", fouler.Name)
		}
	}
	switch {
	case d.Ejected:
		return base + ", he is out of the game"
	case d.FouledOut:
		return fmt.Sprintf("%s, his %dth, he fouls out", base, d.FoulerPersonalFouls)
	case d.Scenario == ScenarioBonus:
		return base + ", team is in the bonus"
	default:
		return base
	}
}

// === Read accessors ===

// PlayerFouls returns a player's personal foul count.
func (fs *FoulSystem) PlayerFouls(playerID string) int {
	return fs.personalFouls[playerID]
}

// Technicals returns a player's technical foul count.
func (fs *FoulSystem) Technicals(playerID string) int {
	return fs.technicals[playerID]
}

// TeamFouls returns a team's foul count for the current quarter.
func (fs *FoulSystem) TeamFouls(team string) int {
	return fs.teamFouls[team]
}

// IsInBonus reports whether the opponent shoots bonus free throws on the
// team's next non-shooting foul.
func (fs *FoulSystem) IsInBonus(team string) bool {
	return fs.teamFouls[team] >= bonusThreshold
}

// IsInDoubleBonus reports the double-bonus state.
func (fs *FoulSystem) IsInDoubleBonus(team string) bool {
	return fs.teamFouls[team] >= doubleBonusThreshold
}

// HasFouledOut reports whether the player has reached the personal-foul limit.
func (fs *FoulSystem) HasFouledOut(playerID string) bool {
	return fs.personalFouls[playerID] >= foulOutLimit
}

// ShouldEject reports whether the player has been ejected: two technicals,
// or a flagrant-2.
func (fs *FoulSystem) ShouldEject(playerID string) bool {
	return fs.ejections[playerID] || fs.technicals[playerID] >= technicalEjection
}

// FoulTrouble returns a qualitative label for display layers.
func (fs *FoulSystem) FoulTrouble(playerID string) string {
	switch fouls := fs.personalFouls[playerID]; {
	case fouls >= foulOutLimit:
		return "fouled out"
	case fouls == 5:
		return "one from fouling out"
	case fouls == 4:
		return "serious foul trouble"
	case fouls == 3:
		return "foul trouble"
	default:
		return "no foul trouble"
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
