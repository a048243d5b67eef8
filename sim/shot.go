package sim

import "github.com/sirupsen/logrus"

// Contest distances in feet.
const (
	wideOpenDistance = 10.0
	tightContest     = 4.0
)

// ShotCalculator is the pure shot-probability model. It holds tuning only;
// no mutable state, no randomness.
type ShotCalculator struct {
	tuning ShotTuning
}

// NewShotCalculator creates a ShotCalculator with the given tuning.
func NewShotCalculator(t ShotTuning) *ShotCalculator {
	return &ShotCalculator{tuning: t}
}

// Probability returns the make probability for one shot attempt.
//
// Layers compose in a fixed order: zone base rate, shooter zone skill,
// shot-type modifier, defender contest, shooter condition, then a situational
// multiplier (fast break, shot-clock pressure, home court). The result is
// clamped to the configured band before any draw uses it.
//
// A nil defender is treated as wide open.
func (sc *ShotCalculator) Probability(shooter *Player, position Point, defender *Player,
	defenderDistance float64, shotType ShotType, fastBreak bool, shotClock float64, homeOffense bool) float64 {

	basket := BasketFor(homeOffense)
	zone := ClassifyZone(position, basket)

	p := sc.zoneBaseRate(zone)
	p += p * skillModifier(shooter.Shooting.ForZone(zone), sc.tuning.SkillScale)
	p += sc.shotTypeModifier(shooter, shotType)
	p += sc.contestModifier(defender, defenderDistance)
	p += sc.conditionModifier(shooter)

	mult := 1.0
	if fastBreak {
		mult += sc.tuning.FastBreakBonus
	}
	if shotClock <= 4.0 {
		mult -= sc.tuning.PressurePenalty
	}
	if homeOffense {
		mult += sc.tuning.HomeCourtBonus
	}
	p *= mult
	p = clamp(p, sc.tuning.MinProbability, sc.tuning.MaxProbability)

	logrus.Debugf("shot model: %s %s from %s -> %.3f", shooter.ID, shotType, zone, p)
	return p
}

func (sc *ShotCalculator) zoneBaseRate(zone Zone) float64 {
	switch zone {
	case ZoneRim:
		return sc.tuning.BaseRim
	case ZonePaint:
		return sc.tuning.BasePaint
	case ZoneShortMidRange:
		return sc.tuning.BaseShortMid
	case ZoneLongMidRange:
		return sc.tuning.BaseLongMid
	case ZoneThree:
		return sc.tuning.BaseThree
	default:
		return sc.tuning.BaseShortMid
	}
}

// shotTypeModifier rewards dunks by vertical leap and penalizes difficult
// mechanics, with the penalty offset by the skill that powers the move.
func (sc *ShotCalculator) shotTypeModifier(shooter *Player, shotType ShotType) float64 {
	switch shotType {
	case ShotDunk:
		return 0.10 + 0.10*shooter.VerticalLeap/100
	case ShotFadeaway:
		return -0.10 + 0.06*shooter.Shooting.LongMid/100
	case ShotStepBack:
		return -0.09 + 0.06*shooter.BallHandling/100
	case ShotHook:
		return -0.04 + 0.04*shooter.Shooting.Paint/100
	case ShotFloater:
		return -0.03 + 0.03*shooter.BallHandling/100
	case ShotPullUp:
		return -0.02
	default:
		// Layups and catch-and-shoot are the neutral mechanics.
		return 0
	}
}

// contestModifier grants a small bonus when wide open and subtracts up to
// MaxContestPenalty for a tight contest, scaled by defender skill and wingspan.
func (sc *ShotCalculator) contestModifier(defender *Player, defenderDistance float64) float64 {
	if defender == nil || defenderDistance > wideOpenDistance {
		return sc.tuning.WideOpenBonus
	}
	severity := (wideOpenDistance - defenderDistance) / wideOpenDistance
	quality := (defender.Defense*0.7 + defender.Wingspan*0.3) / 100
	return -sc.tuning.MaxContestPenalty * severity * quality
}

// conditionModifier folds energy, morale, and form (maintained externally)
// into a small symmetric swing.
func (sc *ShotCalculator) conditionModifier(shooter *Player) float64 {
	condition := (shooter.Energy + shooter.Morale + shooter.Form) / 3
	return skillModifier(condition, 0.05)
}

// DetermineShotType picks a shot mechanic from zone, athleticism, ball
// handling, and defender proximity.
//
// Priority rules: dunks require elite vertical and daylight at the rim; in
// the paint, bigs with touch hook, handlers float, everyone else lays it in;
// beyond the paint a tight contest forces a step-back (good handle) or a
// fadeaway, while space yields a catch-and-shoot.
func (sc *ShotCalculator) DetermineShotType(shooter *Player, position Point, defender *Player,
	defenderDistance float64, homeOffense bool) ShotType {

	basket := BasketFor(homeOffense)
	zone := ClassifyZone(position, basket)
	contested := defender != nil && defenderDistance < 6.0

	switch zone {
	case ZoneRim:
		if shooter.VerticalLeap >= 75 && (defender == nil || defenderDistance > 2.0) {
			return ShotDunk
		}
		return ShotLayup
	case ZonePaint:
		big := shooter.Position == Center || shooter.Position == PowerForward
		switch {
		case big && shooter.Shooting.Paint >= 65:
			return ShotHook
		case shooter.BallHandling >= 70:
			return ShotFloater
		default:
			return ShotLayup
		}
	default:
		switch {
		case contested && shooter.BallHandling >= 75:
			return ShotStepBack
		case contested:
			return ShotFadeaway
		default:
			return ShotCatchAndShoot
		}
	}
}

// ExpectedValue returns expected points for a shot attempt, used by AI
// shot-selection weighting. It never mutates state.
func (sc *ShotCalculator) ExpectedValue(shooter *Player, position Point, defender *Player,
	defenderDistance float64, shotType ShotType, fastBreak bool, shotClock float64, homeOffense bool) float64 {

	basket := BasketFor(homeOffense)
	zone := ClassifyZone(position, basket)
	p := sc.Probability(shooter, position, defender, defenderDistance, shotType, fastBreak, shotClock, homeOffense)
	return p * float64(zone.PointValue())
}
