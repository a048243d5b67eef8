package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ViolationChecker runs the four stateless rule-violation checks. Checks are
// evaluated in fixed priority order (traveling, backcourt, three-second,
// double-dribble) and the first one that fires short-circuits the rest.
type ViolationChecker struct {
	tuning ViolationTuning
}

// NewViolationChecker creates a ViolationChecker with the given tuning.
func NewViolationChecker(t ViolationTuning) *ViolationChecker {
	return &ViolationChecker{tuning: t}
}

// Check evaluates the checks for one possession. Returns nil when no
// violation occurs.
func (vc *ViolationChecker) Check(offense *Lineup, handler *Player, ctx GameContext, rng *rand.Rand) *ViolationEventDetail {
	detail := vc.check(offense, handler, ctx, rng)
	if detail != nil {
		logrus.Debugf("violation: %s on %s", detail.Type, detail.PlayerID)
	}
	return detail
}

func (vc *ViolationChecker) check(offense *Lineup, handler *Player, ctx GameContext, rng *rand.Rand) *ViolationEventDetail {
	if p := vc.TravelingProbability(handler, ctx); rng.Float64() < p {
		return &ViolationEventDetail{
			PlayerID:    handler.ID,
			Type:        ViolationTraveling,
			Description: fmt.Sprintf("%s shuffles his feet and is called for traveling", handler.Name),
		}
	}
	if p := vc.BackcourtProbability(handler, ctx); rng.Float64() < p {
		return &ViolationEventDetail{
			PlayerID:    handler.ID,
			Type:        ViolationBackcourt,
			Description: fmt.Sprintf("%s steps over midcourt, backcourt violation", handler.Name),
		}
	}
	if detail := vc.checkThreeSecond(offense, rng); detail != nil {
		return detail
	}
	if p := vc.DoubleDribbleProbability(handler, ctx); rng.Float64() < p {
		return &ViolationEventDetail{
			PlayerID:    handler.ID,
			Type:        ViolationDoubleDribble,
			Description: fmt.Sprintf("%s picks up his dribble and puts it down again, double dribble", handler.Name),
		}
	}
	return nil
}

// TravelingProbability is driven down by ball handling and composure and up
// by shot-clock pressure and fatigue.
func (vc *ViolationChecker) TravelingProbability(handler *Player, ctx GameContext) float64 {
	band := vc.tuning.Traveling
	p := band.BaseRate
	p -= skillModifier(handler.BallHandling, 0.008)
	p -= skillModifier(handler.Composure, 0.004)
	p += (100 - handler.Energy) / 100 * 0.005
	if ctx.ShotClockPressure() {
		p += 0.008
	}
	return clamp(p, band.Min, band.Max)
}

// BackcourtProbability is driven down by basketball IQ and experience.
func (vc *ViolationChecker) BackcourtProbability(handler *Player, ctx GameContext) float64 {
	band := vc.tuning.Backcourt
	p := band.BaseRate
	p -= skillModifier(handler.BasketballIQ, 0.002)
	p -= skillModifier(handler.Experience, 0.002)
	if ctx.ShotClockPressure() {
		p += 0.003
	}
	return clamp(p, band.Min, band.Max)
}

// ThreeSecondProbability applies only to centers and power forwards, the
// players who camp in the lane. Other positions return 0.
func (vc *ViolationChecker) ThreeSecondProbability(player *Player) float64 {
	if player.Position != Center && player.Position != PowerForward {
		return 0
	}
	band := vc.tuning.ThreeSecond
	p := band.BaseRate
	p -= skillModifier(player.BasketballIQ, 0.003)
	p -= skillModifier(player.Experience, 0.002)
	return clamp(p, band.Min, band.Max)
}

// checkThreeSecond iterates the whole offensive lineup; any flagged player
// ends the check.
func (vc *ViolationChecker) checkThreeSecond(offense *Lineup, rng *rand.Rand) *ViolationEventDetail {
	for _, player := range offense.Players {
		if player == nil {
			continue
		}
		p := vc.ThreeSecondProbability(player)
		if p <= 0 {
			continue
		}
		if rng.Float64() < p {
			return &ViolationEventDetail{
				PlayerID:    player.ID,
				Type:        ViolationThreeSecond,
				Description: fmt.Sprintf("%s camps in the lane, three-second violation", player.Name),
			}
		}
	}
	return nil
}

// DoubleDribbleProbability is driven down by ball handling and up by fatigue.
func (vc *ViolationChecker) DoubleDribbleProbability(handler *Player, ctx GameContext) float64 {
	band := vc.tuning.DoubleDribble
	p := band.BaseRate
	p -= skillModifier(handler.BallHandling, 0.004)
	p += (100 - handler.Energy) / 100 * 0.004
	if ctx.ShotClockPressure() {
		p += 0.004
	}
	return clamp(p, band.Min, band.Max)
}
