package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// FreeThrowHandler resolves free-throw sequences. Attempts within one
// sequence are independent draws with no cross-attempt memory; real shooting
// streaks show momentum, but that is deliberately not modeled here.
type FreeThrowHandler struct {
	tuning FreeThrowTuning
}

// NewFreeThrowHandler creates a FreeThrowHandler with the given tuning.
func NewFreeThrowHandler(t FreeThrowTuning) *FreeThrowHandler {
	return &FreeThrowHandler{tuning: t}
}

// SingleProbability returns the make probability for one attempt.
// finalOfSequence marks the last attempt of a multi-shot sequence, which
// carries extra pressure in clutch time.
func (h *FreeThrowHandler) SingleProbability(shooter *Player, ctx GameContext, finalOfSequence bool) float64 {
	p := shooter.Shooting.FreeThrow / 100

	if ctx.IsClutchTime() {
		p += skillModifier(shooter.Clutch, 0.05)
		if finalOfSequence {
			p -= h.tuning.FinalAttemptPenalty
		}
	}
	p += skillModifier(shooter.Composure, 0.03)
	if ctx.TimeoutJustCalled {
		p -= h.tuning.IcedPenalty
	}

	return clamp(p, h.tuning.MinProbability, h.tuning.MaxProbability)
}

// Resolve shoots the full sequence. Zero or negative attempts produce an
// empty result rather than an error.
func (h *FreeThrowHandler) Resolve(shooter *Player, attempts int, ctx GameContext, rng *rand.Rand) FreeThrowResult {
	result := FreeThrowResult{ShooterID: shooter.ID}
	if attempts <= 0 {
		result.Description = fmt.Sprintf("%s has no free throws to shoot", shooter.Name)
		return result
	}

	result.Attempts = attempts
	result.Results = make([]bool, 0, attempts)
	for i := 0; i < attempts; i++ {
		final := attempts > 1 && i == attempts-1
		p := h.SingleProbability(shooter, ctx, final)
		made := rng.Float64() < p
		if made {
			result.Makes++
		}
		result.Results = append(result.Results, made)
	}

	result.Description = freeThrowDescription(shooter.Name, result.Makes, result.Attempts)
	logrus.Debugf("free throws: %s", result.Description)
	return result
}

// ExpectedPoints sums per-attempt probabilities for AI decision use. Pure;
// no draws, no state.
func (h *FreeThrowHandler) ExpectedPoints(shooter *Player, attempts int, ctx GameContext) float64 {
	if attempts <= 0 {
		return 0
	}
	total := 0.0
	for i := 0; i < attempts; i++ {
		final := attempts > 1 && i == attempts-1
		total += h.SingleProbability(shooter, ctx, final)
	}
	return total
}

func freeThrowDescription(name string, makes, attempts int) string {
	switch {
	case attempts == 1 && makes == 1:
		return fmt.Sprintf("%s makes the free throw", name)
	case attempts == 1:
		return fmt.Sprintf("%s misses the free throw", name)
	case makes == attempts:
		return fmt.Sprintf("%s makes all %d free throws", name, attempts)
	case makes == 0:
		return fmt.Sprintf("%s misses all %d free throws", name, attempts)
	default:
		return fmt.Sprintf("%s makes %d of %d free throws", name, makes, attempts)
	}
}
