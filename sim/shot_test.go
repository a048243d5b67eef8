package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func awayRimSpot() Point {
	basket := BasketFor(false)
	return Point{X: basket.X + 2, Y: basket.Y}
}

func awayThreeSpot() Point {
	basket := BasketFor(false)
	return Point{X: basket.X + 25, Y: basket.Y}
}

func TestShotCalculator_ProbabilityWithinBand(t *testing.T) {
	// Sweep attribute extremes; every probability must stay in the band.
	sc := NewShotCalculator(DefaultTuning().Shot)
	spots := []Point{awayRimSpot(), awayThreeSpot(), {X: 20, Y: 10}, {X: 15, Y: 40}}
	types := []ShotType{ShotDunk, ShotLayup, ShotHook, ShotFloater, ShotFadeaway, ShotStepBack, ShotCatchAndShoot}

	for _, rating := range []float64{0, 25, 50, 75, 100} {
		shooter := testPlayer("s", ShootingGuard)
		shooter.Shooting = ShootingSkills{Rim: rating, Paint: rating, ShortMid: rating, LongMid: rating, Three: rating, FreeThrow: rating}
		shooter.VerticalLeap = rating
		shooter.BallHandling = rating
		shooter.Energy = rating
		shooter.Morale = rating
		shooter.Form = rating

		defender := testPlayer("d", ShootingGuard)
		defender.Defense = 100 - rating
		defender.Wingspan = 100 - rating

		for _, spot := range spots {
			for _, st := range types {
				for _, dist := range []float64{0.5, 3, 8, 15} {
					p := sc.Probability(shooter, spot, defender, dist, st, true, 2, false)
					assert.GreaterOrEqual(t, p, 0.02, "rating=%v spot=%v type=%v dist=%v", rating, spot, st, dist)
					assert.LessOrEqual(t, p, 0.95, "rating=%v spot=%v type=%v dist=%v", rating, spot, st, dist)
				}
			}
		}
	}
}

func TestShotCalculator_EliteFinisherWideOpenNearCeiling(t *testing.T) {
	// GIVEN a max-rated finisher, wide open at the rim, on a fast break
	sc := NewShotCalculator(DefaultTuning().Shot)
	shooter := testPlayer("elite", Center)
	shooter.Shooting.Rim = 100
	shooter.VerticalLeap = 100
	shooter.Energy, shooter.Morale, shooter.Form = 100, 100, 100

	// WHEN the defender is rated 0 and 12 feet away
	defender := testPlayer("statue", Center)
	defender.Defense = 0
	defender.Wingspan = 0
	p := sc.Probability(shooter, awayRimSpot(), defender, 12, ShotDunk, true, 20, false)

	// THEN the probability sits at the clamp ceiling
	assert.InDelta(t, 0.95, p, 0.011)
}

func TestShotCalculator_NilDefenderTreatedWideOpen(t *testing.T) {
	sc := NewShotCalculator(DefaultTuning().Shot)
	shooter := testPlayer("s", SmallForward)

	withNil := sc.Probability(shooter, awayRimSpot(), nil, 0, ShotLayup, false, 20, false)
	withFar := sc.Probability(shooter, awayRimSpot(), testPlayer("d", SmallForward), 15, ShotLayup, false, 20, false)

	assert.Equal(t, withFar, withNil)
}

func TestShotCalculator_TightContestLowersProbability(t *testing.T) {
	sc := NewShotCalculator(DefaultTuning().Shot)
	shooter := testPlayer("s", ShootingGuard)
	defender := testPlayer("d", ShootingGuard)
	defender.Defense = 90
	defender.Wingspan = 90

	open := sc.Probability(shooter, awayThreeSpot(), defender, 12, ShotCatchAndShoot, false, 20, false)
	tight := sc.Probability(shooter, awayThreeSpot(), defender, 1, ShotCatchAndShoot, false, 20, false)

	assert.Less(t, tight, open)
}

func TestShotCalculator_HomeCourtBonus(t *testing.T) {
	sc := NewShotCalculator(DefaultTuning().Shot)
	shooter := testPlayer("s", ShootingGuard)

	// Same distance from each side's basket.
	awayBasket := BasketFor(false)
	homeBasket := BasketFor(true)
	awaySpot := Point{X: awayBasket.X + 10, Y: awayBasket.Y}
	homeSpot := Point{X: homeBasket.X - 10, Y: homeBasket.Y}

	away := sc.Probability(shooter, awaySpot, nil, 0, ShotFloater, false, 20, false)
	home := sc.Probability(shooter, homeSpot, nil, 0, ShotFloater, false, 20, true)

	assert.Greater(t, home, away)
}

func TestShotCalculator_ZoneIsBasketRelative(t *testing.T) {
	// The same spot reads as a different zone depending on which basket the
	// offense attacks.
	nearAway := Point{X: 14, Y: 25}
	assert.Equal(t, ZonePaint, ClassifyZone(nearAway, BasketFor(false)))
	assert.Equal(t, ZoneThree, ClassifyZone(nearAway, BasketFor(true)))
}

func TestDetermineShotType_PriorityRules(t *testing.T) {
	sc := NewShotCalculator(DefaultTuning().Shot)

	t.Run("elite vertical with daylight dunks", func(t *testing.T) {
		shooter := testPlayer("s", SmallForward)
		shooter.VerticalLeap = 90
		got := sc.DetermineShotType(shooter, awayRimSpot(), nil, 0, false)
		assert.Equal(t, ShotDunk, got)
	})

	t.Run("crowded rim forces the layup", func(t *testing.T) {
		shooter := testPlayer("s", SmallForward)
		shooter.VerticalLeap = 90
		defender := testPlayer("d", Center)
		got := sc.DetermineShotType(shooter, awayRimSpot(), defender, 1.0, false)
		assert.Equal(t, ShotLayup, got)
	})

	t.Run("big with touch hooks in the paint", func(t *testing.T) {
		shooter := testPlayer("s", Center)
		shooter.Shooting.Paint = 80
		basket := BasketFor(false)
		spot := Point{X: basket.X + 7, Y: basket.Y}
		got := sc.DetermineShotType(shooter, spot, nil, 0, false)
		assert.Equal(t, ShotHook, got)
	})

	t.Run("handler floats in the paint", func(t *testing.T) {
		shooter := testPlayer("s", PointGuard)
		shooter.BallHandling = 85
		basket := BasketFor(false)
		spot := Point{X: basket.X + 7, Y: basket.Y}
		got := sc.DetermineShotType(shooter, spot, nil, 0, false)
		assert.Equal(t, ShotFloater, got)
	})

	t.Run("contested perimeter with handle steps back", func(t *testing.T) {
		shooter := testPlayer("s", PointGuard)
		shooter.BallHandling = 85
		defender := testPlayer("d", PointGuard)
		got := sc.DetermineShotType(shooter, awayThreeSpot(), defender, 2, false)
		assert.Equal(t, ShotStepBack, got)
	})

	t.Run("open perimeter catch and shoot", func(t *testing.T) {
		shooter := testPlayer("s", ShootingGuard)
		got := sc.DetermineShotType(shooter, awayThreeSpot(), nil, 0, false)
		assert.Equal(t, ShotCatchAndShoot, got)
	})
}

func TestExpectedValue_ThreeBeatsTwoForEqualProbability(t *testing.T) {
	sc := NewShotCalculator(DefaultTuning().Shot)
	shooter := testPlayer("s", ShootingGuard)
	shooter.Shooting.Three = 90
	shooter.Shooting.LongMid = 50

	basket := BasketFor(false)
	evThree := sc.ExpectedValue(shooter, awayThreeSpot(), nil, 0, ShotCatchAndShoot, false, 20, false)
	evMid := sc.ExpectedValue(shooter, Point{X: basket.X + 18, Y: basket.Y}, nil, 0, ShotCatchAndShoot, false, 20, false)

	assert.Greater(t, evThree, evMid)
}
