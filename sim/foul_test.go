package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFoulSystem() *FoulSystem {
	return NewFoulSystem(DefaultTuning().Foul)
}

func TestFoulProbability_WithinBand(t *testing.T) {
	fs := newTestFoulSystem()
	contexts := []GameContext{
		regulationContext(),
		clutchContext(),
		{Quarter: 4, GameClock: 60, ShotClock: 10, ScoreDiff: 5}, // intentional-foul window
	}

	for _, rating := range []float64{0, 50, 100} {
		defender := testPlayer("d", Center)
		defender.DefensiveIQ = rating
		defender.Composure = rating
		defender.Aggression = 100 - rating
		defender.Tendencies.CloseoutControl = rating
		defender.Tendencies.DefensiveGambling = 100 - rating

		handler := testPlayer("h", PointGuard)
		handler.BallHandling = 100 - rating

		for _, ctx := range contexts {
			for _, st := range []ShotType{ShotDunk, ShotCatchAndShoot} {
				p := fs.FoulProbability(defender, handler, st, ctx)
				assert.GreaterOrEqual(t, p, 0.05)
				assert.LessOrEqual(t, p, 0.35)
			}
		}
	}
}

func TestFoulProbability_NilDefenderNeverFouls(t *testing.T) {
	fs := newTestFoulSystem()
	assert.Zero(t, fs.FoulProbability(nil, testPlayer("h", PointGuard), ShotLayup, regulationContext()))
}

func TestFoulProbability_FoulTroubleCaution(t *testing.T) {
	fs := newTestFoulSystem()
	defender := testPlayer("d", Center)
	handler := testPlayer("h", PointGuard)
	ctx := regulationContext()
	rng := rand.New(rand.NewSource(1))

	clean := fs.FoulProbability(defender, handler, ShotCatchAndShoot, ctx)

	for i := 0; i < 4; i++ {
		fs.CreateFoulEvent(defender, handler, "DEF", FoulPersonal, ShotCatchAndShoot, false, ZonePaint, ctx, rng)
	}
	careful := fs.FoulProbability(defender, handler, ShotCatchAndShoot, ctx)

	assert.Less(t, careful, clean)
}

func TestTechnicalProbability_WithinBandAndDampened(t *testing.T) {
	fs := newTestFoulSystem()
	hothead := testPlayer("hot", PowerForward)
	hothead.Volatile = true
	hothead.Composure = 0
	blowout := GameContext{Quarter: 3, GameClock: 400, ShotClock: 20, ScoreDiff: 25}

	first := fs.TechnicalProbability(hothead, blowout)
	assert.GreaterOrEqual(t, first, 0.0005)
	assert.LessOrEqual(t, first, 0.05)

	// One technical on the books dampens the next by 70%.
	fs.CreateFoulEvent(hothead, nil, "DEF", FoulTechnical, ShotCatchAndShoot, false, ZonePaint, blowout, rand.New(rand.NewSource(1)))
	second := fs.TechnicalProbability(hothead, blowout)
	assert.InDelta(t, first*0.3, second, 1e-9)
}

func TestResetQuarterFouls_ClearsTeamsKeepsPlayers(t *testing.T) {
	// GIVEN recorded fouls in Q1
	fs := newTestFoulSystem()
	defender := testPlayer("d", Center)
	ctx := regulationContext()
	rng := rand.New(rand.NewSource(1))
	fs.CreateFoulEvent(defender, nil, "DEF", FoulPersonal, ShotLayup, false, ZoneRim, ctx, rng)
	require.Equal(t, 1, fs.TeamFouls("DEF"))
	require.Equal(t, 1, fs.PlayerFouls("d"))
	require.Equal(t, 1, fs.Quarter())

	// WHEN the quarter turns
	fs.ResetQuarterFouls()

	// THEN team fouls reset, personal fouls persist
	assert.Zero(t, fs.TeamFouls("DEF"))
	assert.Equal(t, 1, fs.PlayerFouls("d"))
	assert.Equal(t, 2, fs.Quarter())
}

func TestResetGame_ClearsEverything(t *testing.T) {
	fs := newTestFoulSystem()
	defender := testPlayer("d", Center)
	rng := rand.New(rand.NewSource(1))
	fs.CreateFoulEvent(defender, nil, "DEF", FoulPersonal, ShotLayup, false, ZoneRim, regulationContext(), rng)
	fs.CreateFoulEvent(defender, nil, "DEF", FoulTechnical, ShotLayup, false, ZoneRim, regulationContext(), rng)
	fs.ResetQuarterFouls()

	fs.ResetGame()

	assert.Zero(t, fs.TeamFouls("DEF"))
	assert.Zero(t, fs.PlayerFouls("d"))
	assert.Zero(t, fs.Technicals("d"))
	assert.False(t, fs.ShouldEject("d"))
	assert.Equal(t, 1, fs.Quarter())
}

func TestDetermineFreeThrowScenario_Exhaustive(t *testing.T) {
	fs := newTestFoulSystem()

	tests := []struct {
		name     string
		foulType FoulType
		shotMade bool
		zone     Zone
		want     FreeThrowScenario
		wantFTs  int
	}{
		{"technical", FoulTechnical, false, ZonePaint, ScenarioTechnical, 1},
		{"flagrant one", FoulFlagrant1, false, ZoneRim, ScenarioFlagrant, 2},
		{"flagrant two", FoulFlagrant2, false, ZoneRim, ScenarioFlagrant, 2},
		{"offensive", FoulOffensive, false, ZonePaint, ScenarioNone, 0},
		{"and one", FoulShooting, true, ZoneRim, ScenarioAndOne, 1},
		{"two shots", FoulShooting, false, ZoneLongMidRange, ScenarioTwoShots, 2},
		{"three shots", FoulShooting, false, ZoneThree, ScenarioThreeShots, 3},
		{"personal before bonus", FoulPersonal, false, ZonePaint, ScenarioNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fs.DetermineFreeThrowScenario(tt.foulType, "DEF", tt.shotMade, tt.zone)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFTs, FreeThrowCount(got))
		})
	}
}

func TestBonus_FifthTeamFoulTriggersBonus(t *testing.T) {
	// GIVEN a team with 4 fouls in the quarter
	fs := newTestFoulSystem()
	ctx := regulationContext()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 4; i++ {
		fouler := testPlayer("d", Center)
		fouler.ID = "d" + string(rune('0'+i))
		fs.CreateFoulEvent(fouler, nil, "DEF", FoulPersonal, ShotCatchAndShoot, false, ZonePaint, ctx, rng)
	}
	require.False(t, fs.IsInBonus("DEF"))

	// WHEN the fifth non-shooting foul arrives
	detail := fs.CreateFoulEvent(testPlayer("d5", Center), nil, "DEF", FoulPersonal, ShotCatchAndShoot, false, ZonePaint, ctx, rng)

	// THEN the fouled team shoots two
	assert.True(t, fs.IsInBonus("DEF"))
	assert.Equal(t, ScenarioBonus, detail.Scenario)
	assert.Equal(t, 2, detail.FreeThrows)
}

func TestDoubleBonus_AtTenTeamFouls(t *testing.T) {
	fs := newTestFoulSystem()
	ctx := regulationContext()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		fouler := testPlayer("d", Center)
		fouler.ID = "dd" + string(rune('a'+i))
		fs.CreateFoulEvent(fouler, nil, "DEF", FoulPersonal, ShotCatchAndShoot, false, ZonePaint, ctx, rng)
	}
	assert.True(t, fs.IsInDoubleBonus("DEF"))
}

func TestFoulOut_AtSixPersonals(t *testing.T) {
	// GIVEN a player committing six fouls
	fs := newTestFoulSystem()
	fouler := testPlayer("p1", Center)
	ctx := regulationContext()
	rng := rand.New(rand.NewSource(1))

	var last FoulEventDetail
	for i := 0; i < 6; i++ {
		assert.False(t, fs.HasFouledOut("p1"), "foul %d should not yet disqualify", i)
		last = fs.CreateFoulEvent(fouler, nil, "DEF", FoulPersonal, ShotCatchAndShoot, false, ZonePaint, ctx, rng)
	}

	// THEN the sixth disqualifies him, permanently
	assert.True(t, last.FouledOut)
	assert.True(t, fs.HasFouledOut("p1"))
	fs.ResetQuarterFouls()
	assert.True(t, fs.HasFouledOut("p1"), "foul-out persists across quarters")
}

func TestEjection_TwoTechnicals(t *testing.T) {
	fs := newTestFoulSystem()
	hothead := testPlayer("hot", PowerForward)
	ctx := regulationContext()
	rng := rand.New(rand.NewSource(1))

	first := fs.CreateFoulEvent(hothead, nil, "DEF", FoulTechnical, ShotCatchAndShoot, false, ZonePaint, ctx, rng)
	assert.False(t, first.Ejected)
	assert.False(t, fs.ShouldEject("hot"))

	second := fs.CreateFoulEvent(hothead, nil, "DEF", FoulTechnical, ShotCatchAndShoot, false, ZonePaint, ctx, rng)
	assert.True(t, second.Ejected)
	assert.True(t, fs.ShouldEject("hot"))

	// Technicals never touch the personal-foul count.
	assert.Zero(t, fs.PlayerFouls("hot"))
	assert.Zero(t, fs.TeamFouls("DEF"))
}

func TestCreateFoulEvent_OffensiveFoulCountsPersonalNotTeam(t *testing.T) {
	fs := newTestFoulSystem()
	driver := testPlayer("o1", SmallForward)
	rng := rand.New(rand.NewSource(1))

	detail := fs.CreateFoulEvent(driver, testPlayer("d1", SmallForward), "OFF", FoulOffensive, ShotLayup, false, ZoneRim, regulationContext(), rng)

	assert.Equal(t, 1, fs.PlayerFouls("o1"))
	assert.Zero(t, fs.TeamFouls("OFF"))
	assert.Equal(t, ScenarioNone, detail.Scenario)
	assert.Zero(t, detail.FreeThrows)
}

func TestCreateFoulEvent_FlagrantUpgradeOnlyInClutch(t *testing.T) {
	// Outside clutch time a shooting foul is never reviewed, regardless of
	// aggression.
	fs := newTestFoulSystem()
	goon := testPlayer("goon", Center)
	goon.Aggression = 100
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		detail := fs.CreateFoulEvent(goon, testPlayer("s", Center), "DEF", FoulShooting, ShotDunk, false, ZoneRim, regulationContext(), rng)
		assert.Equal(t, FoulShooting, detail.Type)
	}
}

func TestCreateFoulEvent_FlagrantTwoEjects(t *testing.T) {
	// Sweep seeds until a clutch review upgrades to flagrant-2, then check
	// the ejection flag rides along.
	fs := newTestFoulSystem()
	goon := testPlayer("goon2", Center)
	goon.Aggression = 100
	ctx := clutchContext()

	for seed := int64(0); seed < 2000; seed++ {
		fs.ResetGame()
		detail := fs.CreateFoulEvent(goon, testPlayer("s", Center), "DEF", FoulShooting, ShotDunk, false, ZoneRim, ctx, rand.New(rand.NewSource(seed)))
		if detail.Type == FoulFlagrant2 {
			assert.True(t, detail.Ejected)
			assert.True(t, fs.ShouldEject("goon2"))
			assert.Equal(t, ScenarioFlagrant, detail.Scenario)
			return
		}
	}
	t.Fatal("no seed in range produced a flagrant-2")
}

func TestFoulTrouble_Labels(t *testing.T) {
	fs := newTestFoulSystem()
	fouler := testPlayer("ft", Center)
	ctx := regulationContext()
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, "no foul trouble", fs.FoulTrouble("ft"))
	labels := []string{
		"no foul trouble", "no foul trouble", "foul trouble",
		"serious foul trouble", "one from fouling out", "fouled out",
	}
	for i, want := range labels {
		fs.CreateFoulEvent(fouler, nil, "DEF", FoulPersonal, ShotCatchAndShoot, false, ZonePaint, ctx, rng)
		assert.Equal(t, want, fs.FoulTrouble("ft"), "after foul %d", i+1)
	}
}
