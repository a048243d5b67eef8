package sim

// Shared fixture builders for the sim package tests.

// neutralTendencies returns all-50 tendencies (every modifier neutral).
func neutralTendencies() Tendencies {
	return Tendencies{
		BallMovement:      50,
		RiskTolerance:     50,
		ShotSelection:     50,
		ShotDiscipline:    50,
		BallStopping:      50,
		CloseoutControl:   50,
		DefensiveGambling: 50,
		EffortConsistency: 50,
	}
}

// testPlayer builds a league-average player at the given position.
func testPlayer(id string, pos Position) *Player {
	return &Player{
		ID:       id,
		Name:     id,
		Position: pos,
		Shooting: ShootingSkills{
			Rim: 50, Paint: 50, ShortMid: 50, LongMid: 50, Three: 50, FreeThrow: 75,
		},
		BallHandling: 50,
		VerticalLeap: 50,
		Defense:      50,
		Block:        50,
		Wingspan:     50,
		BasketballIQ: 50,
		Composure:    50,
		Clutch:       50,
		Aggression:   50,
		Experience:   50,
		Energy:       100,
		Morale:       50,
		Form:         50,
		Tendencies:   neutralTendencies(),
	}
}

// testLineup builds five average players with IDs prefixed by team.
func testLineup(team string) *Lineup {
	l := &Lineup{Team: team}
	order := []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}
	for i, pos := range order {
		l.Players[i] = testPlayer(team+"-"+pos.String(), pos)
	}
	return l
}

// regulationContext is a neutral first-quarter possession.
func regulationContext() GameContext {
	return GameContext{
		Quarter:   1,
		GameClock: 600,
		ShotClock: 24,
	}
}

// clutchContext is a tight fourth-quarter possession inside five minutes.
func clutchContext() GameContext {
	return GameContext{
		Quarter:   4,
		GameClock: 120,
		ShotClock: 18,
		ScoreDiff: -2,
	}
}
