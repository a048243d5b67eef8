package sim

import (
	"fmt"
	"math/rand"
)

// archetype holds positional rating means for generated players.
type archetype struct {
	shooting     ShootingSkills
	ballHandling float64
	vertical     float64
	defense      float64
	block        float64
	wingspan     float64
}

var archetypes = map[Position]archetype{
	PointGuard: {
		shooting:     ShootingSkills{Rim: 60, Paint: 58, ShortMid: 65, LongMid: 66, Three: 68, FreeThrow: 82},
		ballHandling: 85, vertical: 55, defense: 60, block: 25, wingspan: 50,
	},
	ShootingGuard: {
		shooting:     ShootingSkills{Rim: 64, Paint: 60, ShortMid: 68, LongMid: 68, Three: 72, FreeThrow: 84},
		ballHandling: 72, vertical: 64, defense: 62, block: 30, wingspan: 57,
	},
	SmallForward: {
		shooting:     ShootingSkills{Rim: 68, Paint: 64, ShortMid: 64, LongMid: 62, Three: 62, FreeThrow: 78},
		ballHandling: 62, vertical: 70, defense: 66, block: 42, wingspan: 66,
	},
	PowerForward: {
		shooting:     ShootingSkills{Rim: 74, Paint: 70, ShortMid: 58, LongMid: 52, Three: 48, FreeThrow: 70},
		ballHandling: 48, vertical: 68, defense: 68, block: 58, wingspan: 74,
	},
	Center: {
		shooting:     ShootingSkills{Rim: 80, Paint: 74, ShortMid: 50, LongMid: 42, Three: 32, FreeThrow: 62},
		ballHandling: 35, vertical: 62, defense: 70, block: 74, wingspan: 84,
	},
}

// GenerateLineup builds a five-player lineup around positional archetypes
// with rating jitter from rng. Player IDs are deterministic ("<team>-PG"),
// keeping generated games reproducible under a pinned seed.
func GenerateLineup(rng *rand.Rand, team string) *Lineup {
	lineup := &Lineup{Team: team}
	order := []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}
	for i, pos := range order {
		arch := archetypes[pos]
		jitter := func(mean float64) float64 {
			return clamp(mean+rng.NormFloat64()*8, 25, 97)
		}
		lineup.Players[i] = &Player{
			ID:       fmt.Sprintf("%s-%s", team, pos),
			Name:     fmt.Sprintf("%s %s", team, pos),
			Position: pos,
			Shooting: ShootingSkills{
				Rim:       jitter(arch.shooting.Rim),
				Paint:     jitter(arch.shooting.Paint),
				ShortMid:  jitter(arch.shooting.ShortMid),
				LongMid:   jitter(arch.shooting.LongMid),
				Three:     jitter(arch.shooting.Three),
				FreeThrow: jitter(arch.shooting.FreeThrow),
			},
			BallHandling: jitter(arch.ballHandling),
			VerticalLeap: jitter(arch.vertical),
			Defense:      jitter(arch.defense),
			Block:        jitter(arch.block),
			Wingspan:     jitter(arch.wingspan),
			BasketballIQ: jitter(62),
			Composure:    jitter(60),
			Clutch:       jitter(55),
			Aggression:   jitter(55),
			Experience:   jitter(55),
			Volatile:     rng.Float64() < 0.1,
			Energy:       92 + rng.Float64()*8,
			Morale:       jitter(65),
			Form:         jitter(60),
			Tendencies: Tendencies{
				BallMovement:      jitter(55),
				RiskTolerance:     jitter(50),
				ShotSelection:     jitter(55),
				ShotDiscipline:    jitter(55),
				BallStopping:      jitter(45),
				CloseoutControl:   jitter(55),
				DefensiveGambling: jitter(45),
				EffortConsistency: jitter(60),
			},
		}
	}
	return lineup
}
