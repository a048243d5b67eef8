package cmd

import (
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/courtsim/courtsim/sim"
	"github.com/courtsim/courtsim/sim/spatial"
)

var (
	// CLI flags for the simulated game
	seed            int64  // Master seed; one seed replays one game exactly
	logLevel        string // Log verbosity level
	quarters        int    // Number of quarters to simulate
	tuningFilePath  string // Optional tuning.yaml path; empty uses built-in defaults
	homeTeam        string // Home team label
	awayTeam        string // Away team label
	homePace        float64
	awayPace        float64
	timeoutsPerTeam int
)

const quarterSeconds = 720.0

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "courtsim",
	Short: "Possession-level basketball simulation engine",
}

// runCmd simulates a full game between two generated lineups
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulated game",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		tuning := sim.DefaultTuning()
		if tuningFilePath != "" {
			tuning, err = LoadTuning(tuningFilePath)
			if err != nil {
				logrus.Fatalf("Failed to load tuning file: %v", err)
			}
		}

		if quarters < 1 {
			logrus.Fatalf("Need at least one quarter, got %d", quarters)
		}

		runGame(tuning)
	},
}

// runGame simulates the requested quarters possession by possession,
// feeding the timeout policy and logging a box-score summary at the end.
func runGame(tuning sim.Tuning) {
	rosterRng := rand.New(rand.NewSource(seed))
	home := sim.GenerateLineup(rosterRng, homeTeam)
	away := sim.GenerateLineup(rosterRng, awayTeam)

	fouls := sim.NewFoulSystem(tuning.Foul)
	tracker := spatial.NewTracker()
	simulator, err := sim.NewPossessionSimulator(sim.NewSimulationKey(seed), tuning, fouls, tracker, nil, nil)
	if err != nil {
		logrus.Fatalf("Failed to build simulator: %v", err)
	}

	homeStrategy := sim.DefaultStrategy()
	homeStrategy.Pace = homePace
	awayStrategy := sim.DefaultStrategy()
	awayStrategy.Pace = awayPace

	score := map[string]int{homeTeam: 0, awayTeam: 0}
	timeouts := map[string]int{homeTeam: timeoutsPerTeam, awayTeam: timeoutsPerTeam}
	coaches := map[string]*sim.TimeoutIntelligence{
		homeTeam: sim.NewTimeoutIntelligence(),
		awayTeam: sim.NewTimeoutIntelligence(),
	}

	logrus.Infof("Tipoff: %s vs %s, seed=%d, %d quarters", homeTeam, awayTeam, seed, quarters)

	homeOffense := true
	for q := 1; q <= quarters; q++ {
		if q > 1 {
			fouls.ResetQuarterFouls()
			coaches[homeTeam].ResetRun()
			coaches[awayTeam].ResetRun()
		}

		clock := quarterSeconds
		for clock > 1.0 {
			offense, defense := home, away
			offStrategy := homeStrategy
			if !homeOffense {
				offense, defense = away, home
				offStrategy = awayStrategy
			}

			ctx := sim.GameContext{
				Quarter:     q,
				GameClock:   clock,
				ShotClock:   24,
				ScoreDiff:   score[offense.Team] - score[defense.Team],
				HomeOffense: homeOffense,
			}
			result := simulator.SimulatePossession(offense, defense, offStrategy, ctx)
			score[offense.Team] += result.Points

			if result.Points > 0 {
				run := coaches[defense.Team].TrackScore(offense.Team, result.Points)
				maybeCallTimeout(coaches, timeouts, defense.Team, offense.Team, run, score, ctx)
			}

			logrus.Debugf("Q%d %6.1fs %s possession: %s for %d (%d-%d)",
				q, clock, offense.Team, result.Outcome, result.Points,
				score[homeTeam], score[awayTeam])

			clock = result.EndClock
			homeOffense = !homeOffense
		}

		logrus.Infof("End of Q%d: %s %d, %s %d", q, homeTeam, score[homeTeam], awayTeam, score[awayTeam])
	}

	printSummary(fouls, tracker, home, away, score)
}

// maybeCallTimeout consults the trailing side's coach after it conceded.
func maybeCallTimeout(coaches map[string]*sim.TimeoutIntelligence, timeouts map[string]int,
	team, opponent string, run int, score map[string]int, ctx sim.GameContext) {

	coach := coaches[team]
	decision := coach.ShouldCallTimeout(sim.TimeoutContext{
		Quarter:            ctx.Quarter,
		GameClock:          ctx.GameClock,
		ScoreDiff:          score[team] - score[opponent],
		TimeoutsRemaining:  timeouts[team],
		OpponentRunPoints:  run,
		OpponentJustScored: true,
		IsClutchTime:       ctx.IsClutchTime(),
	})
	if !decision.ShouldCall {
		return
	}
	timeouts[team]--
	coach.ResetRun()
	logrus.Infof("Q%d %6.1fs timeout %s (%s priority): %s",
		ctx.Quarter, ctx.GameClock, team, decision.Priority, decision.Description)
}

func printSummary(fouls *sim.FoulSystem, tracker *spatial.Tracker, home, away *sim.Lineup, score map[string]int) {
	logrus.Infof("Final: %s %d, %s %d", home.Team, score[home.Team], away.Team, score[away.Team])

	for _, lineup := range []*sim.Lineup{home, away} {
		for _, p := range lineup.Players {
			if p == nil {
				continue
			}
			if n := fouls.PlayerFouls(p.ID); n > 0 {
				logrus.Infof("  %s: %d PF (%s)", p.Name, n, fouls.FoulTrouble(p.ID))
			}
		}
	}

	for zone, stats := range tracker.ShotChart() {
		logrus.Infof("  %s: %d/%d for %d points", zone, stats.Makes, stats.Attempts, stats.Points)
	}
	mean, stddev := tracker.ShotDistanceSpread()
	logrus.Infof("  shot distance: %.1f ft avg (sd %.1f)", mean, stddev)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed controlling all simulation randomness")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&quarters, "quarters", 4, "Number of quarters to simulate")
	runCmd.Flags().StringVar(&tuningFilePath, "tuning", "", "Path to a tuning.yaml overriding built-in probability constants")
	runCmd.Flags().StringVar(&homeTeam, "home", "HOME", "Home team label")
	runCmd.Flags().StringVar(&awayTeam, "away", "AWAY", "Away team label")
	runCmd.Flags().Float64Var(&homePace, "home-pace", 50, "Home offensive pace (0-100)")
	runCmd.Flags().Float64Var(&awayPace, "away-pace", 50, "Away offensive pace (0-100)")
	runCmd.Flags().IntVar(&timeoutsPerTeam, "timeouts", 7, "Timeouts per team")

	rootCmd.AddCommand(runCmd)
}
