// Package sim provides the possession-level basketball simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - player.go: Player attribute snapshots, positions, and lineups
//   - event.go: PossessionEvent records and the PossessionResult aggregate
//   - simulator.go: The possession state machine (decide phase, then render feed)
//
// # Architecture
//
// The sim package holds the possession simulator and its collaborating
// rule/probability engines:
//   - shot.go: ShotCalculator, pure shot-probability model and shot-type selection
//   - violation.go: ViolationChecker, stateless rule-violation probability checks
//   - freethrow.go: FreeThrowHandler, per-attempt free-throw resolution
//   - foul.go: FoulSystem, game-scoped foul/technical/flagrant accounting
//   - timeout.go: TimeoutIntelligence, priority-ordered timeout decision policy
//
// The sim/spatial sub-package is a passive recorder: it consumes positional
// snapshots and shot locations emitted during simulation and answers
// analytics queries (heatmaps, shot charts). It never influences outcomes.
//
// # Randomness
//
// All randomness flows through a PartitionedRNG (rng.go) owned by the
// simulator and seeded at construction. Two simulations built from the same
// SimulationKey and identical inputs produce identical event sequences.
package sim
