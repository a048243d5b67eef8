package sim

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/courtsim/courtsim/sim/spatial"
)

// ChemistryProvider supplies the lineup-chemistry turnover adjustment. Keyed
// by the offensive lineup's player IDs; returns an additive probability
// scalar (negative for good chemistry).
type ChemistryProvider interface {
	TurnoverModifier(playerIDs []string) float64
}

// MoraleProvider supplies the lineup's average morale (0-100).
type MoraleProvider interface {
	AverageMorale(playerIDs []string) float64
}

// PossessionSimulator orchestrates one possession at a time: select actors,
// decide the outcome, then emit the cosmetic positional feed. It owns all
// randomness through a PartitionedRNG seeded at construction; a simulator
// rebuilt from the same key replays identical event sequences.
//
// The decide phase fully determines the outcome before any spatial tick is
// generated. Ticks are a pure visualization feed.
type PossessionSimulator struct {
	rng    *PartitionedRNG
	tuning Tuning

	shots      *ShotCalculator
	violations *ViolationChecker
	freeThrows *FreeThrowHandler

	// Game-scoped collaborators, passed in by reference so state
	// accumulates across possessions.
	fouls   *FoulSystem
	tracker *spatial.Tracker

	chemistry ChemistryProvider
	morale    MoraleProvider
}

// NewPossessionSimulator builds a simulator for one game. The FoulSystem and
// tracker are shared game-scoped state; nil chemistry/morale providers are
// treated as neutral.
func NewPossessionSimulator(key SimulationKey, tuning Tuning, fouls *FoulSystem,
	tracker *spatial.Tracker, chemistry ChemistryProvider, morale MoraleProvider) (*PossessionSimulator, error) {

	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if fouls == nil {
		fouls = NewFoulSystem(tuning.Foul)
	}
	if tracker == nil {
		tracker = spatial.NewTracker()
	}
	return &PossessionSimulator{
		rng:        NewPartitionedRNG(key),
		tuning:     tuning,
		shots:      NewShotCalculator(tuning.Shot),
		violations: NewViolationChecker(tuning.Violation),
		freeThrows: NewFreeThrowHandler(tuning.FreeThrow),
		fouls:      fouls,
		tracker:    tracker,
		chemistry:  chemistry,
		morale:     morale,
	}, nil
}

// Fouls returns the game-scoped foul state for read access.
func (s *PossessionSimulator) Fouls() *FoulSystem {
	return s.fouls
}

// Tracker returns the game-scoped spatial recorder for read access.
func (s *PossessionSimulator) Tracker() *spatial.Tracker {
	return s.tracker
}

// SimulatePossession resolves one full possession and returns its result.
// The call runs to completion with no suspension points; a possession never
// partially executes.
func (s *PossessionSimulator) SimulatePossession(offense, defense *Lineup,
	offStrategy Strategy, ctx GameContext) *PossessionResult {

	result := newPossessionResult(offense.Team, defense.Team, ctx.GameClock)

	// An offense with nobody on the floor cannot run a possession. Hand back
	// an empty zero-duration result without drawing any randomness, so the
	// degenerate call leaves every RNG stream untouched.
	if len(offense.IDs()) == 0 {
		result.EndClock = ctx.GameClock
		return result
	}

	rng := s.rng.ForSubsystem(SubsystemPossession)
	result.Duration = s.possessionDuration(offStrategy, ctx, rng)
	result.EndClock = ctx.GameClock - result.Duration

	positions := initialPositions(offense, defense, ctx.HomeOffense)
	handler := s.selectBallHandler(offense, rng)
	ballCarrier := handler.ID

	// Decide phase. The first terminal event classifies the possession.
	if v := s.violations.Check(offense, handler, ctx, s.rng.ForSubsystem(SubsystemViolation)); v != nil {
		result.append(PossessionEvent{
			Type:      EventViolation,
			ActorID:   v.PlayerID,
			Location:  positions[v.PlayerID],
			Violation: v,
		})
		result.Outcome = OutcomeTurnover
	} else if rng.Float64() < s.TurnoverProbability(offense, defense, handler, ctx) {
		thief := s.stealCandidate(defense, handler)
		ev := PossessionEvent{
			Type:     EventTurnover,
			ActorID:  handler.ID,
			Location: positions[handler.ID],
		}
		if thief != nil {
			ev.DefenderID = thief.ID
		}
		result.append(ev)
		result.Outcome = OutcomeTurnover
	} else {
		ballCarrier = s.resolveShot(result, offense, defense, offStrategy, handler, positions, ctx)
	}

	// Render feed phase. The outcome above is already fixed; these ticks
	// exist only for the presentation layer.
	s.generateTicks(result, offense, defense, ballCarrier, positions, ctx)

	logrus.Debugf("possession %s: %s vs %s outcome=%s points=%d events=%d",
		result.ID, offense.Team, defense.Team, result.Outcome, result.Points, len(result.Events))

	return result
}

// === Duration ===

// possessionDuration scales the average possession by offensive pace, adds
// random variance, clamps to the configured band, and never exceeds the
// remaining game clock.
func (s *PossessionSimulator) possessionDuration(strategy Strategy, ctx GameContext, rng *rand.Rand) float64 {
	p := s.tuning.Possession
	d := p.AverageSeconds * (1 - skillModifier(strategy.Pace, 0.15))
	d += rng.NormFloat64() * 2.5
	d = clamp(d, p.MinSeconds, p.MaxSeconds)
	if d > ctx.GameClock {
		d = math.Max(ctx.GameClock, 0)
	}
	return d
}

// === Actor selection ===

// positional priors for bringing the ball up; guards carry most possessions.
var ballHandlerPriors = map[Position]float64{
	PointGuard:    35,
	ShootingGuard: 25,
	SmallForward:  20,
	PowerForward:  12,
	Center:        8,
}

func (s *PossessionSimulator) selectBallHandler(offense *Lineup, rng *rand.Rand) *Player {
	weights := make([]float64, len(offense.Players))
	for i, p := range offense.Players {
		if p == nil {
			continue
		}
		weights[i] = ballHandlerPriors[p.Position] * (0.5 + p.BallHandling/100)
	}
	return offense.Players[weightedPick(rng, weights)]
}

// selectShooter weights players by shooting skill, strategy emphasis, and
// the shot-hunting tendencies (ball stopping up, patience and discipline
// shaping how often a player hunts his own shot).
func (s *PossessionSimulator) selectShooter(offense *Lineup, strategy Strategy, rng *rand.Rand) *Player {
	weights := make([]float64, len(offense.Players))
	for i, p := range offense.Players {
		if p == nil {
			continue
		}
		sh := p.Shooting
		w := (sh.Rim + sh.Paint + sh.ShortMid + sh.LongMid + sh.Three) / 5

		if strategy.ThreePointBias > 50 {
			w += (strategy.ThreePointBias - 50) / 50 * sh.Three * 0.5
		}
		if strategy.PostUpBias > 50 && (p.Position == Center || p.Position == PowerForward) {
			w += (strategy.PostUpBias - 50) / 50 * (sh.Rim + sh.Paint) / 2 * 0.5
		}

		w *= 1 + skillModifier(p.Tendencies.BallStopping, 0.20)
		w *= 1 - skillModifier(p.Tendencies.ShotSelection, 0.10)
		w *= 1 + skillModifier(p.Tendencies.ShotDiscipline, 0.05)

		weights[i] = math.Max(w, 1)
	}
	return offense.Players[weightedPick(rng, weights)]
}

// stealCandidate picks the defender credited with a steal: the handler's
// matchup when present, else the most gambling-prone defender.
func (s *PossessionSimulator) stealCandidate(defense *Lineup, handler *Player) *Player {
	if d := defense.AtPosition(handler.Position); d != nil {
		return d
	}
	var best *Player
	for _, p := range defense.Players {
		if p == nil {
			continue
		}
		if best == nil || p.Tendencies.DefensiveGambling > best.Tendencies.DefensiveGambling {
			best = p
		}
	}
	return best
}

// === Probabilities ===

// TurnoverProbability composes the 13% base rate with ball-handler skill,
// defensive aggression, lineup chemistry, average morale, and the three
// offense tendency modifiers, clamped to the configured band.
func (s *PossessionSimulator) TurnoverProbability(offense, defense *Lineup, handler *Player, ctx GameContext) float64 {
	t := s.tuning.Turnover
	p := t.BaseRate
	p -= skillModifier(handler.BallHandling, 0.05)
	p += skillModifier(averageAggression(defense), 0.03)

	if s.chemistry != nil {
		p += s.chemistry.TurnoverModifier(offense.IDs())
	}
	if s.morale != nil {
		p -= skillModifier(s.morale.AverageMorale(offense.IDs()), 0.02)
	}

	p -= skillModifier(handler.Tendencies.BallMovement, 0.02)
	p += skillModifier(handler.Tendencies.RiskTolerance, 0.03)
	p -= skillModifier(handler.Tendencies.EffortConsistency, 0.01)

	return clamp(p, t.MinProbability, t.MaxProbability)
}

// shotProbability layers the simulator's tendency-based adjustments on top
// of the pure ShotCalculator model, then re-clamps.
func (s *PossessionSimulator) shotProbability(shooter *Player, position Point, defender *Player,
	defenderDistance float64, shotType ShotType, fastBreak bool, ctx GameContext) float64 {

	p := s.shots.Probability(shooter, position, defender, defenderDistance, shotType,
		fastBreak, ctx.ShotClock, ctx.HomeOffense)

	if ctx.IsClutchTime() {
		p += skillModifier(shooter.Clutch, 0.04)
	}
	// Fatigue bites hardest on players whose effort sags with it.
	p -= (100 - shooter.Energy) / 100 * (1 - shooter.Tendencies.EffortConsistency/100) * 0.05

	contested := defender != nil && defenderDistance < 6.0
	if contested && shooter.Tendencies.ShotDiscipline < 40 {
		p -= 0.03
	}
	if !contested && shooter.Tendencies.ShotSelection >= 70 {
		p += 0.02
	}

	return clamp(p, s.tuning.Shot.MinProbability, s.tuning.Shot.MaxProbability)
}

// blockProbability is drawn only on the miss-without-foul path; whether a
// defender can foul and block on the same play is deliberately not modeled.
func (s *PossessionSimulator) blockProbability(defender *Player) float64 {
	p := defender.Block / 100 * 0.25
	p += skillModifier(defender.Tendencies.DefensiveGambling, 0.05)
	p += skillModifier(defender.Tendencies.CloseoutControl, 0.03)
	// Rim protection fades with fatigue, fastest for low-effort defenders.
	p -= (100 - defender.Energy) / 100 * (1 - defender.Tendencies.EffortConsistency/100) * 0.05
	return clamp(p, 0.01, 0.30)
}

// chargeProbability is the chance a drawn foul is an offensive foul instead.
func (s *PossessionSimulator) chargeProbability(shooter *Player) float64 {
	return clamp(0.08+skillModifier(shooter.Aggression, 0.05), 0.02, 0.20)
}

// === Shot resolution ===

// Fast breaks resolve quickly; anything at or under this duration counts.
const fastBreakSeconds = 7.0

func (s *PossessionSimulator) resolveShot(result *PossessionResult, offense, defense *Lineup,
	strategy Strategy, handler *Player, positions map[string]Point, ctx GameContext) string {

	rng := s.rng.ForSubsystem(SubsystemPossession)
	shooter := s.selectShooter(offense, strategy, rng)

	if shooter.ID != handler.ID {
		result.append(PossessionEvent{
			Type:     EventPass,
			ActorID:  handler.ID,
			TargetID: shooter.ID,
			Location: positions[handler.ID],
		})
	}

	defender := defense.AtPosition(shooter.Position)
	position := s.shotPosition(shooter, strategy, ctx.HomeOffense, rng)
	positions[shooter.ID] = position
	defenderDistance := s.defenderDistance(defender, rng)
	basket := BasketFor(ctx.HomeOffense)
	zone := ClassifyZone(position, basket)
	shotType := s.shots.DetermineShotType(shooter, position, defender, defenderDistance, ctx.HomeOffense)
	fastBreak := result.Duration <= fastBreakSeconds

	foulRng := s.rng.ForSubsystem(SubsystemFoul)
	if defender != nil && foulRng.Float64() < s.fouls.FoulProbability(defender, shooter, shotType, ctx) {
		s.resolveFoulPath(result, offense, defense, shooter, defender, position, defenderDistance,
			shotType, zone, fastBreak, ctx, foulRng)
		return shooter.ID
	}

	// Normal shot path.
	p := s.shotProbability(shooter, position, defender, defenderDistance, shotType, fastBreak, ctx)
	shotRng := s.rng.ForSubsystem(SubsystemShot)
	made := shotRng.Float64() < p

	detail := &ShotEventDetail{
		Type:      shotType,
		Zone:      zone,
		Distance:  position.DistanceTo(basket),
		Contested: defender != nil && defenderDistance < 6.0,
		Made:      made,
	}

	switch {
	case made:
		result.Outcome = OutcomeScore
		result.Points = zone.PointValue()
	case defender != nil && defenderDistance < tightContest && shotRng.Float64() < s.blockProbability(defender):
		detail.Blocked = true
		result.Outcome = OutcomeBlock
	default:
		result.Outcome = OutcomeMiss
	}

	ev := PossessionEvent{
		Type:     EventShot,
		ActorID:  shooter.ID,
		Location: position,
		Points:   result.Points,
		Shot:     detail,
	}
	if defender != nil {
		ev.DefenderID = defender.ID
	}
	result.append(ev)

	if detail.Blocked {
		result.append(PossessionEvent{
			Type:     EventBlock,
			ActorID:  defender.ID,
			TargetID: shooter.ID,
			Location: position,
		})
	}

	s.recordShot(offense.Team, shooter.ID, position, zone, detail.Made, result.Points, ctx)

	// A beaten defender can boil over after conceding the bucket.
	if made && defender != nil && foulRng.Float64() < s.fouls.TechnicalProbability(defender, ctx) {
		s.resolveTechnical(result, offense, defense, defender, shotType, zone, ctx, foulRng)
	}

	return shooter.ID
}

// resolveFoulPath routes a possession through foul resolution: a charge
// turns it over, a non-shooting foul checks the bonus, and a shooting foul
// resolves a disrupted shot plus its free throws.
func (s *PossessionSimulator) resolveFoulPath(result *PossessionResult, offense, defense *Lineup,
	shooter, defender *Player, position Point, defenderDistance float64, shotType ShotType,
	zone Zone, fastBreak bool, ctx GameContext, foulRng *rand.Rand) {

	if foulRng.Float64() < s.chargeProbability(shooter) {
		detail := s.fouls.CreateFoulEvent(shooter, defender, offense.Team, FoulOffensive,
			shotType, false, zone, ctx, foulRng)
		result.append(PossessionEvent{
			Type:       EventFoul,
			ActorID:    shooter.ID,
			DefenderID: defender.ID,
			Location:   position,
			Foul:       &detail,
		})
		result.Outcome = OutcomeTurnover
		return
	}

	// Roughly a third of drawn fouls arrive before the shooting motion.
	if foulRng.Float64() < 0.35 {
		detail := s.fouls.CreateFoulEvent(defender, shooter, defense.Team, FoulPersonal,
			shotType, false, zone, ctx, foulRng)
		result.append(PossessionEvent{
			Type:       EventFoul,
			ActorID:    defender.ID,
			DefenderID: shooter.ID,
			Location:   position,
			Foul:       &detail,
		})
		if detail.FreeThrows > 0 {
			s.resolveFreeThrows(result, shooter, detail.FreeThrows, ctx)
		}
		if result.Points > 0 {
			result.Outcome = OutcomeScore
		} else {
			result.Outcome = OutcomeFoul
		}
		return
	}

	// Shooting foul: the contact disrupts the attempt.
	p := s.shotProbability(shooter, position, defender, defenderDistance, shotType, fastBreak, ctx) * 0.85
	made := s.rng.ForSubsystem(SubsystemShot).Float64() < p

	detail := s.fouls.CreateFoulEvent(defender, shooter, defense.Team, FoulShooting,
		shotType, made, zone, ctx, foulRng)

	fieldGoalPoints := 0
	if made {
		fieldGoalPoints = zone.PointValue()
	}
	result.Points = fieldGoalPoints

	result.append(PossessionEvent{
		Type:       EventShot,
		ActorID:    shooter.ID,
		DefenderID: defender.ID,
		Location:   position,
		Points:     fieldGoalPoints,
		Shot: &ShotEventDetail{
			Type:      shotType,
			Zone:      zone,
			Distance:  position.DistanceTo(BasketFor(ctx.HomeOffense)),
			Contested: true,
			Made:      made,
		},
	})
	result.append(PossessionEvent{
		Type:       EventFoul,
		ActorID:    defender.ID,
		DefenderID: shooter.ID,
		Location:   position,
		Foul:       &detail,
	})
	s.recordShot(offense.Team, shooter.ID, position, zone, made, fieldGoalPoints, ctx)

	if detail.FreeThrows > 0 {
		s.resolveFreeThrows(result, shooter, detail.FreeThrows, ctx)
	}
	if result.Points > 0 {
		result.Outcome = OutcomeScore
	} else {
		result.Outcome = OutcomeFoul
	}
}

// resolveTechnical records a technical on the defender and sends the
// offense's best free-throw shooter to the line.
func (s *PossessionSimulator) resolveTechnical(result *PossessionResult, offense, defense *Lineup,
	offender *Player, shotType ShotType, zone Zone, ctx GameContext, foulRng *rand.Rand) {

	detail := s.fouls.CreateFoulEvent(offender, nil, defense.Team, FoulTechnical,
		shotType, false, zone, ctx, foulRng)
	result.append(PossessionEvent{
		Type:    EventFoul,
		ActorID: offender.ID,
		Foul:    &detail,
	})
	shooter := bestFreeThrowShooter(offense)
	if shooter != nil && detail.FreeThrows > 0 {
		s.resolveFreeThrows(result, shooter, detail.FreeThrows, ctx)
	}
}

func (s *PossessionSimulator) resolveFreeThrows(result *PossessionResult, shooter *Player, attempts int, ctx GameContext) {
	ftResult := s.freeThrows.Resolve(shooter, attempts, ctx, s.rng.ForSubsystem(SubsystemFreeThrow))
	result.Points += ftResult.Makes
	result.append(PossessionEvent{
		Type:       EventFreeThrow,
		ActorID:    shooter.ID,
		Points:     ftResult.Makes,
		FreeThrows: &ftResult,
	})
}

func (s *PossessionSimulator) recordShot(team, shooterID string, position Point, zone Zone,
	made bool, points int, ctx GameContext) {

	basket := BasketFor(ctx.HomeOffense)
	s.tracker.RecordShot(spatial.ShotRecord{
		ShooterID: shooterID,
		Team:      team,
		X:         position.X,
		Y:         position.Y,
		Zone:      zone.String(),
		Distance:  position.DistanceTo(basket),
		Made:      made,
		Points:    points,
		Quarter:   ctx.Quarter,
		GameClock: ctx.GameClock,
	})
}

// === Shot placement ===

// shotPosition picks a target zone from shooter skill and strategy emphasis,
// then samples a spot inside it relative to the attacking basket.
func (s *PossessionSimulator) shotPosition(shooter *Player, strategy Strategy, homeOffense bool, rng *rand.Rand) Point {
	sh := shooter.Shooting
	weights := []float64{sh.Rim, sh.Paint, sh.ShortMid, sh.LongMid, sh.Three}
	if strategy.ThreePointBias > 50 {
		weights[4] *= 1 + (strategy.ThreePointBias-50)/50
	}
	if strategy.PostUpBias > 50 {
		scale := 1 + (strategy.PostUpBias-50)/100
		weights[0] *= scale
		weights[1] *= scale
	}

	zone := Zone(weightedPick(rng, weights))
	var minDist, maxDist float64
	switch zone {
	case ZoneRim:
		minDist, maxDist = 1, rimRange-0.5
	case ZonePaint:
		minDist, maxDist = rimRange, paintRange-1
	case ZoneShortMidRange:
		minDist, maxDist = paintRange, shortMidRange-0.5
	case ZoneLongMidRange:
		minDist, maxDist = shortMidRange, threePointCorner-0.5
	default:
		minDist, maxDist = threePointArc+0.2, 27
	}

	dist := minDist + rng.Float64()*(maxDist-minDist)
	// Angle swept across the half court, facing away from the baseline.
	angle := (rng.Float64() - 0.5) * math.Pi * 0.8

	basket := BasketFor(homeOffense)
	dx := dist * math.Cos(angle)
	if homeOffense {
		dx = -dx // home attacks the high-X basket; the court lies at lower X
	}
	return Point{X: basket.X + dx, Y: basket.Y + dist*math.Sin(angle)}.Clamp()
}

// defenderDistance samples contest distance: gamblers stray out of position,
// controlled closeouts stay attached.
func (s *PossessionSimulator) defenderDistance(defender *Player, rng *rand.Rand) float64 {
	if defender == nil {
		return wideOpenDistance * 2
	}
	d := 2 + rng.Float64()*8
	d += skillModifier(defender.Tendencies.DefensiveGambling, 2.0)
	d -= skillModifier(defender.Tendencies.CloseoutControl, 1.5)
	return math.Max(d, 0.5)
}

// === Render feed ===

// generateTicks emits one positional snapshot per tick over the possession.
// Offense drifts toward the basket, defenders chase their matchups. Outcomes
// are already fixed before this runs; the drift is purely cosmetic.
func (s *PossessionSimulator) generateTicks(result *PossessionResult, offense, defense *Lineup,
	ballCarrier string, positions map[string]Point, ctx GameContext) {

	p := s.tuning.Possession
	ticks := int(result.Duration / p.TickSeconds)
	if ticks > p.MaxTicks {
		ticks = p.MaxTicks
	}
	if ticks < 1 && result.Duration > 0 {
		ticks = 1
	}

	rng := s.rng.ForSubsystem(SubsystemSpatial)
	basket := BasketFor(ctx.HomeOffense)

	for tick := 0; tick < ticks; tick++ {
		clock := ctx.GameClock - float64(tick)*p.TickSeconds

		state := spatial.State{
			Quarter:   ctx.Quarter,
			GameClock: clock,
			Players:   make([]spatial.PlayerSnapshot, 0, 10),
		}

		for _, player := range offense.Players {
			if player == nil {
				continue
			}
			pos := drift(positions[player.ID], basket, 0.4, rng)
			positions[player.ID] = pos
			state.Players = append(state.Players, spatial.PlayerSnapshot{
				PlayerID:  player.ID,
				X:         pos.X,
				Y:         pos.Y,
				OnOffense: true,
				HasBall:   player.ID == ballCarrier,
			})
		}
		for _, player := range defense.Players {
			if player == nil {
				continue
			}
			target := basket
			if mark := offense.AtPosition(player.Position); mark != nil {
				target = positions[mark.ID]
			}
			pos := drift(positions[player.ID], target, 0.5, rng)
			positions[player.ID] = pos
			state.Players = append(state.Players, spatial.PlayerSnapshot{
				PlayerID: player.ID,
				X:        pos.X,
				Y:        pos.Y,
			})
		}

		ballPos := positions[ballCarrier]
		state.Ball = spatial.BallState{X: ballPos.X, Y: ballPos.Y, HolderID: ballCarrier}

		s.tracker.Record(state)
		result.Snapshots = append(result.Snapshots, state)
	}
}

// drift nudges a point toward a target with a little noise.
func drift(from, toward Point, step float64, rng *rand.Rand) Point {
	dx := toward.X - from.X
	dy := toward.Y - from.Y
	norm := math.Hypot(dx, dy)
	if norm > 1 {
		dx /= norm
		dy /= norm
	}
	return Point{
		X: from.X + dx*step + (rng.Float64()-0.5)*0.6,
		Y: from.Y + dy*step + (rng.Float64()-0.5)*0.6,
	}.Clamp()
}

// === Helpers ===

// weightedPick draws an index proportional to weights. Zero or negative
// total degrades to a uniform pick over all indices.
func weightedPick(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	draw := rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		draw -= w
		if draw < 0 {
			return i
		}
	}
	return len(weights) - 1
}

func averageAggression(lineup *Lineup) float64 {
	total, count := 0.0, 0
	for _, p := range lineup.Players {
		if p == nil {
			continue
		}
		total += p.Aggression
		count++
	}
	if count == 0 {
		return 50
	}
	return total / float64(count)
}

func bestFreeThrowShooter(lineup *Lineup) *Player {
	var best *Player
	for _, p := range lineup.Players {
		if p == nil {
			continue
		}
		if best == nil || p.Shooting.FreeThrow > best.Shooting.FreeThrow {
			best = p
		}
	}
	return best
}

// initialPositions lays the offense out in a standard half-court set around
// the attacking basket, with each defender three feet inside his matchup.
func initialPositions(offense, defense *Lineup, homeOffense bool) map[string]Point {
	basket := BasketFor(homeOffense)
	inward := 1.0
	if homeOffense {
		inward = -1.0 // court lies at lower X from the home basket
	}

	// Offsets from the basket per position: point out top, wings spread,
	// bigs on the blocks.
	offsets := map[Position]Point{
		PointGuard:    {X: 26, Y: 0},
		ShootingGuard: {X: 20, Y: 14},
		SmallForward:  {X: 20, Y: -14},
		PowerForward:  {X: 8, Y: 8},
		Center:        {X: 6, Y: -7},
	}

	positions := make(map[string]Point, 10)
	for _, p := range offense.Players {
		if p == nil {
			continue
		}
		off := offsets[p.Position]
		positions[p.ID] = Point{X: basket.X + inward*off.X, Y: basket.Y + off.Y}.Clamp()
	}
	for _, p := range defense.Players {
		if p == nil {
			continue
		}
		off := offsets[p.Position]
		positions[p.ID] = Point{X: basket.X + inward*(off.X-3), Y: basket.Y + off.Y}.Clamp()
	}
	return positions
}
