package sim

import "fmt"

// Tuning holds every base rate and clamp band the probability engines use.
// Values are tunable approximations, not replicas of real NBA distributions.
// All sections must validate before a simulator is constructed.
type Tuning struct {
	Shot       ShotTuning       `yaml:"shot"`
	Turnover   TurnoverTuning   `yaml:"turnover"`
	Foul       FoulTuning       `yaml:"foul"`
	FreeThrow  FreeThrowTuning  `yaml:"free_throw"`
	Violation  ViolationTuning  `yaml:"violation"`
	Possession PossessionTuning `yaml:"possession"`
}

// ShotTuning parameterizes the shot-probability model.
type ShotTuning struct {
	BaseRim      float64 `yaml:"base_rim"`
	BasePaint    float64 `yaml:"base_paint"`
	BaseShortMid float64 `yaml:"base_short_mid"`
	BaseLongMid  float64 `yaml:"base_long_mid"`
	BaseThree    float64 `yaml:"base_three"`

	SkillScale        float64 `yaml:"skill_scale"` // swing from zone skill, plus or minus
	MaxContestPenalty float64 `yaml:"max_contest_penalty"`
	WideOpenBonus     float64 `yaml:"wide_open_bonus"`
	FastBreakBonus    float64 `yaml:"fast_break_bonus"`
	PressurePenalty   float64 `yaml:"pressure_penalty"`
	HomeCourtBonus    float64 `yaml:"home_court_bonus"`

	MinProbability float64 `yaml:"min_probability"`
	MaxProbability float64 `yaml:"max_probability"`
}

// TurnoverTuning parameterizes the turnover draw.
type TurnoverTuning struct {
	BaseRate       float64 `yaml:"base_rate"`
	MinProbability float64 `yaml:"min_probability"`
	MaxProbability float64 `yaml:"max_probability"`
}

// FoulTuning parameterizes foul, technical, and flagrant probabilities.
type FoulTuning struct {
	BaseRate       float64 `yaml:"base_rate"`
	MinProbability float64 `yaml:"min_probability"`
	MaxProbability float64 `yaml:"max_probability"`

	TechnicalBaseRate float64 `yaml:"technical_base_rate"`
	TechnicalMin      float64 `yaml:"technical_min"`
	TechnicalMax      float64 `yaml:"technical_max"`

	FlagrantReviewRate float64 `yaml:"flagrant_review_rate"`
}

// FreeThrowTuning parameterizes free-throw attempt probabilities.
type FreeThrowTuning struct {
	MinProbability      float64 `yaml:"min_probability"`
	MaxProbability      float64 `yaml:"max_probability"`
	IcedPenalty         float64 `yaml:"iced_penalty"`
	FinalAttemptPenalty float64 `yaml:"final_attempt_penalty"`
}

// ViolationBand is one violation type's base rate and clamp band.
type ViolationBand struct {
	BaseRate float64 `yaml:"base_rate"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
}

// ViolationTuning parameterizes the four rule-violation checks.
type ViolationTuning struct {
	Traveling     ViolationBand `yaml:"traveling"`
	Backcourt     ViolationBand `yaml:"backcourt"`
	ThreeSecond   ViolationBand `yaml:"three_second"`
	DoubleDribble ViolationBand `yaml:"double_dribble"`
}

// PossessionTuning parameterizes possession pacing.
type PossessionTuning struct {
	AverageSeconds float64 `yaml:"average_seconds"`
	MinSeconds     float64 `yaml:"min_seconds"`
	MaxSeconds     float64 `yaml:"max_seconds"`
	TickSeconds    float64 `yaml:"tick_seconds"`
	MaxTicks       int     `yaml:"max_ticks"`
}

// DefaultTuning returns the stock tuning constants.
func DefaultTuning() Tuning {
	return Tuning{
		Shot: ShotTuning{
			BaseRim:      0.62,
			BasePaint:    0.52,
			BaseShortMid: 0.43,
			BaseLongMid:  0.39,
			BaseThree:    0.35,

			SkillScale:        0.15,
			MaxContestPenalty: 0.25,
			WideOpenBonus:     0.05,
			FastBreakBonus:    0.10,
			PressurePenalty:   0.08,
			HomeCourtBonus:    0.03,

			MinProbability: 0.02,
			MaxProbability: 0.95,
		},
		Turnover: TurnoverTuning{
			BaseRate:       0.13,
			MinProbability: 0.05,
			MaxProbability: 0.25,
		},
		Foul: FoulTuning{
			BaseRate:       0.12,
			MinProbability: 0.05,
			MaxProbability: 0.35,

			TechnicalBaseRate: 0.002,
			TechnicalMin:      0.0005,
			TechnicalMax:      0.05,

			FlagrantReviewRate: 0.03,
		},
		FreeThrow: FreeThrowTuning{
			MinProbability:      0.20,
			MaxProbability:      0.98,
			IcedPenalty:         0.06,
			FinalAttemptPenalty: 0.03,
		},
		Violation: ViolationTuning{
			Traveling:     ViolationBand{BaseRate: 0.015, Min: 0.002, Max: 0.040},
			Backcourt:     ViolationBand{BaseRate: 0.004, Min: 0.001, Max: 0.015},
			ThreeSecond:   ViolationBand{BaseRate: 0.006, Min: 0.001, Max: 0.020},
			DoubleDribble: ViolationBand{BaseRate: 0.005, Min: 0.001, Max: 0.020},
		},
		Possession: PossessionTuning{
			AverageSeconds: 12.0,
			MinSeconds:     6.0,
			MaxSeconds:     22.0,
			TickSeconds:    0.5,
			MaxTicks:       48,
		},
	}
}

// Validate checks band ordering and probability ranges.
func (t Tuning) Validate() error {
	bands := []struct {
		name     string
		min, max float64
	}{
		{"shot", t.Shot.MinProbability, t.Shot.MaxProbability},
		{"turnover", t.Turnover.MinProbability, t.Turnover.MaxProbability},
		{"foul", t.Foul.MinProbability, t.Foul.MaxProbability},
		{"technical", t.Foul.TechnicalMin, t.Foul.TechnicalMax},
		{"free_throw", t.FreeThrow.MinProbability, t.FreeThrow.MaxProbability},
		{"traveling", t.Violation.Traveling.Min, t.Violation.Traveling.Max},
		{"backcourt", t.Violation.Backcourt.Min, t.Violation.Backcourt.Max},
		{"three_second", t.Violation.ThreeSecond.Min, t.Violation.ThreeSecond.Max},
		{"double_dribble", t.Violation.DoubleDribble.Min, t.Violation.DoubleDribble.Max},
	}
	for _, b := range bands {
		if b.min < 0 || b.max > 1 || b.min > b.max {
			return fmt.Errorf("tuning: %s band [%v, %v] is not a valid probability band", b.name, b.min, b.max)
		}
	}
	p := t.Possession
	if p.MinSeconds <= 0 || p.MinSeconds > p.MaxSeconds {
		return fmt.Errorf("tuning: possession duration band [%v, %v] is invalid", p.MinSeconds, p.MaxSeconds)
	}
	if p.TickSeconds <= 0 || p.MaxTicks <= 0 {
		return fmt.Errorf("tuning: tick parameters (%v s, %d max) must be positive", p.TickSeconds, p.MaxTicks)
	}
	return nil
}

// clamp bounds v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
