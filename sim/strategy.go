package sim

// Strategy is a team's offensive emphasis for the game, 0-100 per axis with
// 50 neutral. It biases selection weights; it never overrides skill.
type Strategy struct {
	// Pace scales possession length: higher pace, shorter possessions.
	Pace float64 `yaml:"pace"`

	// ThreePointBias favors perimeter shooters during shooter selection.
	ThreePointBias float64 `yaml:"three_point_bias"`

	// PostUpBias favors interior scorers during shooter selection.
	PostUpBias float64 `yaml:"post_up_bias"`
}

// DefaultStrategy returns a neutral strategy.
func DefaultStrategy() Strategy {
	return Strategy{Pace: 50, ThreePointBias: 50, PostUpBias: 50}
}
