package spatial

import "gonum.org/v1/gonum/stat"

// Court dimensions in feet, duplicated here so the recorder stays
// independent of the engine package.
const (
	courtLength = 94.0
	courtWidth  = 50.0
)

// Heatmap bins a player's recorded positions into a cols x rows occupancy
// grid over the court. Grid [0][0] is the low-X, low-Y corner.
func (t *Tracker) Heatmap(playerID string, cols, rows int) [][]int {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	grid := make([][]int, cols)
	for i := range grid {
		grid[i] = make([]int, rows)
	}
	for _, s := range t.states {
		for _, p := range s.Players {
			if p.PlayerID != playerID {
				continue
			}
			c := int(p.X / courtLength * float64(cols))
			r := int(p.Y / courtWidth * float64(rows))
			if c < 0 || c >= cols || r < 0 || r >= rows {
				continue
			}
			grid[c][r]++
		}
	}
	return grid
}

// ZoneStats aggregates shot attempts and makes for one zone.
type ZoneStats struct {
	Attempts int
	Makes    int
	Points   int
}

// ShotChart aggregates recorded shots by zone name.
func (t *Tracker) ShotChart() map[string]ZoneStats {
	chart := make(map[string]ZoneStats)
	for _, shot := range t.shots {
		zs := chart[shot.Zone]
		zs.Attempts++
		if shot.Made {
			zs.Makes++
		}
		zs.Points += shot.Points
		chart[shot.Zone] = zs
	}
	return chart
}

// AverageShotDistance returns the mean distance of a player's recorded shot
// attempts in feet, or 0 with ok=false if the player has none.
func (t *Tracker) AverageShotDistance(playerID string) (float64, bool) {
	var distances []float64
	for _, shot := range t.shots {
		if shot.ShooterID == playerID {
			distances = append(distances, shot.Distance)
		}
	}
	if len(distances) == 0 {
		return 0, false
	}
	return stat.Mean(distances, nil), true
}

// ShotDistanceSpread returns the mean and standard deviation of all recorded
// shot distances, for profile displays.
func (t *Tracker) ShotDistanceSpread() (mean, stddev float64) {
	if len(t.shots) == 0 {
		return 0, 0
	}
	distances := make([]float64, 0, len(t.shots))
	for _, shot := range t.shots {
		distances = append(distances, shot.Distance)
	}
	if len(distances) == 1 {
		return distances[0], 0
	}
	return stat.MeanStdDev(distances, nil)
}
