package runner

import (
	"math"

	"github.com/vovakirdan/cyberrunner/internal/config"
	"github.com/vovakirdan/cyberrunner/internal/core"
)

// Scorer pays out the current score rate once per tick period while running.
type Scorer struct {
	score   int64
	elapsed float64
	period  float64
}

// NewScorer creates a scorer paying every period seconds.
func NewScorer(period float64) Scorer {
	return Scorer{period: period}
}

// Tick advances the score clock. While dead the clock is held at zero and
// the rate returns to its base value; the score itself is kept for display.
// Returns true if points were paid this tick.
func (s *Scorer) Tick(dt float64, phase Phase, diff *config.DifficultyManager) bool {
	if phase == PhaseDead {
		s.elapsed = 0
		diff.ResetScoreRate()
		return false
	}
	s.elapsed += dt
	if !core.Reached(s.elapsed, s.period) {
		return false
	}
	s.add(diff.ScoreRate())
	s.elapsed = 0
	return true
}

// add increases the score, saturating instead of overflowing.
func (s *Scorer) add(points int64) {
	if s.score > math.MaxInt64-points {
		s.score = math.MaxInt64
		return
	}
	s.score += points
}

// Reset clears the score for a new run.
func (s *Scorer) Reset() {
	s.score = 0
	s.elapsed = 0
}

// Score returns the current score.
func (s *Scorer) Score() int64 {
	return s.score
}
