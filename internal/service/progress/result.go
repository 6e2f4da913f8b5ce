package progress

import (
	"github.com/vocabloom/progress-engine/internal/domain"
)

// StatsDelta describes what one applied event changed, for the UI to present
// (xp toast, level-up celebration, badge unlock modal).
type StatsDelta struct {
	XPGained       int
	LeveledUp      bool
	StreakExtended bool
	NewBadges      []string
}

// ReviewResult is returned by ApplyReview.
type ReviewResult struct {
	Item  domain.ItemProgress
	Stats domain.StatsSnapshot
	Delta StatsDelta
}

// ActivityResult is returned by ApplyActivity.
type ActivityResult struct {
	Stats domain.StatsSnapshot
	Delta StatsDelta
}

// GameResult is returned by ApplyGameResult.
type GameResult struct {
	Stats        domain.StatsSnapshot
	Delta        StatsDelta
	BestImproved bool
}

// snapshot projects the stored stats into the read model: level and the
// thresholds around it are derived from xp on every read, never stored.
func (s *Service) snapshot(stats domain.UserStats) domain.StatsSnapshot {
	level := s.curve.LevelFor(stats.XP)
	return domain.StatsSnapshot{
		UserStats:      stats.Clone(),
		Level:          level,
		LevelThreshold: s.curve.XPForLevel(level),
		NextLevelAt:    s.curve.XPForLevel(level + 1),
	}
}
