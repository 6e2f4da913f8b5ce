package domain

import "slices"

// UserStats is the singleton aggregate record for the local profile.
// Level is intentionally absent: it is always derived from XP by the
// progression policy and never stored.
type UserStats struct {
	XP            int      `json:"xp"`
	Streak        int      `json:"streak"`
	LastActiveDay Day      `json:"last_active_day"`
	StreakFreezes int      `json:"streak_freezes"`
	Badges        []string `json:"badges"`

	QuizCorrect      int `json:"quiz_correct"`
	QuizWrong        int `json:"quiz_wrong"`
	FlashcardsViewed int `json:"flashcards_viewed"`
	WordsMastered    int `json:"words_mastered"`

	GamesPlayed       int   `json:"games_played"`
	TotalTimeSpentSec int64 `json:"total_time_spent_sec"`

	// Per-game bests. MatchingBestSec is a completion time, lower is
	// better, zero means never played. The high scores are higher-is-better.
	MatchingBestSec     int `json:"matching_best_sec"`
	MazeHighScore       int `json:"maze_high_score"`
	WordSearchHighScore int `json:"word_search_high_score"`
}

// HasBadge reports whether the badge has been unlocked.
func (s UserStats) HasBadge(id string) bool {
	return slices.Contains(s.Badges, id)
}

// Clone returns a deep copy (the badge slice is not shared).
func (s UserStats) Clone() UserStats {
	out := s
	out.Badges = slices.Clone(s.Badges)
	return out
}

// StatsSnapshot is the read-only projection handed to UI collaborators.
// Level and the surrounding thresholds are computed, never stored.
type StatsSnapshot struct {
	UserStats
	Level          int `json:"level"`
	LevelThreshold int `json:"level_threshold"` // xp where the current level began
	NextLevelAt    int `json:"next_level_at"`   // xp required for the next level
}
