package gamify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vocabloom/progress-engine/internal/domain"
)

func testCatalog() []domain.BadgeDefinition {
	return []domain.BadgeDefinition{
		{ID: "streak_3", Unlock: func(s domain.UserStats) bool { return s.Streak >= 3 }},
		{ID: "quiz_10", Unlock: func(s domain.UserStats) bool { return s.QuizCorrect >= 10 }},
		{ID: "xp_100", Unlock: func(s domain.UserStats) bool { return s.XP >= 100 }},
	}
}

func TestEvaluateBadges_UnlocksInCatalogOrder(t *testing.T) {
	t.Parallel()

	stats := domain.UserStats{Streak: 5, QuizCorrect: 12, XP: 50}

	got, unlocked := EvaluateBadges(stats, testCatalog())

	assert.Equal(t, []string{"streak_3", "quiz_10"}, unlocked)
	assert.Equal(t, []string{"streak_3", "quiz_10"}, got.Badges)
}

func TestEvaluateBadges_Idempotent(t *testing.T) {
	t.Parallel()

	stats := domain.UserStats{Streak: 5}

	got, unlocked := EvaluateBadges(stats, testCatalog())
	assert.Equal(t, []string{"streak_3"}, unlocked)

	again, unlocked := EvaluateBadges(got, testCatalog())
	assert.Empty(t, unlocked, "second evaluation with unchanged stats unlocks nothing")
	assert.Equal(t, got.Badges, again.Badges)
}

func TestEvaluateBadges_NeverRemoves(t *testing.T) {
	t.Parallel()

	// Streak has since reset but the badge stays.
	stats := domain.UserStats{Streak: 1, Badges: []string{"streak_3"}}

	got, unlocked := EvaluateBadges(stats, testCatalog())

	assert.Empty(t, unlocked)
	assert.Equal(t, []string{"streak_3"}, got.Badges)
}

func TestEvaluateBadges_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	stats := domain.UserStats{XP: 100, Badges: make([]string, 0, 4)}

	got, _ := EvaluateBadges(stats, testCatalog())
	got.Badges[0] = "mutated"

	assert.Empty(t, stats.Badges, "input badge slice must stay untouched")
}

func TestEvaluateBadges_DefaultCatalogThresholds(t *testing.T) {
	t.Parallel()

	stats := domain.UserStats{
		FlashcardsViewed: 1,
		Streak:           7,
		XP:               1000,
	}

	_, unlocked := EvaluateBadges(stats, domain.DefaultCatalog())

	assert.Equal(t, []string{"first_steps", "warming_up", "on_fire", "scholar"}, unlocked)
}
