package gamify

import (
	"github.com/vocabloom/progress-engine/internal/domain"
)

// EvaluateBadges checks every not-yet-unlocked badge in the catalog against
// the post-update stats and appends the ones whose predicate now holds.
// Badges are appended in catalog order, so the unlock order is deterministic
// when several become eligible in the same update. Unlocked badges are never
// removed; re-evaluating with unchanged stats unlocks nothing.
func EvaluateBadges(stats domain.UserStats, catalog []domain.BadgeDefinition) (domain.UserStats, []string) {
	var unlocked []string
	for _, badge := range catalog {
		if stats.HasBadge(badge.ID) {
			continue
		}
		if badge.Unlock(stats) {
			if unlocked == nil {
				// Copy-on-write so the caller's slice is never aliased.
				stats = stats.Clone()
			}
			stats.Badges = append(stats.Badges, badge.ID)
			unlocked = append(unlocked, badge.ID)
		}
	}
	return stats, unlocked
}
