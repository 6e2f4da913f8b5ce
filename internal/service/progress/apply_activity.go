package progress

import (
	"context"
	"log/slog"

	"github.com/vocabloom/progress-engine/internal/service/progress/gamify"
)

// ApplyActivity records a qualifying activity without a review outcome
// ("app foregrounded", "time spent in a study screen"). It extends the
// streak and accrues study time but never awards xp.
func (s *Service) ApplyActivity(ctx context.Context, input ActivityInput) (ActivityResult, error) {
	if err := input.Validate(); err != nil {
		return ActivityResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return ActivityResult{}, err
	}

	today := s.today(input.Today)

	work := st.clone()

	stats, extended := gamify.UpdateStreak(work.stats, today)
	stats.TotalTimeSpentSec += int64(input.TimeSpent.Seconds())

	stats, newBadges := gamify.EvaluateBadges(stats, s.catalog)
	work.stats = stats

	if err := s.persist(ctx, st, work, recordStats); err != nil {
		return ActivityResult{}, err
	}

	s.log.InfoContext(ctx, "activity applied",
		slog.Duration("time_spent", input.TimeSpent),
		slog.Int("streak", stats.Streak),
		slog.Bool("streak_extended", extended),
	)

	return ActivityResult{
		Stats: s.snapshot(stats),
		Delta: StatsDelta{StreakExtended: extended, NewBadges: newBadges},
	}, nil
}
