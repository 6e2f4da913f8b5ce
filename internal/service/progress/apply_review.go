package progress

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vocabloom/progress-engine/internal/domain"
	"github.com/vocabloom/progress-engine/internal/service/progress/gamify"
	"github.com/vocabloom/progress-engine/internal/service/progress/leitner"
)

// ApplyReview records one review outcome: the scheduler moves the item
// between boxes, then the progression policy updates streak, xp, counters
// and badges, the journal gets an entry, and everything is persisted before
// the result is returned. Reviewing an item that has never been seen is not
// an error; it becomes that item's first review.
func (s *Service) ApplyReview(ctx context.Context, input ReviewInput) (ReviewResult, error) {
	if err := input.Validate(); err != nil {
		return ReviewResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return ReviewResult{}, err
	}

	now := s.clock.Now()
	today := s.today(input.Today)

	var prev *domain.ItemProgress
	if p, ok := st.progress[input.ItemID]; ok {
		prev = &p
	}

	item := leitner.RecordOutcome(prev, input.ItemID, input.Correct, today, now, s.intervals)

	work := st.clone()
	work.progress[input.ItemID] = item

	stats, extended := gamify.UpdateStreak(work.stats, today)

	delta := StatsDelta{StreakExtended: extended}

	if input.Correct {
		amount := s.xpFor(input.Source)
		var leveledUp bool
		stats, leveledUp, err = gamify.AwardXP(stats, amount, s.curve)
		if err != nil {
			return ReviewResult{}, err
		}
		delta.XPGained = amount
		delta.LeveledUp = leveledUp
	}

	switch input.Source {
	case domain.SourceQuiz:
		if input.Correct {
			stats.QuizCorrect++
		} else {
			stats.QuizWrong++
		}
	case domain.SourceFlashcard:
		stats.FlashcardsViewed++
	}

	// First arrival in the strongest box counts as a mastered word.
	if item.Box == domain.MaxBox && (prev == nil || prev.Box < domain.MaxBox) {
		stats.WordsMastered++
	}

	stats, newBadges := gamify.EvaluateBadges(stats, s.catalog)
	delta.NewBadges = newBadges
	work.stats = stats

	work.appendJournal(domain.ReviewLogEntry{
		ID:         uuid.New(),
		ItemID:     input.ItemID,
		Correct:    input.Correct,
		Source:     input.Source,
		Box:        item.Box,
		XPAwarded:  delta.XPGained,
		ReviewedAt: now,
	}, s.policy.JournalLimit)

	if err := s.persist(ctx, st, work, recordProgress, recordStats, recordJournal); err != nil {
		return ReviewResult{}, err
	}

	s.log.InfoContext(ctx, "review applied",
		slog.String("item_id", input.ItemID),
		slog.Bool("correct", input.Correct),
		slog.String("source", input.Source.String()),
		slog.Int("box", item.Box),
		slog.Int("xp_gained", delta.XPGained),
		slog.Int("streak", stats.Streak),
		slog.Int("new_badges", len(newBadges)),
	)

	return ReviewResult{Item: item, Stats: s.snapshot(stats), Delta: delta}, nil
}
