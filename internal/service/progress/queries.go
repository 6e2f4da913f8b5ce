package progress

import (
	"context"

	"github.com/vocabloom/progress-engine/internal/domain"
	"github.com/vocabloom/progress-engine/internal/service/progress/leitner"
)

// DueWords returns the ids of every item due for review today, ordered by
// (due day, item id). Items never reviewed have no record and never appear;
// they belong to the study flow, not the review flow.
func (s *Service) DueWords(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return leitner.DueSet(st.progress, s.today(domain.Day{})), nil
}

// BoxHistogram returns the item count per Leitner box, zero boxes included.
func (s *Service) BoxHistogram(ctx context.Context) (map[int]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return leitner.Histogram(st.progress), nil
}

// Stats returns a read-only snapshot of the profile's aggregate stats with
// the derived level and thresholds.
func (s *Service) Stats(ctx context.Context) (domain.StatsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return domain.StatsSnapshot{}, err
	}

	return s.snapshot(st.stats), nil
}

// ItemProgress returns the review record of a single item, or ErrNotFound
// wrapped for unseen items.
func (s *Service) ItemProgress(ctx context.Context, itemID string) (domain.ItemProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return domain.ItemProgress{}, err
	}

	item, ok := st.progress[itemID]
	if !ok {
		return domain.ItemProgress{}, domain.ErrNotFound
	}
	return item, nil
}

// LevelThreshold returns the cumulative xp required to hold the given level
// (for progress-bar rendering). Pure computation, no store access.
func (s *Service) LevelThreshold(level int) int {
	return s.curve.XPForLevel(level)
}

// RecentReviews returns up to limit journal entries, newest first.
func (s *Service) RecentReviews(ctx context.Context, limit int) ([]domain.ReviewLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > len(st.journal) {
		limit = len(st.journal)
	}

	out := make([]domain.ReviewLogEntry, 0, limit)
	for i := len(st.journal) - 1; i >= len(st.journal)-limit; i-- {
		out = append(out, st.journal[i])
	}
	return out, nil
}
