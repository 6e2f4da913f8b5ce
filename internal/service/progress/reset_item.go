package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vocabloom/progress-engine/internal/domain"
)

// ResetItem reinitializes a reviewed item back to the weakest box, due
// immediately. The record is never deleted and its lifetime tallies are
// kept. Resetting an item that was never reviewed is ErrNotFound: there is
// nothing to reinitialize.
func (s *Service) ResetItem(ctx context.Context, itemID string) (domain.ItemProgress, error) {
	if itemID == "" {
		return domain.ItemProgress{}, domain.NewValidationError("item_id", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return domain.ItemProgress{}, err
	}

	item, ok := st.progress[itemID]
	if !ok {
		return domain.ItemProgress{}, fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}

	item.Box = domain.MinBox
	item.DueAt = s.today(domain.Day{})

	work := st.clone()
	work.progress[itemID] = item

	if err := s.persist(ctx, st, work, recordProgress); err != nil {
		return domain.ItemProgress{}, err
	}

	s.log.InfoContext(ctx, "item reset",
		slog.String("item_id", itemID),
	)

	return item, nil
}
